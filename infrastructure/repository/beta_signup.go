package repository

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coldinfra-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
)

const betaSignupsTable = "beta_signups"

type BetaSignupRepository interface {
	Insert(ctx context.Context, signup domain.BetaSignup) error
}

type betaSignupRepository struct {
	conn  postgres.Queryer
	table string
}

func NewBetaSignupRepository(conn postgres.Queryer, table string) BetaSignupRepository {
	if table == "" {
		table = betaSignupsTable
	}

	return &betaSignupRepository{
		conn:  conn,
		table: table,
	}
}

// Insert grava uma linha por chamada. A tabela não tem restrição de unicidade:
// envios repetidos geram registros repetidos.
func (r *betaSignupRepository) Insert(ctx context.Context, signup domain.BetaSignup) error {
	record := signup.Record()

	values := make([]interface{}, 0, len(domain.BetaSignupColumns))
	for _, column := range domain.BetaSignupColumns {
		values = append(values, record[column])
	}

	queryBuilder := squirrel.
		Insert(r.table).
		Columns(domain.BetaSignupColumns...).
		Values(values...).
		PlaceholderFormat(squirrel.Dollar)

	insertSQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao montar insert de inscrição")
	}

	if _, err := r.conn.ExecContext(ctx, insertSQL, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			logrus.WithFields(logrus.Fields{
				"table": r.table,
				"code":  string(pqErr.Code),
			}).Warn("Postgres rejeitou a inscrição")
		}
		return pkgerrors.Wrap(err, "erro ao inserir inscrição")
	}

	return nil
}
