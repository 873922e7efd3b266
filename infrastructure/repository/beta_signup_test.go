package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
)

type fakeQueryer struct {
	query string
	args  []interface{}
	calls int
	err   error
}

func (f *fakeQueryer) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.calls++
	f.query = query
	f.args = args
	if f.err != nil {
		return nil, f.err
	}
	return driver.RowsAffected(1), nil
}

func (f *fakeQueryer) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeQueryer) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestBetaSignupRepository_Insert(t *testing.T) {
	tests := []struct {
		name      string
		table     string
		signup    domain.BetaSignup
		execErr   error
		wantQuery string
		wantArgs  []interface{}
		wantCode  pq.ErrorCode
	}{
		{
			name:  "Todos os campos preenchidos",
			table: "",
			signup: domain.BetaSignup{
				FullName: "Jane Doe", Email: "jane@acme.com", Company: "Acme", Role: "founder", MonthlyVolume: "high",
			},
			wantQuery: "INSERT INTO beta_signups (full_name,email,company,role,monthly_volume) VALUES ($1,$2,$3,$4,$5)",
			wantArgs:  []interface{}{"Jane Doe", "jane@acme.com", "Acme", "founder", "high"},
		},
		{
			name:      "Campos opcionais vazios viram NULL",
			table:     "inscricoes",
			signup:    domain.BetaSignup{FullName: "Jane Doe", Email: "jane@acme.com"},
			wantQuery: "INSERT INTO inscricoes (full_name,email,company,role,monthly_volume) VALUES ($1,$2,$3,$4,$5)",
			wantArgs:  []interface{}{"Jane Doe", "jane@acme.com", nil, nil, nil},
		},
		{
			name:     "Erro do Postgres é propagado",
			signup:   domain.BetaSignup{FullName: "Jane Doe", Email: "jane@acme.com"},
			execErr:  &pq.Error{Code: "42P01", Message: "relation does not exist"},
			wantCode: "42P01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &fakeQueryer{err: tt.execErr}
			repo := NewBetaSignupRepository(conn, tt.table)

			err := repo.Insert(context.Background(), tt.signup)

			if tt.wantCode != "" {
				var pqErr *pq.Error
				require.ErrorAs(t, err, &pqErr)
				assert.Equal(t, tt.wantCode, pqErr.Code)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantQuery, conn.query)
			assert.Equal(t, tt.wantArgs, conn.args)
		})
	}
}

func TestBetaSignupRepository_Insert_GenericError(t *testing.T) {
	conn := &fakeQueryer{err: errors.New("connection reset")}
	repo := NewBetaSignupRepository(conn, "")

	err := repo.Insert(context.Background(), domain.BetaSignup{FullName: "x", Email: "y"})

	assert.ErrorContains(t, err, "connection reset")
}

func TestBetaSignupRepository_Insert_SameEmailTwice(t *testing.T) {
	conn := &fakeQueryer{}
	repo := NewBetaSignupRepository(conn, "")
	signup := domain.BetaSignup{FullName: "Jane Doe", Email: "jane@acme.com"}

	assert.NoError(t, repo.Insert(context.Background(), signup))
	first := conn.args

	assert.NoError(t, repo.Insert(context.Background(), signup))
	assert.Equal(t, first, conn.args)
	assert.Equal(t, 2, conn.calls)
}
