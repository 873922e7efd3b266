package supabase

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/coldinfra-dashboard/infrastructure/integrator/supabase/supabaseclient"
	"github.com/vfg2006/coldinfra-dashboard/internal/config"
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
)

// SupabaseService grava as inscrições beta pela API REST do Supabase
type SupabaseService struct {
	table  string
	Client supabaseclient.Client
}

func New(cfg config.Supabase, client supabaseclient.Client) *SupabaseService {
	table := cfg.Table
	if table == "" {
		table = "beta_signups"
	}

	return &SupabaseService{
		table:  table,
		Client: client,
	}
}

func (s *SupabaseService) Insert(ctx context.Context, signup domain.BetaSignup) error {
	if err := s.Client.InsertRow(ctx, s.table, signup.Record()); err != nil {
		return errors.Wrapf(err, "erro ao inserir inscrição em %s", s.table)
	}

	return nil
}
