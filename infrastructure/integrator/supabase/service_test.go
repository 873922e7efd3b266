package supabase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/coldinfra-dashboard/infrastructure/integrator/supabase/mocks"
	"github.com/vfg2006/coldinfra-dashboard/internal/config"
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSupabaseService_Insert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	signup := domain.BetaSignup{
		FullName:      "Jane Doe",
		Email:         "jane@acme.com",
		Company:       "Acme",
		Role:          "founder",
		MonthlyVolume: "medium",
	}

	tests := []struct {
		name    string
		table   string
		setup   func(client *mocks.MockClient)
		wantErr bool
	}{
		{
			name:  "Tabela padrão quando não configurada",
			table: "",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					InsertRow(gomock.Any(), "beta_signups", signup.Record()).
					Return(nil)
			},
		},
		{
			name:  "Tabela configurada",
			table: "inscricoes",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					InsertRow(gomock.Any(), "inscricoes", gomock.Any()).
					Return(nil)
			},
		},
		{
			name:  "Erro do cliente é propagado",
			table: "beta_signups",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					InsertRow(gomock.Any(), "beta_signups", gomock.Any()).
					Return(errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			service := New(config.Supabase{Table: tt.table}, client)
			err := service.Insert(context.Background(), signup)

			if tt.wantErr {
				assert.ErrorContains(t, err, "timeout")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSupabaseService_Insert_OptionalFieldsAsNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		InsertRow(gomock.Any(), "beta_signups", map[string]interface{}{
			"full_name":      "Jane Doe",
			"email":          "jane@acme.com",
			"company":        nil,
			"role":           nil,
			"monthly_volume": nil,
		}).
		Return(nil)

	service := New(config.Supabase{}, client)
	err := service.Insert(context.Background(), domain.BetaSignup{FullName: "Jane Doe", Email: "jane@acme.com"})

	assert.NoError(t, err)
}
