package signup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/coldinfra-dashboard/internal/config"
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/notifying"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/signup/mocks"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var filledForm = domain.BetaSignup{
	FullName:      "Ada Lovelace",
	Email:         "ada@example.com",
	Company:       "Analytical Engines",
	Role:          "founder",
	MonthlyVolume: "medium",
}

func newWorkspace(t *testing.T) *session.Workspace {
	t.Helper()

	store := session.NewStore(config.Session{Secret: "segredo", TTL: time.Hour})
	w, _, err := store.Create()
	require.NoError(t, err)

	return w
}

func TestService_Submit(t *testing.T) {
	tests := []struct {
		name        string
		fields      domain.BetaSignup
		setup       func(store *mocks.MockStore)
		wantErr     error
		wantCode    string
		wantFields  domain.BetaSignup
		wantVariant domain.NotificationVariant
	}{
		{
			name:   "Envio com sucesso - limpa o formulário e mostra um toast de sucesso",
			fields: filledForm,
			setup: func(store *mocks.MockStore) {
				store.EXPECT().Insert(gomock.Any(), filledForm).Return(nil).Times(1)
			},
			wantFields:  domain.BetaSignup{},
			wantVariant: domain.NotificationSuccess,
		},
		{
			name:   "Falha no insert - mantém os campos e mostra um toast de falha",
			fields: filledForm,
			setup: func(store *mocks.MockStore) {
				store.EXPECT().Insert(gomock.Any(), filledForm).Return(errors.New("connection refused")).Times(1)
			},
			wantErr:     ErrInsertFailed,
			wantCode:    apiErrors.ErrExternalService,
			wantFields:  filledForm,
			wantVariant: domain.NotificationDestructive,
		},
		{
			name:        "Sem nome e email - não chama o store",
			fields:      domain.BetaSignup{Company: "Sem nome", FullName: "   "},
			setup:       func(store *mocks.MockStore) {},
			wantErr:     ErrMissingRequiredData,
			wantCode:    apiErrors.ErrMissingRequiredData,
			wantFields:  domain.BetaSignup{Company: "Sem nome", FullName: "   "},
			wantVariant: domain.NotificationDestructive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockStore(ctrl)
			tt.setup(store)

			center := notifying.NewCenter(5 * time.Second)
			service := NewService(store, center)

			w := newWorkspace(t)
			_, err := service.UpdateForm(w, tt.fields)
			require.NoError(t, err)

			form, err := service.Submit(context.Background(), w)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				var signupErr *SignupError
				require.ErrorAs(t, err, &signupErr)
				assert.Equal(t, tt.wantCode, signupErr.Code)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantFields, form.Fields)
			assert.False(t, form.Submitting)
			assert.Equal(t, tt.wantFields, service.GetForm(w).Fields)

			toasts := center.List(w.ID)
			require.Len(t, toasts, 1)
			assert.Equal(t, tt.wantVariant, toasts[0].Variant)
		})
	}
}

func TestService_Submit_RejectsConcurrentSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inserting := make(chan struct{})
	release := make(chan struct{})

	store := mocks.NewMockStore(ctrl)
	store.EXPECT().
		Insert(gomock.Any(), filledForm).
		DoAndReturn(func(ctx context.Context, signup domain.BetaSignup) error {
			close(inserting)
			<-release
			return nil
		}).
		Times(1)

	center := notifying.NewCenter(5 * time.Second)
	service := NewService(store, center)

	w := newWorkspace(t)
	_, err := service.UpdateForm(w, filledForm)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := service.Submit(context.Background(), w)
		done <- err
	}()

	<-inserting

	form, err := service.Submit(context.Background(), w)
	assert.ErrorIs(t, err, ErrSubmissionInProgress)
	assert.True(t, form.Submitting)

	_, err = service.UpdateForm(w, domain.BetaSignup{FullName: "Outro"})
	assert.ErrorIs(t, err, ErrSubmissionInProgress)

	close(release)
	require.NoError(t, <-done)

	assert.False(t, service.GetForm(w).Submitting)
	assert.Len(t, center.List(w.ID), 1)
}

func TestService_UpdateForm(t *testing.T) {
	tests := []struct {
		name    string
		fields  domain.BetaSignup
		wantErr bool
	}{
		{name: "Campos válidos", fields: filledForm},
		{name: "Role e volume vazios são aceitos", fields: domain.BetaSignup{FullName: "Ada"}},
		{name: "Role desconhecida", fields: domain.BetaSignup{Role: "ceo"}, wantErr: true},
		{name: "Volume desconhecido", fields: domain.BetaSignup{MonthlyVolume: "huge"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewService(mocks.NewMockStore(ctrl), notifying.NewCenter(time.Second))
			w := newWorkspace(t)

			form, err := service.UpdateForm(w, tt.fields)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOption)
				assert.True(t, service.GetForm(w).Fields.IsEmpty())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.fields, form.Fields)
		})
	}
}
