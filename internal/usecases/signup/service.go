package signup

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/notifying"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coldinfra-dashboard/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Store grava uma inscrição beta. Uma chamada é exatamente um insert.
type Store interface {
	Insert(ctx context.Context, signup domain.BetaSignup) error
}

type Signer interface {
	GetForm(w *session.Workspace) domain.BetaForm
	UpdateForm(w *session.Workspace, fields domain.BetaSignup) (domain.BetaForm, error)
	Submit(ctx context.Context, w *session.Workspace) (domain.BetaForm, error)
}

type Service struct {
	store    Store
	notifier notifying.Notifier
}

func NewService(store Store, notifier notifying.Notifier) Signer {
	return &Service{
		store:    store,
		notifier: notifier,
	}
}

func (s *Service) GetForm(w *session.Workspace) domain.BetaForm {
	w.Lock()
	defer w.Unlock()

	return w.Form
}

// UpdateForm substitui o rascunho. Role e volume vazios são aceitos; fora da lista não.
func (s *Service) UpdateForm(w *session.Workspace, fields domain.BetaSignup) (domain.BetaForm, error) {
	if fields.Role != "" && !slices.Contains(domain.BetaRoles, fields.Role) {
		return domain.BetaForm{}, NewSignupError(ErrInvalidOption, apiErrors.ErrInvalidFormat, "role: "+fields.Role)
	}

	if fields.MonthlyVolume != "" && !slices.Contains(domain.BetaVolumes, fields.MonthlyVolume) {
		return domain.BetaForm{}, NewSignupError(ErrInvalidOption, apiErrors.ErrInvalidFormat, "monthly_volume: "+fields.MonthlyVolume)
	}

	w.Lock()
	defer w.Unlock()

	if w.Form.Submitting {
		return w.Form, NewSignupError(ErrSubmissionInProgress, apiErrors.ErrConflict, "")
	}

	w.Form.Fields = fields

	return w.Form, nil
}

func (s *Service) Submit(ctx context.Context, w *session.Workspace) (domain.BetaForm, error) {
	logger := log.ForContext(ctx)

	w.Lock()
	if w.Form.Submitting {
		form := w.Form
		w.Unlock()
		return form, NewSignupError(ErrSubmissionInProgress, apiErrors.ErrConflict, "")
	}

	record := w.Form.Fields
	if missing := record.MissingRequired(); len(missing) > 0 {
		form := w.Form
		w.Unlock()

		s.notify(ctx, w.ID, notifying.Destructive("Missing information", "Please fill in your name and email."))
		return form, NewSignupError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, strings.Join(missing, ", "))
	}

	w.Form.Submitting = true
	w.Unlock()

	err := s.store.Insert(ctx, record)

	w.Lock()
	w.Form.Submitting = false
	if err == nil {
		w.Form.Fields = domain.BetaSignup{}
	}
	form := w.Form
	w.Unlock()

	if err != nil {
		logger.WithError(err).Error("Erro ao enviar inscrição beta")

		s.notify(ctx, w.ID, notifying.Destructive(
			"Something went wrong",
			"There was an error submitting your application. Please try again.",
		))

		return form, NewSignupError(errors.Join(ErrInsertFailed, err), apiErrors.ErrExternalService, "")
	}

	logger.Info("Inscrição beta enviada com sucesso")

	s.notify(ctx, w.ID, notifying.Success(
		"Application submitted!",
		"Thanks for your interest! We'll be in touch soon.",
	))

	return form, nil
}

func (s *Service) notify(ctx context.Context, sessionID string, n domain.Notification) {
	if _, err := s.notifier.Push(sessionID, n); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao enfileirar notificação")
	}
}
