package dashboard

import (
	"context"
	"slices"
	"time"

	"github.com/vfg2006/coldinfra-dashboard/internal/config"
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/notifying"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coldinfra-dashboard/pkg/log"
	"github.com/vfg2006/coldinfra-dashboard/pkg/utils"
)

type Dashboarder interface {
	Navigation(w *session.Workspace) []domain.NavItem
	ActiveTab(w *session.Workspace) domain.Tab
	SetActiveTab(w *session.Workspace, value string) (domain.Tab, error)
	Render(w *session.Workspace, value string, query domain.ListQuery) (PanelView, error)

	Overview(w *session.Workspace) OverviewView

	ListBrands(w *session.Workspace, query domain.ListQuery) (BrandsView, error)
	SetBrandStatus(ctx context.Context, w *session.Workspace, req domain.UpdateBrandStatusRequest) (domain.Brand, error)
	SetDateRange(w *session.Workspace, value domain.DateRange) error
	ExportBrandsCSV(ctx context.Context, w *session.Workspace, query domain.ListQuery) ([]byte, error)
	AddBrand(ctx context.Context, w *session.Workspace) error
	RecommendSetup(ctx context.Context, w *session.Workspace, req domain.BrandSetupRequest) (domain.BrandRecommendation, error)

	ListDomains(w *session.Workspace, search string) DomainsView
	ToggleDomain(w *session.Workspace, id string) (domain.DomainSuggestion, error)
	SelectAllDomains(w *session.Workspace) DomainsView
	SetupDomains(ctx context.Context, w *session.Workspace) (domain.DomainSelection, error)

	ListInboxes(w *session.Workspace, query domain.ListQuery) (InboxesView, error)
	InboxHealth(w *session.Workspace) InboxHealthView
	SelectInbox(w *session.Workspace, id string) (InboxHealthView, error)

	ListGeneratedLeads(w *session.Workspace, query domain.ListQuery) (LeadGenerationView, error)
	ListFinderLeads(w *session.Workspace, query domain.ListQuery) (LeadFinderView, error)
	ToggleLead(w *session.Workspace, id string) (domain.Lead, error)
	AddLeadsToCart(ctx context.Context, w *session.Workspace) (domain.LeadCart, error)
	UploadLeads(ctx context.Context, w *session.Workspace, fileName string, content []byte) (domain.LeadUpload, error)

	ListCampaigns(w *session.Workspace, query domain.ListQuery) (CampaignsView, error)
	CreateCampaign(ctx context.Context, w *session.Workspace, req domain.CreateCampaignRequest) (domain.Campaign, error)
	Workflow(w *session.Workspace) []domain.EmailStep
	AddWorkflowStep(w *session.Workspace, kind domain.StepKind) (domain.EmailStep, error)
	ToggleWorkflowStep(w *session.Workspace, id string) (domain.EmailStep, error)
	SaveWorkflow(ctx context.Context, w *session.Workspace) []domain.EmailStep
	GenerateEmail(ctx context.Context, w *session.Workspace, req domain.GenerateEmailRequest) error
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(newID func() (string, error)) Option {
	return func(s *Service) { s.newID = newID }
}

type Service struct {
	notifier notifying.Notifier
	tasks    TaskScheduler
	cfg      config.Simulation
	now      func() time.Time
	newID    func() (string, error)
}

func NewService(notifier notifying.Notifier, tasks TaskScheduler, cfg config.Simulation, opts ...Option) Dashboarder {
	s := &Service{
		notifier: notifier,
		tasks:    tasks,
		cfg:      cfg,
		now:      time.Now,
		newID:    utils.GenerateID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) notify(ctx context.Context, sessionID string, n domain.Notification) {
	if _, err := s.notifier.Push(sessionID, n); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao enfileirar notificação")
	}
}

// validateStatus aceita vazio, "all" ou um dos status do painel
func validateStatus(status string, allowed ...string) error {
	if status == "" || status == domain.StatusAll || slices.Contains(allowed, status) {
		return nil
	}
	return NewDashboardError(ErrInvalidStatus, apiErrors.ErrInvalidStatus, status)
}

func notFound(what, id string) error {
	return NewDashboardError(ErrNotFound, apiErrors.ErrNotFound, what+" "+id)
}
