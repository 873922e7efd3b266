package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/filtering"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/notifying"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/sequence"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coldinfra-dashboard/pkg/log"
)

const campaignDateLayout = "2006-01-02"

var campaignMatcher = filtering.Matcher[domain.Campaign]{
	Keys:   func(c domain.Campaign) []string { return []string{c.Name} },
	Status: func(c domain.Campaign) string { return string(c.Status) },
}

var campaignStatuses = []string{
	string(domain.CampaignStatusDraft),
	string(domain.CampaignStatusActive),
	string(domain.CampaignStatusPaused),
	string(domain.CampaignStatusCompleted),
}

// ListCampaigns filtra por nome, status e marca (marca vazia ou "all" não filtra)
func (s *Service) ListCampaigns(w *session.Workspace, query domain.ListQuery) (CampaignsView, error) {
	if err := validateStatus(query.Status, campaignStatuses...); err != nil {
		return CampaignsView{}, err
	}

	w.Lock()
	defer w.Unlock()

	filtered := filtering.Apply(w.Campaigns, query.Search, query.Status, campaignMatcher)
	if query.Brand != "" && query.Brand != domain.StatusAll {
		byBrand := make([]domain.Campaign, 0, len(filtered))
		for _, c := range filtered {
			if strings.EqualFold(c.Brand, query.Brand) {
				byBrand = append(byBrand, c)
			}
		}
		filtered = byBrand
	}

	return CampaignsView{
		Campaigns: filtered,
		Brands:    campaignBrands(w.Campaigns),
		Workflow:  w.Workflow.Steps(),
	}, nil
}

func campaignBrands(campaigns []domain.Campaign) []string {
	seen := make(map[string]struct{}, len(campaigns))
	brands := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		if _, ok := seen[c.Brand]; ok {
			continue
		}
		seen[c.Brand] = struct{}{}
		brands = append(brands, c.Brand)
	}
	return brands
}

// CreateCampaign anexa um rascunho sem métricas
func (s *Service) CreateCampaign(ctx context.Context, w *session.Workspace, req domain.CreateCampaignRequest) (domain.Campaign, error) {
	name := strings.TrimSpace(req.Name)
	brand := strings.TrimSpace(req.Brand)

	if name == "" || brand == "" {
		s.notify(ctx, w.ID, notifying.Destructive("Error", "Please enter a campaign name and brand"))
		return domain.Campaign{}, NewDashboardError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "name, brand")
	}

	id, err := s.newID()
	if err != nil {
		return domain.Campaign{}, err
	}

	campaign := domain.Campaign{
		ID:          id,
		Name:        name,
		Brand:       brand,
		Target:      strings.TrimSpace(req.Target),
		Goal:        strings.TrimSpace(req.Goal),
		Status:      domain.CampaignStatusDraft,
		LastUpdated: s.now().Format(campaignDateLayout),
	}

	w.Lock()
	w.Campaigns = append(w.Campaigns, campaign)
	w.Unlock()

	s.notify(ctx, w.ID, notifying.Success("Campaign Created", "Your new campaign has been created successfully."))

	return campaign, nil
}

func (s *Service) Workflow(w *session.Workspace) []domain.EmailStep {
	w.Lock()
	defer w.Unlock()

	return w.Workflow.Steps()
}

func (s *Service) AddWorkflowStep(w *session.Workspace, kind domain.StepKind) (domain.EmailStep, error) {
	w.Lock()
	defer w.Unlock()

	step, err := w.Workflow.AddStep(kind)
	if errors.Is(err, sequence.ErrInvalidKind) {
		return domain.EmailStep{}, NewDashboardError(errors.Join(ErrInvalidRequest, err), apiErrors.ErrInvalidRequest, string(kind))
	}

	return step, err
}

func (s *Service) ToggleWorkflowStep(w *session.Workspace, id string) (domain.EmailStep, error) {
	w.Lock()
	defer w.Unlock()

	step, err := w.Workflow.ToggleExpand(id)
	if errors.Is(err, sequence.ErrStepNotFound) {
		return domain.EmailStep{}, NewDashboardError(errors.Join(ErrNotFound, err), apiErrors.ErrNotFound, id)
	}

	return step, err
}

// SaveWorkflow não persiste nada; apenas confirma com um toast
func (s *Service) SaveWorkflow(ctx context.Context, w *session.Workspace) []domain.EmailStep {
	steps := s.Workflow(w)

	s.notify(ctx, w.ID, notifying.Success("Workflow Saved", "Your email workflow has been saved successfully."))

	return steps
}

// GenerateEmail simula o redator de IA: depois do atraso anexa um passo de email
func (s *Service) GenerateEmail(ctx context.Context, w *session.Workspace, req domain.GenerateEmailRequest) error {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		s.notify(ctx, w.ID, notifying.Destructive("Error", "Please describe the email you want to write"))
		return NewDashboardError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "prompt")
	}

	tone := req.Tone
	if tone == "" {
		tone = domain.EmailToneFriendly
	}
	if !tone.IsValid() {
		return NewDashboardError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "tone: "+string(tone))
	}

	subject, body := draftEmail(prompt, tone)

	// O aviso de início sai antes do agendamento para nunca chegar depois do resultado
	s.notify(ctx, w.ID, notifying.Info("Generating Email", "The AI writer is drafting your email."))

	err := s.tasks.After(s.cfg.AIEmailDelay, func() {
		w.Lock()
		_, err := w.Workflow.AddEmail(subject, body)
		w.Unlock()

		if err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro ao anexar email gerado")
			s.notify(ctx, w.ID, notifying.Destructive("Generation Failed", "The AI writer could not add the email to your workflow."))
			return
		}

		s.notify(ctx, w.ID, notifying.Success("Email Generated", "A new email step was added to your workflow."))
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao agendar geração de email")
		s.notify(ctx, w.ID, notifying.Destructive("Generation Failed", "The AI writer could not start. Please try again."))
		return NewDashboardError(errors.Join(ErrScheduleFailed, err), apiErrors.ErrInternalServer, "")
	}

	return nil
}

var toneOpenings = map[domain.EmailTone]string{
	domain.EmailToneFriendly:     "Hope your week is going well!",
	domain.EmailToneProfessional: "I am reaching out regarding an opportunity for {company}.",
	domain.EmailToneDirect:       "I'll get straight to the point.",
	domain.EmailTonePersuasive:   "Teams like {company} are already seeing results with this.",
	domain.EmailToneFounder:      "As a founder myself, I know how precious your time is.",
}

var toneClosings = map[domain.EmailTone]string{
	domain.EmailToneFriendly:     "Cheers,",
	domain.EmailToneProfessional: "Kind regards,",
	domain.EmailToneDirect:       "Thanks,",
	domain.EmailTonePersuasive:   "Looking forward to it,",
	domain.EmailToneFounder:      "Founder to founder,",
}

func draftEmail(prompt string, tone domain.EmailTone) (string, string) {
	subject := fmt.Sprintf("Quick idea for {company}: %s", prompt)
	body := fmt.Sprintf(
		"Hi {first_name},\n\n%s\n\n%s\n\nWould you be open to a 15-minute call next week?\n\n%s\nYour Name",
		toneOpenings[tone],
		prompt,
		toneClosings[tone],
	)
	return subject, body
}
