package dashboard

import (
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/seed"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/filtering"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
)

var inboxMatcher = filtering.Matcher[domain.Inbox]{
	Keys:   func(i domain.Inbox) []string { return []string{i.Email, i.Domain} },
	Status: func(i domain.Inbox) string { return string(i.Status) },
}

var inboxStatuses = []string{
	string(domain.InboxStatusWarming),
	string(domain.InboxStatusActive),
	string(domain.InboxStatusPaused),
}

// ListInboxes filtra por email/domínio e status. As contagens são sobre todas as caixas.
func (s *Service) ListInboxes(w *session.Workspace, query domain.ListQuery) (InboxesView, error) {
	if err := validateStatus(query.Status, inboxStatuses...); err != nil {
		return InboxesView{}, err
	}

	w.Lock()
	defer w.Unlock()

	return InboxesView{
		Inboxes: filtering.Apply(w.Inboxes, query.Search, query.Status, inboxMatcher),
		Counts:  filtering.CountByStatus(w.Inboxes, inboxMatcher.Status, inboxStatuses...),
	}, nil
}

func (s *Service) InboxHealth(w *session.Workspace) InboxHealthView {
	w.Lock()
	defer w.Unlock()

	return inboxHealthView(w)
}

func (s *Service) SelectInbox(w *session.Workspace, id string) (InboxHealthView, error) {
	w.Lock()
	defer w.Unlock()

	for _, detail := range w.InboxDetails {
		if detail.ID == id {
			w.SelectedInbox = id
			return inboxHealthView(w), nil
		}
	}

	return InboxHealthView{}, notFound("caixa", id)
}

// inboxHealthView espera o lock do workspace. Sem seleção válida usa a primeira caixa.
func inboxHealthView(w *session.Workspace) InboxHealthView {
	details := make([]domain.InboxDetail, len(w.InboxDetails))
	copy(details, w.InboxDetails)

	view := InboxHealthView{
		Inboxes:    details,
		Delivery:   seed.DeliverySeries(),
		Engagement: seed.EngagementSeries(),
	}

	for i := range details {
		if details[i].ID == w.SelectedInbox {
			view.Selected = &details[i]
			break
		}
	}
	if view.Selected == nil && len(details) > 0 {
		view.Selected = &details[0]
	}

	return view
}
