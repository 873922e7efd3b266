package dashboard

import (
	"fmt"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
)

func (s *Service) Navigation(w *session.Workspace) []domain.NavItem {
	active := s.ActiveTab(w)

	items := make([]domain.NavItem, 0, len(domain.Tabs))
	for _, tab := range domain.Tabs {
		items = append(items, domain.NavItem{
			ID:     tab,
			Label:  tab.Label(),
			Active: tab == active,
		})
	}

	return items
}

func (s *Service) ActiveTab(w *session.Workspace) domain.Tab {
	w.Lock()
	defer w.Unlock()

	return w.ActiveTab
}

func (s *Service) SetActiveTab(w *session.Workspace, value string) (domain.Tab, error) {
	tab, err := parseTab(value)
	if err != nil {
		return "", err
	}

	w.Lock()
	w.ActiveTab = tab
	w.Unlock()

	return tab, nil
}

// Render monta o painel pedido. Valor vazio renderiza a aba ativa.
func (s *Service) Render(w *session.Workspace, value string, query domain.ListQuery) (PanelView, error) {
	tab := s.ActiveTab(w)
	if value != "" {
		parsed, err := parseTab(value)
		if err != nil {
			return nil, err
		}
		tab = parsed
	}

	switch tab {
	case domain.TabOverview:
		return s.Overview(w), nil
	case domain.TabBrandManagement:
		return s.ListBrands(w, query)
	case domain.TabBrandSetup:
		return s.brandSetup(), nil
	case domain.TabDomainPurchase:
		return s.ListDomains(w, query.Search), nil
	case domain.TabInboxOverview:
		return s.ListInboxes(w, query)
	case domain.TabInboxHealth:
		return s.InboxHealth(w), nil
	case domain.TabLeadGeneration:
		return s.ListGeneratedLeads(w, query)
	case domain.TabLeadFinder:
		return s.ListFinderLeads(w, query)
	case domain.TabCampaigns:
		return s.ListCampaigns(w, query)
	}

	return nil, NewDashboardError(ErrUnknownTab, apiErrors.ErrUnknownTab, fmt.Sprintf("%q", tab))
}

func parseTab(value string) (domain.Tab, error) {
	tab, err := domain.ParseTab(value)
	if err != nil {
		return "", NewDashboardError(ErrUnknownTab, apiErrors.ErrUnknownTab, fmt.Sprintf("%q", value))
	}
	return tab, nil
}
