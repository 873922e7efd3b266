package dashboard

import (
	"context"
	"fmt"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/seed"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/filtering"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/notifying"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coldinfra-dashboard/pkg/utils"
)

var domainMatcher = filtering.Matcher[domain.DomainSuggestion]{
	Keys: func(d domain.DomainSuggestion) []string { return []string{d.Name} },
}

// ListDomains filtra as sugestões pelo nome. Contagem e total consideram todas as selecionadas.
func (s *Service) ListDomains(w *session.Workspace, search string) DomainsView {
	w.Lock()
	defer w.Unlock()

	return domainsView(w.Domains, search)
}

func domainsView(all []domain.DomainSuggestion, search string) DomainsView {
	selection := selectionOf(all)
	selection.Domains = filtering.Apply(all, search, domain.StatusAll, domainMatcher)

	return DomainsView{DomainSelection: selection}
}

func selectionOf(all []domain.DomainSuggestion) domain.DomainSelection {
	selection := domain.DomainSelection{
		BrandName: seed.DomainBrandName,
		Domains:   make([]domain.DomainSuggestion, 0),
	}

	for _, d := range all {
		if !d.Selected {
			continue
		}
		selection.Domains = append(selection.Domains, d)
		selection.SelectedCount++
		selection.TotalPrice += d.Price
	}

	selection.TotalPrice = utils.RoundWithTwoDecimalPlace(selection.TotalPrice)

	return selection
}

// ToggleDomain inverte a seleção de um domínio disponível
func (s *Service) ToggleDomain(w *session.Workspace, id string) (domain.DomainSuggestion, error) {
	w.Lock()
	defer w.Unlock()

	for i := range w.Domains {
		if w.Domains[i].ID != id {
			continue
		}

		if w.Domains[i].Availability != domain.AvailabilityAvailable {
			return domain.DomainSuggestion{}, NewDashboardError(ErrDomainUnavailable, apiErrors.ErrInvalidRequest, w.Domains[i].Name)
		}

		w.Domains[i].Selected = !w.Domains[i].Selected
		return w.Domains[i], nil
	}

	return domain.DomainSuggestion{}, notFound("domínio", id)
}

// SelectAllDomains alterna todos os domínios disponíveis: se todos já estão
// selecionados, desmarca todos; senão marca todos. Premium e indisponíveis não mudam.
func (s *Service) SelectAllDomains(w *session.Workspace) DomainsView {
	w.Lock()
	defer w.Unlock()

	allSelected := true
	for _, d := range w.Domains {
		if d.Availability == domain.AvailabilityAvailable && !d.Selected {
			allSelected = false
			break
		}
	}

	for i := range w.Domains {
		if w.Domains[i].Availability == domain.AvailabilityAvailable {
			w.Domains[i].Selected = !allSelected
		}
	}

	return domainsView(w.Domains, "")
}

func (s *Service) SetupDomains(ctx context.Context, w *session.Workspace) (domain.DomainSelection, error) {
	w.Lock()
	selection := selectionOf(w.Domains)
	w.Unlock()

	if selection.SelectedCount == 0 {
		s.notify(ctx, w.ID, notifying.Destructive("No domains selected", "Please select at least one domain to continue"))
		return selection, NewDashboardError(ErrNothingSelected, apiErrors.ErrInvalidRequest, "domínios")
	}

	s.notify(ctx, w.ID, notifying.Info(
		"Domains setup initiated",
		fmt.Sprintf("Setting up %d domains for %s", selection.SelectedCount, selection.BrandName),
	))

	return selection, nil
}
