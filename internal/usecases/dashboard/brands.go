package dashboard

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/filtering"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/notifying"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coldinfra-dashboard/pkg/log"
	"github.com/vfg2006/coldinfra-dashboard/pkg/utils"
)

// Parâmetros do assistente de configuração de marca
const (
	MinDailyEmailGoal = 100
	EmailsPerInbox    = 50
	InboxesPerDomain  = 2
)

var brandMatcher = filtering.Matcher[domain.Brand]{
	Keys:   func(b domain.Brand) []string { return []string{b.Name} },
	Status: func(b domain.Brand) string { return string(b.Status) },
}

var brandSorts = map[string]func(a, b domain.Brand) bool{
	"name":            func(a, b domain.Brand) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
	"emails_sent":     func(a, b domain.Brand) bool { return a.EmailsSent < b.EmailsSent },
	"leads_generated": func(a, b domain.Brand) bool { return a.LeadsGenerated < b.LeadsGenerated },
	"cost_per_lead":   func(a, b domain.Brand) bool { return a.CostPerLead < b.CostPerLead },
}

var brandStatusTitles = map[domain.BrandStatus][2]string{
	domain.BrandStatusActive:    {"Brand Activated", "activated"},
	domain.BrandStatusPaused:    {"Brand Paused", "paused"},
	domain.BrandStatusCompleted: {"Brand Completed", "marked as completed"},
}

// ListBrands filtra e ordena as marcas. O resumo considera sempre todas as marcas.
func (s *Service) ListBrands(w *session.Workspace, query domain.ListQuery) (BrandsView, error) {
	w.Lock()
	brands := make([]domain.Brand, len(w.Brands))
	copy(brands, w.Brands)
	dateRange := w.DateRange
	w.Unlock()

	filtered, err := filterBrands(brands, query)
	if err != nil {
		return BrandsView{}, err
	}

	return BrandsView{
		Brands:    filtered,
		Summary:   summarizeBrands(brands),
		DateRange: dateRange,
	}, nil
}

func filterBrands(brands []domain.Brand, query domain.ListQuery) ([]domain.Brand, error) {
	err := validateStatus(query.Status,
		string(domain.BrandStatusActive),
		string(domain.BrandStatusPaused),
		string(domain.BrandStatusCompleted),
	)
	if err != nil {
		return nil, err
	}

	filtered := filtering.Apply(brands, query.Search, query.Status, brandMatcher)

	if query.Sort != "" {
		less, ok := brandSorts[query.Sort]
		if !ok {
			return nil, NewDashboardError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "sort: "+query.Sort)
		}
		filtering.Sort(filtered, less, query.Order)
	}

	return filtered, nil
}

func summarizeBrands(brands []domain.Brand) domain.BrandSummary {
	summary := domain.BrandSummary{TotalBrands: len(brands)}
	if len(brands) == 0 {
		return summary
	}

	var costPerLead float64
	for _, b := range brands {
		summary.TotalEmails += b.EmailsSent
		summary.TotalRevenue += b.RevenuePerLead * float64(b.LeadsGenerated)
		costPerLead += b.CostPerLead
	}

	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)
	summary.AvgCostPerLead = utils.RoundWithTwoDecimalPlace(costPerLead / float64(len(brands)))

	return summary
}

// SetBrandStatus altera somente o status da marca
func (s *Service) SetBrandStatus(ctx context.Context, w *session.Workspace, req domain.UpdateBrandStatusRequest) (domain.Brand, error) {
	if !req.Status.IsValid() {
		return domain.Brand{}, NewDashboardError(ErrInvalidStatus, apiErrors.ErrInvalidStatus, string(req.Status))
	}

	w.Lock()
	idx := -1
	for i := range w.Brands {
		if w.Brands[i].ID == req.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		w.Unlock()
		return domain.Brand{}, notFound("marca", req.ID)
	}

	w.Brands[idx].Status = req.Status
	brand := w.Brands[idx]
	w.Unlock()

	titles := brandStatusTitles[req.Status]
	s.notify(ctx, w.ID, notifying.Info(titles[0], fmt.Sprintf("%s has been %s.", brand.Name, titles[1])))

	return brand, nil
}

func (s *Service) SetDateRange(w *session.Workspace, value domain.DateRange) error {
	if !value.IsValid() {
		return NewDashboardError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "date range: "+string(value))
	}

	w.Lock()
	w.DateRange = value
	w.Unlock()

	return nil
}

// ExportBrandsCSV gera o CSV da lista filtrada
func (s *Service) ExportBrandsCSV(ctx context.Context, w *session.Workspace, query domain.ListQuery) ([]byte, error) {
	view, err := s.ListBrands(w, query)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"id", "name", "emails_sent", "leads_generated", "calls_booked", "sales_closed",
		"domains_used", "domain_costs", "cost_per_lead", "revenue_per_lead", "status",
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, b := range view.Brands {
		row := []string{
			b.ID,
			b.Name,
			strconv.Itoa(b.EmailsSent),
			strconv.Itoa(b.LeadsGenerated),
			strconv.Itoa(b.CallsBooked),
			strconv.Itoa(b.SalesClosed),
			strconv.Itoa(b.DomainsUsed),
			strconv.FormatFloat(b.DomainCosts, 'f', 2, 64),
			strconv.FormatFloat(b.CostPerLead, 'f', 2, 64),
			strconv.FormatFloat(b.RevenuePerLead, 'f', 2, 64),
			string(b.Status),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar CSV de marcas")
		return nil, err
	}

	s.notify(ctx, w.ID, notifying.Info("Export Started", "Your brand data is being exported to CSV."))

	return buf.Bytes(), nil
}

func (s *Service) AddBrand(ctx context.Context, w *session.Workspace) error {
	s.notify(ctx, w.ID, notifying.Info("Add New Brand", "Create a new brand for your campaigns."))
	return nil
}

func (s *Service) brandSetup() BrandSetupView {
	return BrandSetupView{
		MinDailyEmailGoal: MinDailyEmailGoal,
		EmailsPerInbox:    EmailsPerInbox,
		InboxesPerDomain:  InboxesPerDomain,
	}
}

// RecommendSetup calcula caixas e domínios para a meta diária:
// uma caixa a cada 50 emails/dia e um domínio a cada 2 caixas.
func (s *Service) RecommendSetup(ctx context.Context, w *session.Workspace, req domain.BrandSetupRequest) (domain.BrandRecommendation, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.notify(ctx, w.ID, notifying.Destructive("Error", "Please enter a brand name"))
		return domain.BrandRecommendation{}, NewDashboardError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "name")
	}

	if req.DailyEmailGoal < MinDailyEmailGoal {
		s.notify(ctx, w.ID, notifying.Destructive("Error", fmt.Sprintf("Please enter a daily email goal of at least %d", MinDailyEmailGoal)))
		return domain.BrandRecommendation{}, NewDashboardError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "daily_email_goal")
	}

	inboxes := int(math.Ceil(float64(req.DailyEmailGoal) / EmailsPerInbox))
	domains := int(math.Ceil(float64(inboxes) / InboxesPerDomain))

	return domain.BrandRecommendation{
		Name:           name,
		DailyEmailGoal: req.DailyEmailGoal,
		Inboxes:        inboxes,
		Domains:        domains,
	}, nil
}
