package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/coldinfra-dashboard/internal/config"
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/seed"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/notifying"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var simulation = config.Simulation{
	UploadDelay:  2 * time.Second,
	AIEmailDelay: 1500 * time.Millisecond,
}

type fakeScheduler struct {
	delays []time.Duration
	tasks  []func()
}

func (f *fakeScheduler) After(delay time.Duration, task func()) error {
	f.delays = append(f.delays, delay)
	f.tasks = append(f.tasks, task)
	return nil
}

func (f *fakeScheduler) RunAll() {
	tasks := f.tasks
	f.tasks = nil
	for _, task := range tasks {
		task()
	}
}

type fixture struct {
	service Dashboarder
	center  *notifying.Center
	tasks   *fakeScheduler
	w       *session.Workspace
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	n := 0
	ids := func() (string, error) {
		n++
		return fmt.Sprintf("new%d", n), nil
	}
	now := func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }

	store := session.NewStore(config.Session{Secret: "segredo", TTL: time.Hour})
	w, _, err := store.Create()
	require.NoError(t, err)

	center := notifying.NewCenter(time.Minute)
	tasks := &fakeScheduler{}

	return fixture{
		service: NewService(center, tasks, simulation, WithClock(now), WithIDGenerator(ids)),
		center:  center,
		tasks:   tasks,
		w:       w,
	}
}

func (f fixture) lastToast(t *testing.T) domain.Notification {
	t.Helper()

	toasts := f.center.List(f.w.ID)
	require.NotEmpty(t, toasts)
	return toasts[len(toasts)-1]
}

func assertCode(t *testing.T, err error, base error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, base)

	var dashErr *DashboardError
	require.ErrorAs(t, err, &dashErr)
	assert.Equal(t, code, dashErr.Code)
}

func brandNames(brands []domain.Brand) []string {
	names := make([]string, 0, len(brands))
	for _, b := range brands {
		names = append(names, b.Name)
	}
	return names
}

func TestService_Navigation(t *testing.T) {
	f := newFixture(t)

	items := f.service.Navigation(f.w)
	require.Len(t, items, len(domain.Tabs))
	assert.Equal(t, domain.TabOverview, items[0].ID)
	assert.True(t, items[0].Active)

	tab, err := f.service.SetActiveTab(f.w, "lead-finder")
	require.NoError(t, err)
	assert.Equal(t, domain.TabLeadFinder, tab)
	assert.Equal(t, domain.TabLeadFinder, f.service.ActiveTab(f.w))

	for _, item := range f.service.Navigation(f.w) {
		assert.Equal(t, item.ID == domain.TabLeadFinder, item.Active, item.ID)
	}

	_, err = f.service.SetActiveTab(f.w, "billing")
	assertCode(t, err, ErrUnknownTab, apiErrors.ErrUnknownTab)
	assert.Equal(t, domain.TabLeadFinder, f.service.ActiveTab(f.w))
}

func TestService_Render(t *testing.T) {
	f := newFixture(t)

	for _, tab := range domain.Tabs {
		t.Run(string(tab), func(t *testing.T) {
			view, err := f.service.Render(f.w, string(tab), domain.ListQuery{})
			require.NoError(t, err)
			assert.Equal(t, tab, view.Tab())
		})
	}

	t.Run("Sem aba usa a ativa", func(t *testing.T) {
		_, err := f.service.SetActiveTab(f.w, "campaigns")
		require.NoError(t, err)

		view, err := f.service.Render(f.w, "", domain.ListQuery{})
		require.NoError(t, err)
		assert.IsType(t, CampaignsView{}, view)
	})

	t.Run("Aba desconhecida", func(t *testing.T) {
		_, err := f.service.Render(f.w, "settings", domain.ListQuery{})
		assertCode(t, err, ErrUnknownTab, apiErrors.ErrUnknownTab)
	})
}

func TestService_Overview(t *testing.T) {
	f := newFixture(t)

	view := f.service.Overview(f.w)

	assert.Equal(t, 30600, view.Totals.EmailsSent)
	assert.Equal(t, 162, view.Totals.LeadsCaptured)
	assert.Equal(t, 5, view.Totals.ActiveInboxes)
	assert.Equal(t, 3, view.Totals.Alerts)
	assert.Len(t, view.Performance, 7)
}

func TestService_ListBrands(t *testing.T) {
	tests := []struct {
		name    string
		query   domain.ListQuery
		want    []string
		wantErr error
	}{
		{
			name:  "Sem filtros - ordem original",
			query: domain.ListQuery{},
			want:  []string{"TechCorp Solutions", "PropTech Innovations", "MedTech Solutions", "E-commerce Accelerator", "FinTech Ventures"},
		},
		{
			name:  "Busca sem diferenciar maiúsculas",
			query: domain.ListQuery{Search: "TECH"},
			want:  []string{"TechCorp Solutions", "PropTech Innovations", "MedTech Solutions", "FinTech Ventures"},
		},
		{
			name:  "Status pausado",
			query: domain.ListQuery{Status: "paused"},
			want:  []string{"MedTech Solutions"},
		},
		{
			name:  "Ordena por emails enviados desc",
			query: domain.ListQuery{Sort: "emails_sent", Order: domain.SortDesc},
			want:  []string{"E-commerce Accelerator", "TechCorp Solutions", "PropTech Innovations", "FinTech Ventures", "MedTech Solutions"},
		},
		{
			name:  "Ordena por custo por lead asc",
			query: domain.ListQuery{Search: "solutions", Sort: "cost_per_lead"},
			want:  []string{"TechCorp Solutions", "MedTech Solutions"},
		},
		{
			name:    "Status fora do conjunto",
			query:   domain.ListQuery{Status: "archived"},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "Ordenação desconhecida",
			query:   domain.ListQuery{Sort: "revenue"},
			wantErr: ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			view, err := f.service.ListBrands(f.w, tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, brandNames(view.Brands))
			assert.Equal(t, domain.DateRange30Days, view.DateRange)
		})
	}
}

func TestService_BrandSummary(t *testing.T) {
	f := newFixture(t)

	view, err := f.service.ListBrands(f.w, domain.ListQuery{Status: "completed"})
	require.NoError(t, err)

	// O resumo ignora os filtros
	assert.Equal(t, 5, view.Summary.TotalBrands)
	assert.Equal(t, 54450, view.Summary.TotalEmails)
	assert.InDelta(t, 485004.75, view.Summary.TotalRevenue, 0.01)
	assert.InDelta(t, 75.05, view.Summary.AvgCostPerLead, 0.001)
}

func TestService_SetBrandStatus_PauseTechCorp(t *testing.T) {
	f := newFixture(t)

	before, err := f.service.ListBrands(f.w, domain.ListQuery{})
	require.NoError(t, err)

	brand, err := f.service.SetBrandStatus(context.Background(), f.w, domain.UpdateBrandStatusRequest{ID: "1", Status: domain.BrandStatusPaused})
	require.NoError(t, err)

	expected := before.Brands[0]
	expected.Status = domain.BrandStatusPaused
	assert.Equal(t, expected, brand)

	after, err := f.service.ListBrands(f.w, domain.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, expected, after.Brands[0])
	assert.Equal(t, before.Brands[1:], after.Brands[1:])

	paused, err := f.service.ListBrands(f.w, domain.ListQuery{Status: "paused"})
	require.NoError(t, err)
	assert.Equal(t, []string{"TechCorp Solutions", "MedTech Solutions"}, brandNames(paused.Brands))

	toast := f.lastToast(t)
	assert.Equal(t, "Brand Paused", toast.Title)
	assert.Equal(t, "TechCorp Solutions has been paused.", toast.Description)
}

func TestService_SetBrandStatus_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	original := seed.Brands()[0]
	require.Equal(t, domain.BrandStatusActive, original.Status)

	_, err := f.service.SetBrandStatus(ctx, f.w, domain.UpdateBrandStatusRequest{ID: original.ID, Status: domain.BrandStatusPaused})
	require.NoError(t, err)

	restored, err := f.service.SetBrandStatus(ctx, f.w, domain.UpdateBrandStatusRequest{ID: original.ID, Status: domain.BrandStatusActive})
	require.NoError(t, err)
	assert.Equal(t, original, restored)

	view, err := f.service.ListBrands(f.w, domain.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, seed.Brands(), view.Brands)
}

func TestService_SetBrandStatus_Errors(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.SetBrandStatus(context.Background(), f.w, domain.UpdateBrandStatusRequest{ID: "1", Status: "archived"})
	assertCode(t, err, ErrInvalidStatus, apiErrors.ErrInvalidStatus)

	_, err = f.service.SetBrandStatus(context.Background(), f.w, domain.UpdateBrandStatusRequest{ID: "99", Status: domain.BrandStatusActive})
	assertCode(t, err, ErrNotFound, apiErrors.ErrNotFound)

	assert.Empty(t, f.center.List(f.w.ID))
}

func TestService_SetDateRange(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.SetDateRange(f.w, domain.DateRange7Days))
	view, err := f.service.ListBrands(f.w, domain.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, domain.DateRange7Days, view.DateRange)

	assert.ErrorIs(t, f.service.SetDateRange(f.w, "1year"), ErrInvalidRequest)
}

func TestService_ExportBrandsCSV(t *testing.T) {
	f := newFixture(t)

	data, err := f.service.ExportBrandsCSV(context.Background(), f.w, domain.ListQuery{Status: "active"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "id,name,emails_sent"))
	assert.Equal(t, "1,TechCorp Solutions,15280,427,183,52,12,28800.00,67.45,357.28,active", lines[1])

	assert.Equal(t, "Export Started", f.lastToast(t).Title)
}

func TestService_AddBrand(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.AddBrand(context.Background(), f.w))
	assert.Equal(t, "Add New Brand", f.lastToast(t).Title)
}

func TestService_RecommendSetup(t *testing.T) {
	tests := []struct {
		name        string
		req         domain.BrandSetupRequest
		wantInboxes int
		wantDomains int
		wantErr     error
	}{
		{name: "Meta mínima", req: domain.BrandSetupRequest{Name: "Acme", DailyEmailGoal: 100}, wantInboxes: 2, wantDomains: 1},
		{name: "Arredonda para cima", req: domain.BrandSetupRequest{Name: "Acme", DailyEmailGoal: 250}, wantInboxes: 5, wantDomains: 3},
		{name: "Meta grande", req: domain.BrandSetupRequest{Name: "Acme", DailyEmailGoal: 1000}, wantInboxes: 20, wantDomains: 10},
		{name: "Meta abaixo de 100", req: domain.BrandSetupRequest{Name: "Acme", DailyEmailGoal: 99}, wantErr: ErrInvalidRequest},
		{name: "Sem nome", req: domain.BrandSetupRequest{Name: "  ", DailyEmailGoal: 500}, wantErr: ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec, err := f.service.RecommendSetup(context.Background(), f.w, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domain.NotificationDestructive, f.lastToast(t).Variant)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantInboxes, rec.Inboxes)
			assert.Equal(t, tt.wantDomains, rec.Domains)
			assert.Empty(t, f.center.List(f.w.ID))
		})
	}
}

func TestService_Domains(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.SetupDomains(ctx, f.w)
	assertCode(t, err, ErrNothingSelected, apiErrors.ErrInvalidRequest)
	assert.Equal(t, "No domains selected", f.lastToast(t).Title)

	selected, err := f.service.ToggleDomain(f.w, "1")
	require.NoError(t, err)
	assert.True(t, selected.Selected)

	view := f.service.ListDomains(f.w, "")
	assert.Equal(t, 1, view.SelectedCount)
	assert.InDelta(t, 12.99, view.TotalPrice, 0.001)
	assert.Len(t, view.Domains, 10)
	assert.Equal(t, "Acme Inc.", view.BrandName)

	_, err = f.service.ToggleDomain(f.w, "5")
	assert.ErrorIs(t, err, ErrDomainUnavailable)
	_, err = f.service.ToggleDomain(f.w, "10")
	assert.ErrorIs(t, err, ErrDomainUnavailable)
	_, err = f.service.ToggleDomain(f.w, "42")
	assert.ErrorIs(t, err, ErrNotFound)

	all := f.service.SelectAllDomains(f.w)
	assert.Equal(t, 8, all.SelectedCount)
	assert.InDelta(t, 125.92, all.TotalPrice, 0.001)

	selection, err := f.service.SetupDomains(ctx, f.w)
	require.NoError(t, err)
	assert.Equal(t, 8, selection.SelectedCount)
	assert.Equal(t, "Setting up 8 domains for Acme Inc.", f.lastToast(t).Description)

	none := f.service.SelectAllDomains(f.w)
	assert.Equal(t, 0, none.SelectedCount)
	assert.Zero(t, none.TotalPrice)
}

func TestService_ListDomains_Search(t *testing.T) {
	f := newFixture(t)

	view := f.service.ListDomains(f.w, ".IO")

	names := make([]string, 0, len(view.Domains))
	for _, d := range view.Domains {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"tryacme.io", "acmesend.io"}, names)
}

func TestService_ListInboxes(t *testing.T) {
	f := newFixture(t)

	view, err := f.service.ListInboxes(f.w, domain.ListQuery{Search: "TRYACME"})
	require.NoError(t, err)
	assert.Len(t, view.Inboxes, 2)

	view, err = f.service.ListInboxes(f.w, domain.ListQuery{Status: "active"})
	require.NoError(t, err)
	assert.Len(t, view.Inboxes, 5)

	assert.Equal(t, domain.StatusCount{"all": 8, "warming": 2, "active": 5, "paused": 1}, view.Counts)

	_, err = f.service.ListInboxes(f.w, domain.ListQuery{Status: "deleted"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_InboxHealth(t *testing.T) {
	f := newFixture(t)

	view := f.service.InboxHealth(f.w)
	require.NotNil(t, view.Selected)
	assert.Equal(t, "1", view.Selected.ID)
	assert.Len(t, view.Delivery, 7)
	assert.Len(t, view.Engagement, 7)

	view, err := f.service.SelectInbox(f.w, "5")
	require.NoError(t, err)
	assert.Equal(t, domain.BlacklistListed, view.Selected.BlacklistStatus)
	assert.Equal(t, "5", f.service.InboxHealth(f.w).Selected.ID)

	_, err = f.service.SelectInbox(f.w, "77")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListGeneratedLeads(t *testing.T) {
	f := newFixture(t)

	view, err := f.service.ListGeneratedLeads(f.w, domain.ListQuery{Status: "booked"})
	require.NoError(t, err)
	assert.Len(t, view.Leads, 2)
	assert.Equal(t, domain.StatusCount{"all": 8, "replied": 3, "booked": 2, "no_response": 3}, view.Counts)
	assert.Len(t, view.ByBrand, 5)

	view, err = f.service.ListGeneratedLeads(f.w, domain.ListQuery{Search: "consulting"})
	require.NoError(t, err)
	require.Len(t, view.Leads, 1)
	assert.Equal(t, "David Brown", view.Leads[0].Name)
}

func TestService_LeadFinder_Cart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.AddLeadsToCart(ctx, f.w)
	assert.ErrorIs(t, err, ErrNothingSelected)
	assert.Equal(t, domain.NotificationDestructive, f.lastToast(t).Variant)

	_, err = f.service.ToggleLead(f.w, "1")
	require.NoError(t, err)
	_, err = f.service.ToggleLead(f.w, "3")
	require.NoError(t, err)

	view, err := f.service.ListFinderLeads(f.w, domain.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, view.SelectedCount)

	cart, err := f.service.AddLeadsToCart(ctx, f.w)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.SelectedCount)
	assert.Equal(t, "2 leads added to your cart. Proceed to checkout.", f.lastToast(t).Description)

	_, err = f.service.ToggleLead(f.w, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListFinderLeads(t *testing.T) {
	f := newFixture(t)

	view, err := f.service.ListFinderLeads(f.w, domain.ListQuery{Search: "tech", Status: "sent"})
	require.NoError(t, err)
	require.Len(t, view.Leads, 2)
	assert.Equal(t, "Sarah Johnson", view.Leads[0].Name)
	assert.Equal(t, "Robert Garcia", view.Leads[1].Name)
	assert.Equal(t, domain.StatusCount{"all": 5, "not_sent": 2, "sent": 2, "replied": 1}, view.Counts)
}

func TestService_UploadLeads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	content := []byte("name,email,title,company\nAda Lovelace,ada@example.com,CTO,Engines\n\nGrace Hopper,grace@example.com,Admiral,Navy\n")

	upload, err := f.service.UploadLeads(ctx, f.w, "leads.csv", content)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadUpload{FileName: "leads.csv", Rows: 2}, upload)
	assert.Equal(t, "CSV Upload Started", f.lastToast(t).Title)

	// Nada é importado antes do atraso
	view, err := f.service.ListFinderLeads(f.w, domain.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, view.Leads, 5)
	assert.Equal(t, []time.Duration{simulation.UploadDelay}, f.tasks.delays)

	f.tasks.RunAll()

	view, err = f.service.ListFinderLeads(f.w, domain.ListQuery{})
	require.NoError(t, err)
	require.Len(t, view.Leads, 7)

	imported := view.Leads[6]
	assert.Equal(t, "Grace Hopper", imported.Name)
	assert.Equal(t, "Navy", imported.Company)
	assert.Equal(t, CSVImportSource, imported.Source)
	assert.Equal(t, domain.LeadStatusNotSent, imported.Status)
	assert.NotEmpty(t, imported.ID)

	toast := f.lastToast(t)
	assert.Equal(t, "Upload Complete", toast.Title)
	assert.Equal(t, "Successfully imported 2 leads from your CSV.", toast.Description)
}

func TestService_UploadLeads_Errors(t *testing.T) {
	t.Run("Sem arquivo", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.UploadLeads(context.Background(), f.w, "", nil)
		assertCode(t, err, ErrMissingRequiredData, apiErrors.ErrMissingRequiredData)
		assert.Equal(t, "Upload Failed", f.lastToast(t).Title)
		assert.Empty(t, f.tasks.tasks)
	})

	t.Run("CSV malformado", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.UploadLeads(context.Background(), f.w, "leads.csv", []byte("name,email\n\"sem fim,a@b.com\n"))
		assertCode(t, err, ErrInvalidCSV, apiErrors.ErrInvalidFormat)
		assert.Empty(t, f.tasks.tasks)
	})

	t.Run("Falha ao agendar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tasks := mocks.NewMockTaskScheduler(ctrl)
		tasks.EXPECT().After(simulation.UploadDelay, gomock.Any()).Return(errors.New("scheduler parado"))

		f := newFixture(t)
		service := NewService(f.center, tasks, simulation)

		_, err := service.UploadLeads(context.Background(), f.w, "leads.csv", []byte("Ada,ada@example.com\n"))
		assertCode(t, err, ErrScheduleFailed, apiErrors.ErrInternalServer)
	})
}

func TestService_Campaigns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.service.ListCampaigns(f.w, domain.ListQuery{Brand: "techcorp"})
	require.NoError(t, err)
	require.Len(t, view.Campaigns, 1)
	assert.Equal(t, "SaaS Founders Outreach", view.Campaigns[0].Name)
	assert.Len(t, view.Brands, 4)
	assert.Len(t, view.Workflow, 5)

	view, err = f.service.ListCampaigns(f.w, domain.ListQuery{Status: "draft"})
	require.NoError(t, err)
	require.Len(t, view.Campaigns, 1)
	assert.Equal(t, "Healthcare Decision Makers", view.Campaigns[0].Name)

	campaign, err := f.service.CreateCampaign(ctx, f.w, domain.CreateCampaignRequest{Name: "Fintech CFOs", Brand: "FinTech Ventures", Target: "CFOs"})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)
	assert.Equal(t, "2024-05-01", campaign.LastUpdated)
	assert.Equal(t, "Campaign Created", f.lastToast(t).Title)

	view, err = f.service.ListCampaigns(f.w, domain.ListQuery{Status: "draft"})
	require.NoError(t, err)
	assert.Len(t, view.Campaigns, 2)

	_, err = f.service.CreateCampaign(ctx, f.w, domain.CreateCampaignRequest{Name: "Sem marca"})
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestService_Workflow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	step, err := f.service.AddWorkflowStep(f.w, domain.StepKindDelay)
	require.NoError(t, err)
	assert.Equal(t, 6, len(f.service.Workflow(f.w)))

	toggled, err := f.service.ToggleWorkflowStep(f.w, step.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Expanded)

	toggled, err = f.service.ToggleWorkflowStep(f.w, step.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Expanded)

	_, err = f.service.AddWorkflowStep(f.w, "sms")
	assertCode(t, err, ErrInvalidRequest, apiErrors.ErrInvalidRequest)

	_, err = f.service.ToggleWorkflowStep(f.w, "nope")
	assertCode(t, err, ErrNotFound, apiErrors.ErrNotFound)

	steps := f.service.SaveWorkflow(ctx, f.w)
	assert.Len(t, steps, 6)
	assert.Equal(t, "Workflow Saved", f.lastToast(t).Title)
}

func TestService_GenerateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.service.GenerateEmail(ctx, f.w, domain.GenerateEmailRequest{Prompt: "SaaS founders who just raised", Tone: domain.EmailToneFounder})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{simulation.AIEmailDelay}, f.tasks.delays)
	assert.Len(t, f.service.Workflow(f.w), 5)

	f.tasks.RunAll()

	steps := f.service.Workflow(f.w)
	require.Len(t, steps, 6)
	assert.Equal(t, domain.StepKindEmail, steps[5].Kind)
	assert.Contains(t, steps[5].Subject, "SaaS founders who just raised")
	assert.Contains(t, steps[5].Body, "Founder to founder,")
	assert.Equal(t, "Email Generated", f.lastToast(t).Title)
}

func TestService_GenerateEmail_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.service.GenerateEmail(ctx, f.w, domain.GenerateEmailRequest{Prompt: " "})
	assert.ErrorIs(t, err, ErrMissingRequiredData)

	err = f.service.GenerateEmail(ctx, f.w, domain.GenerateEmailRequest{Prompt: "oi", Tone: "sarcastic"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.Empty(t, f.tasks.tasks)

	// Tom vazio usa friendly
	require.NoError(t, f.service.GenerateEmail(ctx, f.w, domain.GenerateEmailRequest{Prompt: "oi"}))
	f.tasks.RunAll()
	steps := f.service.Workflow(f.w)
	assert.Contains(t, steps[len(steps)-1].Body, "Cheers,")
}

// syncScheduler roda a tarefa dentro do próprio After, como um atraso zero
type syncScheduler struct{}

func (syncScheduler) After(_ time.Duration, task func()) error {
	task()
	return nil
}

func TestService_GenerateEmail_ToastOrder(t *testing.T) {
	f := newFixture(t)
	service := NewService(f.center, syncScheduler{}, simulation)

	require.NoError(t, service.GenerateEmail(context.Background(), f.w, domain.GenerateEmailRequest{Prompt: "follow up"}))

	toasts := f.center.List(f.w.ID)
	require.Len(t, toasts, 2)
	assert.Equal(t, "Generating Email", toasts[0].Title)
	assert.Equal(t, "Email Generated", toasts[1].Title)
}

func TestService_GenerateEmail_ScheduleFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tasks := mocks.NewMockTaskScheduler(ctrl)
	tasks.EXPECT().After(simulation.AIEmailDelay, gomock.Any()).Return(errors.New("scheduler parado"))

	f := newFixture(t)
	service := NewService(f.center, tasks, simulation)

	err := service.GenerateEmail(context.Background(), f.w, domain.GenerateEmailRequest{Prompt: "follow up"})
	assertCode(t, err, ErrScheduleFailed, apiErrors.ErrInternalServer)
	assert.Equal(t, "Generation Failed", f.lastToast(t).Title)
}
