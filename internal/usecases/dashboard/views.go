package dashboard

import "github.com/vfg2006/coldinfra-dashboard/internal/domain"

// PanelView é o conteúdo de um painel. O conjunto é fechado: só este pacote implementa.
type PanelView interface {
	Tab() domain.Tab
	isPanel()
}

type OverviewView struct {
	Totals      domain.OverviewTotals     `json:"totals"`
	Performance []domain.PerformancePoint `json:"performance"`
	Alerts      []domain.InboxAlert       `json:"alerts"`
}

type BrandsView struct {
	Brands    []domain.Brand      `json:"brands"`
	Summary   domain.BrandSummary `json:"summary"`
	DateRange domain.DateRange    `json:"date_range"`
}

type BrandSetupView struct {
	MinDailyEmailGoal int `json:"min_daily_email_goal"`
	EmailsPerInbox    int `json:"emails_per_inbox"`
	InboxesPerDomain  int `json:"inboxes_per_domain"`
}

type DomainsView struct {
	domain.DomainSelection
}

type InboxesView struct {
	Inboxes []domain.Inbox     `json:"inboxes"`
	Counts  domain.StatusCount `json:"counts"`
}

type InboxHealthView struct {
	Inboxes    []domain.InboxDetail     `json:"inboxes"`
	Selected   *domain.InboxDetail      `json:"selected"`
	Delivery   []domain.DeliveryPoint   `json:"delivery"`
	Engagement []domain.EngagementPoint `json:"engagement"`
}

type LeadGenerationView struct {
	Leads   []domain.GeneratedLead `json:"leads"`
	Counts  domain.StatusCount     `json:"counts"`
	ByBrand []domain.BrandLeadStat `json:"by_brand"`
}

type LeadFinderView struct {
	Leads         []domain.Lead      `json:"leads"`
	Counts        domain.StatusCount `json:"counts"`
	SelectedCount int                `json:"selected_count"`
}

type CampaignsView struct {
	Campaigns []domain.Campaign  `json:"campaigns"`
	Brands    []string           `json:"brands"`
	Workflow  []domain.EmailStep `json:"workflow"`
}

func (OverviewView) Tab() domain.Tab       { return domain.TabOverview }
func (BrandsView) Tab() domain.Tab         { return domain.TabBrandManagement }
func (BrandSetupView) Tab() domain.Tab     { return domain.TabBrandSetup }
func (DomainsView) Tab() domain.Tab        { return domain.TabDomainPurchase }
func (InboxesView) Tab() domain.Tab        { return domain.TabInboxOverview }
func (InboxHealthView) Tab() domain.Tab    { return domain.TabInboxHealth }
func (LeadGenerationView) Tab() domain.Tab { return domain.TabLeadGeneration }
func (LeadFinderView) Tab() domain.Tab     { return domain.TabLeadFinder }
func (CampaignsView) Tab() domain.Tab      { return domain.TabCampaigns }

func (OverviewView) isPanel()       {}
func (BrandsView) isPanel()         {}
func (BrandSetupView) isPanel()     {}
func (DomainsView) isPanel()        {}
func (InboxesView) isPanel()        {}
func (InboxHealthView) isPanel()    {}
func (LeadGenerationView) isPanel() {}
func (LeadFinderView) isPanel()     {}
func (CampaignsView) isPanel()      {}
