package domain

import "fmt"

// Tab identifica um painel do dashboard. O conjunto é fechado: use ParseTab.
type Tab string

const (
	TabOverview        Tab = "overview"
	TabBrandManagement Tab = "brand-management"
	TabBrandSetup      Tab = "brand-setup"
	TabDomainPurchase  Tab = "domain-purchase"
	TabInboxOverview   Tab = "inbox-overview"
	TabInboxHealth     Tab = "inbox-health"
	TabLeadGeneration  Tab = "lead-generation"
	TabLeadFinder      Tab = "lead-finder"
	TabCampaigns       Tab = "campaigns"
)

// Tabs na ordem do menu lateral
var Tabs = []Tab{
	TabOverview,
	TabBrandManagement,
	TabBrandSetup,
	TabDomainPurchase,
	TabInboxOverview,
	TabInboxHealth,
	TabLeadGeneration,
	TabLeadFinder,
	TabCampaigns,
}

var tabLabels = map[Tab]string{
	TabOverview:        "Dashboard",
	TabBrandManagement: "Brand Management",
	TabBrandSetup:      "Brand Setup",
	TabDomainPurchase:  "Domain Purchase",
	TabInboxOverview:   "Inbox Overview",
	TabInboxHealth:     "Inbox Health",
	TabLeadGeneration:  "Lead Generation",
	TabLeadFinder:      "Lead Finder",
	TabCampaigns:       "Campaigns",
}

func (t Tab) Label() string {
	return tabLabels[t]
}

func ParseTab(value string) (Tab, error) {
	tab := Tab(value)
	if _, ok := tabLabels[tab]; !ok {
		return "", fmt.Errorf("aba desconhecida: %q", value)
	}
	return tab, nil
}

type NavItem struct {
	ID     Tab    `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}
