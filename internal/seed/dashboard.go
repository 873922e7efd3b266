// Package seed contém os dados fictícios que alimentam cada painel.
// Todas as funções devolvem cópias novas: cada sessão altera apenas as suas.
package seed

import "github.com/vfg2006/coldinfra-dashboard/internal/domain"

// DomainBrandName é a marca usada nas sugestões de domínio
const DomainBrandName = "Acme Inc."

func Brands() []domain.Brand {
	return []domain.Brand{
		{ID: "1", Name: "TechCorp Solutions", EmailsSent: 15280, LeadsGenerated: 427, CallsBooked: 183, SalesClosed: 52, DomainsUsed: 12, DomainCosts: 28800, CostPerLead: 67.45, RevenuePerLead: 357.28, Status: domain.BrandStatusActive},
		{ID: "2", Name: "PropTech Innovations", EmailsSent: 7320, LeadsGenerated: 196, CallsBooked: 78, SalesClosed: 23, DomainsUsed: 8, DomainCosts: 16200, CostPerLead: 82.65, RevenuePerLead: 298.45, Status: domain.BrandStatusActive},
		{ID: "3", Name: "MedTech Solutions", EmailsSent: 3620, LeadsGenerated: 108, CallsBooked: 42, SalesClosed: 12, DomainsUsed: 5, DomainCosts: 9000, CostPerLead: 83.33, RevenuePerLead: 412.50, Status: domain.BrandStatusPaused},
		{ID: "4", Name: "E-commerce Accelerator", EmailsSent: 22450, LeadsGenerated: 635, CallsBooked: 278, SalesClosed: 86, DomainsUsed: 15, DomainCosts: 36000, CostPerLead: 56.69, RevenuePerLead: 285.33, Status: domain.BrandStatusActive},
		{ID: "5", Name: "FinTech Ventures", EmailsSent: 5780, LeadsGenerated: 148, CallsBooked: 56, SalesClosed: 18, DomainsUsed: 6, DomainCosts: 12600, CostPerLead: 85.14, RevenuePerLead: 325.78, Status: domain.BrandStatusCompleted},
	}
}

func Campaigns() []domain.Campaign {
	return []domain.Campaign{
		{ID: "1", Name: "SaaS Founders Outreach", Brand: "TechCorp", Status: domain.CampaignStatusActive, SentEmails: 1250, OpenRate: 42.5, ClickRate: 12.8, ReplyRate: 8.3, LastUpdated: "2023-04-15"},
		{ID: "2", Name: "Real Estate Agents Q2", Brand: "PropTech Solutions", Status: domain.CampaignStatusPaused, SentEmails: 720, OpenRate: 31.2, ClickRate: 9.5, ReplyRate: 5.2, LastUpdated: "2023-04-12"},
		{ID: "3", Name: "Healthcare Decision Makers", Brand: "MedTech Innovations", Status: domain.CampaignStatusDraft, LastUpdated: "2023-04-17"},
		{ID: "4", Name: "E-commerce Store Owners", Brand: "ShopBoost", Status: domain.CampaignStatusCompleted, SentEmails: 3480, OpenRate: 38.9, ClickRate: 15.2, ReplyRate: 7.6, LastUpdated: "2023-04-05"},
	}
}

func EmailSteps() []domain.EmailStep {
	return []domain.EmailStep{
		{
			ID:      "step1",
			Kind:    domain.StepKindEmail,
			Subject: "Would love to connect about {company}'s growth strategy",
			Body:    "Hi {first_name},\n\nI noticed that {company} has been making waves in the {industry} space. I wanted to reach out because we've helped similar companies increase their lead generation by 35% within 60 days.\n\nWould you be open to a 15-minute call to discuss how we might be able to help?\n\nBest regards,\nYour Name",
		},
		{ID: "step2", Kind: domain.StepKindDelay, DelayDays: 3},
		{
			ID:      "step3",
			Kind:    domain.StepKindEmail,
			Subject: "Following up: {company}'s growth strategy",
			Body:    "Hi {first_name},\n\nI wanted to follow up on my previous email. I understand you're probably busy, so I'll keep this brief.\n\nWe've recently helped a company in the {industry} industry achieve a 42% increase in qualified meetings by implementing our solution. I'd love to share some insights that might be valuable for {company}.\n\nHow does your calendar look next Tuesday or Wednesday for a quick call?\n\nBest regards,\nYour Name",
		},
		{ID: "step4", Kind: domain.StepKindCondition, Condition: "if_replied"},
		{
			ID:      "step5",
			Kind:    domain.StepKindEmail,
			Subject: "One last thought for {company}",
			Body:    "Hi {first_name},\n\nThis will be my last email for now. I wanted to share a quick case study that might be relevant to {company}.\n\n[Case Study Link]\n\nIf you ever want to discuss strategies to improve your outbound results, my inbox is always open.\n\nAll the best,\nYour Name",
		},
	}
}

func DomainSuggestions() []domain.DomainSuggestion {
	return []domain.DomainSuggestion{
		{ID: "1", Name: "getacme.co", Price: 12.99, Availability: domain.AvailabilityAvailable},
		{ID: "2", Name: "acmehq.com", Price: 14.99, Availability: domain.AvailabilityAvailable},
		{ID: "3", Name: "tryacme.io", Price: 24.99, Availability: domain.AvailabilityAvailable},
		{ID: "4", Name: "joinacme.com", Price: 12.99, Availability: domain.AvailabilityAvailable},
		{ID: "5", Name: "acmemail.com", Price: 29.99, Availability: domain.AvailabilityPremium},
		{ID: "6", Name: "acmesend.io", Price: 19.99, Availability: domain.AvailabilityAvailable},
		{ID: "7", Name: "acmeteam.co", Price: 11.99, Availability: domain.AvailabilityAvailable},
		{ID: "8", Name: "withacme.com", Price: 14.99, Availability: domain.AvailabilityAvailable},
		{ID: "9", Name: "useacme.co", Price: 12.99, Availability: domain.AvailabilityAvailable},
		{ID: "10", Name: "acmesales.com", Price: 14.99, Availability: domain.AvailabilityUnavailable},
	}
}

func Inboxes() []domain.Inbox {
	return []domain.Inbox{
		{ID: "1", Email: "hello@getacme.co", Domain: "getacme.co", Status: domain.InboxStatusWarming, NextAvailableDate: "2023-05-15", Health: domain.InboxHealthGood},
		{ID: "2", Email: "support@getacme.co", Domain: "getacme.co", Status: domain.InboxStatusWarming, NextAvailableDate: "2023-05-18", Health: domain.InboxHealthGood},
		{ID: "3", Email: "sales@acmehq.com", Domain: "acmehq.com", Status: domain.InboxStatusActive, Health: domain.InboxHealthGood},
		{ID: "4", Email: "hello@acmehq.com", Domain: "acmehq.com", Status: domain.InboxStatusActive, Health: domain.InboxHealthWarning},
		{ID: "5", Email: "contact@tryacme.io", Domain: "tryacme.io", Status: domain.InboxStatusActive, Health: domain.InboxHealthGood},
		{ID: "6", Email: "hello@tryacme.io", Domain: "tryacme.io", Status: domain.InboxStatusPaused, Health: domain.InboxHealthCritical},
		{ID: "7", Email: "info@joinacme.com", Domain: "joinacme.com", Status: domain.InboxStatusActive, Health: domain.InboxHealthGood},
		{ID: "8", Email: "sales@joinacme.com", Domain: "joinacme.com", Status: domain.InboxStatusActive, Health: domain.InboxHealthGood},
	}
}

func InboxDetails() []domain.InboxDetail {
	return []domain.InboxDetail{
		{ID: "1", Email: "hello@getacme.co", Domain: "getacme.co", DeliveryRate: 92, SpamRate: 5, BlacklistStatus: domain.BlacklistClear, OpenRate: 42, ClickRate: 12, ReplyRate: 5},
		{ID: "2", Email: "sales@acmehq.com", Domain: "acmehq.com", DeliveryRate: 95, SpamRate: 3, BlacklistStatus: domain.BlacklistClear, OpenRate: 38, ClickRate: 10, ReplyRate: 4},
		{ID: "3", Email: "hello@acmehq.com", Domain: "acmehq.com", DeliveryRate: 88, SpamRate: 9, BlacklistStatus: domain.BlacklistWarning, OpenRate: 35, ClickRate: 8, ReplyRate: 3},
		{ID: "4", Email: "contact@tryacme.io", Domain: "tryacme.io", DeliveryRate: 90, SpamRate: 6, BlacklistStatus: domain.BlacklistClear, OpenRate: 40, ClickRate: 11, ReplyRate: 4},
		{ID: "5", Email: "hello@tryacme.io", Domain: "tryacme.io", DeliveryRate: 75, SpamRate: 15, BlacklistStatus: domain.BlacklistListed, OpenRate: 30, ClickRate: 7, ReplyRate: 2},
	}
}

func DeliverySeries() []domain.DeliveryPoint {
	return []domain.DeliveryPoint{
		{Date: "April 24", Inbox: 95, Spam: 4, Bounced: 1},
		{Date: "April 25", Inbox: 93, Spam: 5, Bounced: 2},
		{Date: "April 26", Inbox: 91, Spam: 6, Bounced: 3},
		{Date: "April 27", Inbox: 94, Spam: 4, Bounced: 2},
		{Date: "April 28", Inbox: 96, Spam: 3, Bounced: 1},
		{Date: "April 29", Inbox: 92, Spam: 6, Bounced: 2},
		{Date: "April 30", Inbox: 90, Spam: 8, Bounced: 2},
	}
}

func EngagementSeries() []domain.EngagementPoint {
	return []domain.EngagementPoint{
		{Date: "April 24", Open: 42, Click: 12, Reply: 5},
		{Date: "April 25", Open: 38, Click: 10, Reply: 4},
		{Date: "April 26", Open: 45, Click: 15, Reply: 6},
		{Date: "April 27", Open: 40, Click: 13, Reply: 4},
		{Date: "April 28", Open: 43, Click: 14, Reply: 7},
		{Date: "April 29", Open: 41, Click: 11, Reply: 5},
		{Date: "April 30", Open: 39, Click: 10, Reply: 4},
	}
}

func FinderLeads() []domain.Lead {
	return []domain.Lead{
		{ID: "1", Name: "John Smith", Email: "john.smith@company.com", Title: "Marketing Director", Company: "Global Solutions Inc.", Source: "CSV Import", Status: domain.LeadStatusNotSent},
		{ID: "2", Name: "Sarah Johnson", Email: "sarah.j@techinnovate.co", Title: "CTO", Company: "TechInnovate", Source: "API", Status: domain.LeadStatusSent},
		{ID: "3", Name: "Michael Chen", Email: "m.chen@cloudserve.net", Title: "IT Director", Company: "CloudServe", Source: "API", Status: domain.LeadStatusReplied},
		{ID: "4", Name: "Jennifer Wu", Email: "jen.wu@digitalflow.io", Title: "CEO", Company: "Digital Flow", Source: "CSV Import", Status: domain.LeadStatusNotSent},
		{ID: "5", Name: "Robert Garcia", Email: "r.garcia@nexustech.com", Title: "Sales Manager", Company: "Nexus Technologies", Source: "API", Status: domain.LeadStatusSent},
	}
}

func GeneratedLeads() []domain.GeneratedLead {
	return []domain.GeneratedLead{
		{ID: "1", Name: "John Smith", Email: "john@company.com", Company: "Company Inc.", Source: "hello@getacme.co", Status: domain.GeneratedLeadReplied, Date: "2023-04-30"},
		{ID: "2", Name: "Sarah Johnson", Email: "sarah@techcorp.com", Company: "TechCorp", Source: "sales@acmehq.com", Status: domain.GeneratedLeadBooked, Date: "2023-04-29"},
		{ID: "3", Name: "Michael Williams", Email: "michael@startupxyz.com", Company: "StartupXYZ", Source: "hello@tryacme.io", Status: domain.GeneratedLeadNoResponse, Date: "2023-04-28"},
		{ID: "4", Name: "Emily Davis", Email: "emily@enterpriseco.com", Company: "Enterprise Co", Source: "info@joinacme.com", Status: domain.GeneratedLeadReplied, Date: "2023-04-27"},
		{ID: "5", Name: "David Brown", Email: "david@consulting.com", Company: "Consulting Ltd", Source: "sales@joinacme.com", Status: domain.GeneratedLeadBooked, Date: "2023-04-26"},
		{ID: "6", Name: "Jessica Wilson", Email: "jessica@innovate.io", Company: "Innovate.io", Source: "hello@getacme.co", Status: domain.GeneratedLeadNoResponse, Date: "2023-04-25"},
		{ID: "7", Name: "Andrew Thompson", Email: "andrew@globalfirm.com", Company: "Global Firm", Source: "contact@tryacme.io", Status: domain.GeneratedLeadReplied, Date: "2023-04-24"},
		{ID: "8", Name: "Laura Miller", Email: "laura@nextstep.co", Company: "NextStep Co", Source: "sales@acmehq.com", Status: domain.GeneratedLeadNoResponse, Date: "2023-04-23"},
	}
}

func BrandLeadStats() []domain.BrandLeadStat {
	return []domain.BrandLeadStat{
		{Brand: "Acme Inc", Replied: 42, Booked: 18, Pending: 125},
		{Brand: "Widget Co", Replied: 28, Booked: 12, Pending: 98},
		{Brand: "TechStart", Replied: 35, Booked: 15, Pending: 110},
		{Brand: "DataFlow", Replied: 22, Booked: 8, Pending: 75},
		{Brand: "SaaSly", Replied: 18, Booked: 5, Pending: 60},
	}
}

func PerformanceSeries() []domain.PerformancePoint {
	return []domain.PerformancePoint{
		{Day: "Mon", Emails: 4500, Leads: 24},
		{Day: "Tue", Emails: 5200, Leads: 28},
		{Day: "Wed", Emails: 4800, Leads: 26},
		{Day: "Thu", Emails: 6100, Leads: 32},
		{Day: "Fri", Emails: 5800, Leads: 30},
		{Day: "Sat", Emails: 2300, Leads: 12},
		{Day: "Sun", Emails: 1900, Leads: 10},
	}
}

func InboxAlerts() []domain.InboxAlert {
	return []domain.InboxAlert{
		{Inbox: "sales@domain1.com", Domain: "domain1.com", Issue: "High spam placement (12%)"},
		{Inbox: "hello@domain7.co", Domain: "domain7.co", Issue: "Blacklist warning: Spamhaus"},
		{Inbox: "contact@domain12.io", Domain: "domain12.io", Issue: "Low delivery rate (78%)"},
	}
}
