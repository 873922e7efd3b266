package domain

type PerformancePoint struct {
	Day    string `json:"day"`
	Emails int    `json:"emails"`
	Leads  int    `json:"leads"`
}

type InboxAlert struct {
	Inbox  string `json:"inbox"`
	Domain string `json:"domain"`
	Issue  string `json:"issue"`
}

type OverviewTotals struct {
	EmailsSent    int `json:"emails_sent"`
	LeadsCaptured int `json:"leads_captured"`
	ActiveInboxes int `json:"active_inboxes"`
	Alerts        int `json:"alerts"`
}
