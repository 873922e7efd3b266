package domain

type BrandStatus string

const (
	BrandStatusActive    BrandStatus = "active"
	BrandStatusPaused    BrandStatus = "paused"
	BrandStatusCompleted BrandStatus = "completed"
)

func (s BrandStatus) IsValid() bool {
	switch s {
	case BrandStatusActive, BrandStatusPaused, BrandStatusCompleted:
		return true
	}
	return false
}

type Brand struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	EmailsSent     int         `json:"emails_sent"`
	LeadsGenerated int         `json:"leads_generated"`
	CallsBooked    int         `json:"calls_booked"`
	SalesClosed    int         `json:"sales_closed"`
	DomainsUsed    int         `json:"domains_used"`
	DomainCosts    float64     `json:"domain_costs"`
	CostPerLead    float64     `json:"cost_per_lead"`
	RevenuePerLead float64     `json:"revenue_per_lead"`
	Status         BrandStatus `json:"status"`
}

type BrandSummary struct {
	TotalBrands    int     `json:"total_brands"`
	TotalEmails    int     `json:"total_emails"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgCostPerLead float64 `json:"avg_cost_per_lead"`
}

// DateRange é apenas o seletor exibido no painel de marcas
type DateRange string

const (
	DateRange7Days  DateRange = "7days"
	DateRange30Days DateRange = "30days"
	DateRange90Days DateRange = "90days"
)

func (d DateRange) IsValid() bool {
	return d == DateRange7Days || d == DateRange30Days || d == DateRange90Days
}

type UpdateBrandStatusRequest struct {
	ID     string      `json:"id"`
	Status BrandStatus `json:"status"`
}

type BrandSetupRequest struct {
	Name           string `json:"name"`
	DailyEmailGoal int    `json:"daily_email_goal"`
}

type BrandRecommendation struct {
	Name           string `json:"name"`
	DailyEmailGoal int    `json:"daily_email_goal"`
	Inboxes        int    `json:"inboxes"`
	Domains        int    `json:"domains"`
}
