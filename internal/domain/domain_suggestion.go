package domain

type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityPremium     Availability = "premium"
	AvailabilityUnavailable Availability = "unavailable"
)

type DomainSuggestion struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Price        float64      `json:"price"`
	Availability Availability `json:"availability"`
	Selected     bool         `json:"selected"`
}

type DomainSelection struct {
	BrandName     string             `json:"brand_name"`
	Domains       []DomainSuggestion `json:"domains"`
	SelectedCount int                `json:"selected_count"`
	TotalPrice    float64            `json:"total_price"`
}
