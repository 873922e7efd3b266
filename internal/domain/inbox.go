package domain

type InboxStatus string

const (
	InboxStatusWarming InboxStatus = "warming"
	InboxStatusActive  InboxStatus = "active"
	InboxStatusPaused  InboxStatus = "paused"
)

type InboxHealthLevel string

const (
	InboxHealthGood     InboxHealthLevel = "good"
	InboxHealthWarning  InboxHealthLevel = "warning"
	InboxHealthCritical InboxHealthLevel = "critical"
)

type Inbox struct {
	ID                string           `json:"id"`
	Email             string           `json:"email"`
	Domain            string           `json:"domain"`
	Status            InboxStatus      `json:"status"`
	NextAvailableDate string           `json:"next_available_date,omitempty"`
	Health            InboxHealthLevel `json:"health"`
}

type BlacklistStatus string

const (
	BlacklistClear   BlacklistStatus = "clear"
	BlacklistWarning BlacklistStatus = "warning"
	BlacklistListed  BlacklistStatus = "listed"
)

type InboxDetail struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	Domain          string          `json:"domain"`
	DeliveryRate    float64         `json:"delivery_rate"`
	SpamRate        float64         `json:"spam_rate"`
	BlacklistStatus BlacklistStatus `json:"blacklist_status"`
	OpenRate        float64         `json:"open_rate"`
	ClickRate       float64         `json:"click_rate"`
	ReplyRate       float64         `json:"reply_rate"`
}

type DeliveryPoint struct {
	Date    string `json:"date"`
	Inbox   int    `json:"inbox"`
	Spam    int    `json:"spam"`
	Bounced int    `json:"bounced"`
}

type EngagementPoint struct {
	Date  string `json:"date"`
	Open  int    `json:"open"`
	Click int    `json:"click"`
	Reply int    `json:"reply"`
}

// StatusCount conta itens por status, com a chave "all" para o total
type StatusCount map[string]int
