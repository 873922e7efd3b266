package domain

type LeadStatus string

const (
	LeadStatusNotSent LeadStatus = "not_sent"
	LeadStatusSent    LeadStatus = "sent"
	LeadStatusReplied LeadStatus = "replied"
)

// Lead é um contato do localizador de leads
type Lead struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Title    string     `json:"title"`
	Company  string     `json:"company"`
	Source   string     `json:"source"`
	Status   LeadStatus `json:"status"`
	Selected bool       `json:"selected"`
}

type GeneratedLeadStatus string

const (
	GeneratedLeadReplied    GeneratedLeadStatus = "replied"
	GeneratedLeadBooked     GeneratedLeadStatus = "booked"
	GeneratedLeadNoResponse GeneratedLeadStatus = "no_response"
)

// GeneratedLead é uma resposta obtida pelas caixas de envio
type GeneratedLead struct {
	ID      string              `json:"id"`
	Name    string              `json:"name"`
	Email   string              `json:"email"`
	Company string              `json:"company"`
	Source  string              `json:"source"`
	Status  GeneratedLeadStatus `json:"status"`
	Date    string              `json:"date"`
}

type BrandLeadStat struct {
	Brand   string `json:"brand"`
	Replied int    `json:"replied"`
	Booked  int    `json:"booked"`
	Pending int    `json:"pending"`
}

type LeadCart struct {
	SelectedCount int `json:"selected_count"`
}

type LeadUpload struct {
	FileName string `json:"file_name"`
	Rows     int    `json:"rows"`
}
