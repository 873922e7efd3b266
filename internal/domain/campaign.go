package domain

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Brand       string         `json:"brand"`
	Target      string         `json:"target,omitempty"`
	Goal        string         `json:"goal,omitempty"`
	Status      CampaignStatus `json:"status"`
	SentEmails  int            `json:"sent_emails"`
	OpenRate    float64        `json:"open_rate"`
	ClickRate   float64        `json:"click_rate"`
	ReplyRate   float64        `json:"reply_rate"`
	LastUpdated string         `json:"last_updated"`
}

type CreateCampaignRequest struct {
	Name   string `json:"name"`
	Brand  string `json:"brand"`
	Target string `json:"target"`
	Goal   string `json:"goal"`
}

type StepKind string

const (
	StepKindEmail     StepKind = "email"
	StepKindDelay     StepKind = "delay"
	StepKindCondition StepKind = "condition"
)

func (k StepKind) IsValid() bool {
	return k == StepKindEmail || k == StepKindDelay || k == StepKindCondition
}

// EmailStep é um passo da sequência. Expanded é estado de exibição apenas.
type EmailStep struct {
	ID        string   `json:"id"`
	Kind      StepKind `json:"kind"`
	Subject   string   `json:"subject,omitempty"`
	Body      string   `json:"body,omitempty"`
	DelayDays int      `json:"delay_days,omitempty"`
	Condition string   `json:"condition,omitempty"`
	Expanded  bool     `json:"expanded"`
}

type EmailTone string

const (
	EmailToneFriendly     EmailTone = "friendly"
	EmailToneProfessional EmailTone = "professional"
	EmailToneDirect       EmailTone = "direct"
	EmailTonePersuasive   EmailTone = "persuasive"
	EmailToneFounder      EmailTone = "founder"
)

func (t EmailTone) IsValid() bool {
	switch t {
	case EmailToneFriendly, EmailToneProfessional, EmailToneDirect, EmailTonePersuasive, EmailToneFounder:
		return true
	}
	return false
}

type GenerateEmailRequest struct {
	Prompt string    `json:"prompt"`
	Tone   EmailTone `json:"tone"`
}
