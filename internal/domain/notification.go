package domain

import "time"

type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationSuccess     NotificationVariant = "success"
	NotificationWarning     NotificationVariant = "warning"
	NotificationDestructive NotificationVariant = "destructive"
)

type Notification struct {
	ID          string              `json:"id"`
	Variant     NotificationVariant `json:"variant"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Duration    time.Duration       `json:"-"`
	CreatedAt   time.Time           `json:"created_at"`
	ExpiresAt   time.Time           `json:"expires_at"`
}

func (n Notification) Expired(now time.Time) bool {
	return !n.ExpiresAt.IsZero() && !now.Before(n.ExpiresAt)
}
