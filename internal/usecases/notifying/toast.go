package notifying

import (
	"time"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
)

func Info(title, description string) domain.Notification {
	return domain.Notification{Variant: domain.NotificationDefault, Title: title, Description: description}
}

func Success(title, description string) domain.Notification {
	return domain.Notification{Variant: domain.NotificationSuccess, Title: title, Description: description}
}

// Warning aceita uma duração própria; zero usa a padrão
func Warning(title, description string, duration time.Duration) domain.Notification {
	return domain.Notification{Variant: domain.NotificationWarning, Title: title, Description: description, Duration: duration}
}

func Destructive(title, description string) domain.Notification {
	return domain.Notification{Variant: domain.NotificationDestructive, Title: title, Description: description}
}
