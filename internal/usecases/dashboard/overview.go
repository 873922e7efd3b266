package dashboard

import (
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/seed"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
)

// Overview soma a série semanal e conta as caixas ativas da sessão
func (s *Service) Overview(w *session.Workspace) OverviewView {
	performance := seed.PerformanceSeries()
	alerts := seed.InboxAlerts()

	totals := domain.OverviewTotals{Alerts: len(alerts)}
	for _, p := range performance {
		totals.EmailsSent += p.Emails
		totals.LeadsCaptured += p.Leads
	}

	w.Lock()
	for _, inbox := range w.Inboxes {
		if inbox.Status == domain.InboxStatusActive {
			totals.ActiveInboxes++
		}
	}
	w.Unlock()

	return OverviewView{
		Totals:      totals,
		Performance: performance,
		Alerts:      alerts,
	}
}
