package session

import (
	"sync"
	"time"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/seed"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/sequence"
)

// Workspace é o estado de uma sessão: cópias próprias dos dados fictícios,
// o rascunho do formulário beta e a aba ativa.
// Quem altera campos precisa segurar o Lock.
type Workspace struct {
	mu sync.Mutex

	ID        string
	CreatedAt time.Time
	lastSeen  time.Time

	ActiveTab domain.Tab
	Form      domain.BetaForm

	Brands    []domain.Brand
	DateRange domain.DateRange

	Campaigns []domain.Campaign
	Workflow  *sequence.List

	Domains []domain.DomainSuggestion

	Inboxes       []domain.Inbox
	InboxDetails  []domain.InboxDetail
	SelectedInbox string

	GeneratedLeads []domain.GeneratedLead
	FinderLeads    []domain.Lead
}

func newWorkspace(id string, now time.Time, newID sequence.IDGenerator) *Workspace {
	details := seed.InboxDetails()

	w := &Workspace{
		ID:             id,
		CreatedAt:      now,
		lastSeen:       now,
		ActiveTab:      domain.TabOverview,
		Brands:         seed.Brands(),
		DateRange:      domain.DateRange30Days,
		Campaigns:      seed.Campaigns(),
		Workflow:       sequence.New(newID, seed.EmailSteps()),
		Domains:        seed.DomainSuggestions(),
		Inboxes:        seed.Inboxes(),
		InboxDetails:   details,
		GeneratedLeads: seed.GeneratedLeads(),
		FinderLeads:    seed.FinderLeads(),
	}

	if len(details) > 0 {
		w.SelectedInbox = details[0].ID
	}

	return w
}

func (w *Workspace) Lock() {
	w.mu.Lock()
}

func (w *Workspace) Unlock() {
	w.mu.Unlock()
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

func (w *Workspace) idleSince(now time.Time) time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return now.Sub(w.lastSeen)
}
