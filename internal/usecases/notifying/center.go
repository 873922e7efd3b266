package notifying

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/pkg/log"
	"github.com/vfg2006/coldinfra-dashboard/pkg/utils"
)

var ErrNotificationNotFound = errors.New("notificação não encontrada")

// subscriberBuffer limita quantos toasts um cliente lento pode acumular
const subscriberBuffer = 16

// Notifier é o que os casos de uso precisam para exibir um toast
type Notifier interface {
	Push(sessionID string, n domain.Notification) (domain.Notification, error)
}

type Option func(*Center)

func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

func WithIDGenerator(newID func() (string, error)) Option {
	return func(c *Center) { c.newID = newID }
}

// Center guarda uma fila de toasts por sessão
type Center struct {
	mu          sync.Mutex
	queues      map[string][]domain.Notification
	subscribers map[string]map[chan domain.Notification]struct{}
	duration    time.Duration
	now         func() time.Time
	newID       func() (string, error)
}

func NewCenter(duration time.Duration, opts ...Option) *Center {
	c := &Center{
		queues:      make(map[string][]domain.Notification),
		subscribers: make(map[string]map[chan domain.Notification]struct{}),
		duration:    duration,
		now:         time.Now,
		newID:       utils.GenerateID,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Push enfileira o toast e o repassa aos clientes conectados da sessão.
// Sem Duration explícita usa a duração padrão do Center.
func (c *Center) Push(sessionID string, n domain.Notification) (domain.Notification, error) {
	id, err := c.newID()
	if err != nil {
		return domain.Notification{}, err
	}

	if n.Variant == "" {
		n.Variant = domain.NotificationDefault
	}
	if n.Duration <= 0 {
		n.Duration = c.duration
	}

	n.ID = id
	n.CreatedAt = c.now()
	n.ExpiresAt = n.CreatedAt.Add(n.Duration)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.queues[sessionID] = append(c.queues[sessionID], n)

	for ch := range c.subscribers[sessionID] {
		select {
		case ch <- n:
		default:
			log.L.WithField("session_id", sessionID).Warn("Cliente de notificações lento, toast descartado do stream")
		}
	}

	return n, nil
}

// List devolve os toasts ainda visíveis, do mais antigo para o mais novo
func (c *Center) List(sessionID string) []domain.Notification {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.visible(sessionID, now)
}

// visible exige c.mu
func (c *Center) visible(sessionID string, now time.Time) []domain.Notification {
	result := make([]domain.Notification, 0, len(c.queues[sessionID]))
	for _, n := range c.queues[sessionID] {
		if !n.Expired(now) {
			result = append(result, n)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result
}

func (c *Center) Dismiss(sessionID, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	queue := c.queues[sessionID]
	for i, n := range queue {
		if n.ID == id {
			c.queues[sessionID] = append(queue[:i:i], queue[i+1:]...)
			return nil
		}
	}

	return ErrNotificationNotFound
}

// Sweep remove os toasts expirados de todas as sessões e devolve quantos saíram
func (c *Center) Sweep(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for sessionID, queue := range c.queues {
		kept := queue[:0]
		for _, n := range queue {
			if n.Expired(now) {
				removed++
				continue
			}
			kept = append(kept, n)
		}

		if len(kept) == 0 {
			delete(c.queues, sessionID)
			continue
		}
		c.queues[sessionID] = kept
	}

	return removed
}

// Drop descarta a fila da sessão e encerra os streams abertos
func (c *Center) Drop(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.queues, sessionID)

	for ch := range c.subscribers[sessionID] {
		close(ch)
	}
	delete(c.subscribers, sessionID)
}

// Subscribe devolve os toasts visíveis e abre um stream dos novos da sessão.
// Fila e inscrição são lidas sob o mesmo lock: cada toast aparece em só um dos dois.
// O cancel deve ser chamado ao desconectar.
func (c *Center) Subscribe(sessionID string) ([]domain.Notification, <-chan domain.Notification, func()) {
	ch := make(chan domain.Notification, subscriberBuffer)
	now := c.now()

	c.mu.Lock()
	backlog := c.visible(sessionID, now)
	if c.subscribers[sessionID] == nil {
		c.subscribers[sessionID] = make(map[chan domain.Notification]struct{})
	}
	c.subscribers[sessionID][ch] = struct{}{}
	c.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()

			subs, ok := c.subscribers[sessionID]
			if !ok {
				return
			}
			if _, ok := subs[ch]; !ok {
				return
			}

			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(c.subscribers, sessionID)
			}
		})
	}

	return backlog, ch, cancel
}
