package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/coldinfra-dashboard/internal/config"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/sequence"
	"github.com/vfg2006/coldinfra-dashboard/pkg/log"
	"github.com/vfg2006/coldinfra-dashboard/pkg/utils"
)

type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager cria e resolve sessões anônimas do dashboard
type Manager interface {
	Create() (*Workspace, string, error)
	Resolve(token string) (*Workspace, error)
	Sweep(now time.Time) []string
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID sequence.IDGenerator) Option {
	return func(s *Store) { s.newID = newID }
}

// OnCreate registra um callback chamado para cada sessão nova, fora do lock
func OnCreate(fn func(w *Workspace)) Option {
	return func(s *Store) { s.onCreate = append(s.onCreate, fn) }
}

// OnExpire registra um callback chamado com o ID de cada sessão removida pelo Sweep
func OnExpire(fn func(sessionID string)) Option {
	return func(s *Store) { s.onExpire = append(s.onExpire, fn) }
}

type Store struct {
	mu         sync.RWMutex
	workspaces map[string]*Workspace

	secret []byte
	ttl    time.Duration
	now    func() time.Time
	newID  sequence.IDGenerator

	onCreate []func(w *Workspace)
	onExpire []func(sessionID string)
}

func NewStore(cfg config.Session, opts ...Option) *Store {
	s := &Store{
		workspaces: make(map[string]*Workspace),
		secret:     []byte(cfg.Secret),
		ttl:        cfg.TTL,
		now:        time.Now,
		newID:      utils.GenerateID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) Create() (*Workspace, string, error) {
	id, err := s.newSessionID()
	if err != nil {
		return nil, "", err
	}

	now := s.now()
	w := newWorkspace(id, now, s.newID)

	token, err := s.sign(id, now)
	if err != nil {
		return nil, "", err
	}

	s.mu.Lock()
	s.workspaces[id] = w
	s.mu.Unlock()

	for _, fn := range s.onCreate {
		fn(w)
	}

	log.L.WithField("session_id", id).Debug("Sessão criada")

	return w, token, nil
}

// newSessionID junta dois IDs curtos para reduzir colisões entre sessões
func (s *Store) newSessionID() (string, error) {
	for {
		first, err := s.newID()
		if err != nil {
			return "", err
		}
		second, err := s.newID()
		if err != nil {
			return "", err
		}

		id := first + second

		s.mu.RLock()
		_, exists := s.workspaces[id]
		s.mu.RUnlock()

		if !exists {
			return id, nil
		}
	}
}

// sign emite o token sem exp: a validade da sessão é só a inatividade, controlada pelo Sweep
func (s *Store) sign(id string, now time.Time) (string, error) {
	claims := Claims{
		SessionID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Store) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Resolve valida o token e devolve o workspace, renovando o último acesso
func (s *Store) Resolve(tokenString string) (*Workspace, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	w, ok := s.workspaces[claims.SessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	w.touch(s.now())

	return w, nil
}

// Sweep remove sessões sem acesso há mais que o TTL e devolve os IDs removidos
func (s *Store) Sweep(now time.Time) []string {
	s.mu.Lock()
	expired := make([]string, 0)
	for id, w := range s.workspaces {
		if w.idleSince(now) > s.ttl {
			expired = append(expired, id)
			delete(s.workspaces, id)
		}
	}
	s.mu.Unlock()

	for _, id := range expired {
		for _, fn := range s.onExpire {
			fn(id)
		}
	}

	return expired
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.workspaces)
}
