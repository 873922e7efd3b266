package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/coldinfra-dashboard/internal/config"
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/notifying"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
)

type stubSessionSweeper struct {
	expired []string
	calls   int
	at      time.Time
}

func (s *stubSessionSweeper) Sweep(now time.Time) []string {
	s.calls++
	s.at = now
	return s.expired
}

func TestNotificationSweepService_sweep(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := base

	center := notifying.NewCenter(5*time.Second, notifying.WithClock(func() time.Time { return clock }))

	_, err := center.Push("sessao-a", domain.Notification{Title: "Expira"})
	require.NoError(t, err)
	_, err = center.Push("sessao-b", domain.Notification{Title: "Fica", Duration: time.Minute})
	require.NoError(t, err)

	service := NewNotificationSweepService(center, config.Notifications{SweepCron: "* * * * *"})
	service.now = func() time.Time { return base.Add(10 * time.Second) }

	removed := service.sweep()

	assert.Equal(t, 1, removed)
	assert.Empty(t, center.List("sessao-a"))
	assert.Len(t, center.List("sessao-b"), 1)

	at, last := service.Status()
	assert.Equal(t, base.Add(10*time.Second), at)
	assert.Equal(t, 1, last)
}

func TestSessionSweepService_sweep(t *testing.T) {
	tests := []struct {
		name    string
		expired []string
		want    int
	}{
		{name: "Sem sessões expiradas", expired: nil, want: 0},
		{name: "Duas sessões expiradas", expired: []string{"a", "b"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubSessionSweeper{expired: tt.expired}
			now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

			service := NewSessionSweepService(stub, config.Session{SweepCron: "*/10 * * * *"})
			service.now = func() time.Time { return now }

			assert.Equal(t, tt.want, service.sweep())
			assert.Equal(t, 1, stub.calls)
			assert.Equal(t, now, stub.at)
		})
	}
}

func TestSessionSweepService_WithStore(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := now

	var expired []string
	store := session.NewStore(
		config.Session{Secret: "segredo", TTL: time.Hour},
		session.WithClock(func() time.Time { return clock }),
		session.OnExpire(func(id string) { expired = append(expired, id) }),
	)

	ws, _, err := store.Create()
	require.NoError(t, err)

	service := NewSessionSweepService(store, config.Session{SweepCron: "*/10 * * * *"})
	service.now = func() time.Time { return now.Add(2 * time.Hour) }

	assert.Equal(t, 1, service.sweep())
	assert.Equal(t, []string{ws.ID}, expired)
	assert.Equal(t, 0, store.Len())
}

func TestSweepService_SkipsWhenRunning(t *testing.T) {
	var calls int32
	service := newSweepService("teste", "* * * * *", func(time.Time) int {
		atomic.AddInt32(&calls, 1)
		return 1
	})
	service.running = true

	assert.Equal(t, 0, service.sweep())
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestSweepService_StartInvalidCron(t *testing.T) {
	service := newSweepService("teste", "não é cron", func(time.Time) int { return 0 })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)
	assert.Error(t, err)
}
