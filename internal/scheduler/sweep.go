package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coldinfra-dashboard/internal/config"
)

type NotificationSweeper interface {
	Sweep(now time.Time) int
}

type SessionSweeper interface {
	Sweep(now time.Time) []string
}

// SweepService roda uma limpeza periódica em cron, sem execuções sobrepostas
type SweepService struct {
	scheduler    *gocron.Scheduler
	name         string
	cronSchedule string
	sweepFn      func(now time.Time) int
	now          func() time.Time
	running      bool
	mutex        sync.Mutex
	lastSweepAt  time.Time
	lastRemoved  int
}

func newSweepService(name, cronSchedule string, sweepFn func(now time.Time) int) *SweepService {
	logrus.WithFields(logrus.Fields{
		"job":           name,
		"cron_schedule": cronSchedule,
	}).Info("Configuração do agendador de limpeza carregada")

	return &SweepService{
		scheduler:    gocron.NewScheduler(time.Local),
		name:         name,
		cronSchedule: cronSchedule,
		sweepFn:      sweepFn,
		now:          time.Now,
	}
}

// NewNotificationSweepService remove os toasts expirados de todas as sessões
func NewNotificationSweepService(center NotificationSweeper, cfg config.Notifications) *SweepService {
	return newSweepService("notification_sweep", cfg.SweepCron, center.Sweep)
}

// NewSessionSweepService remove as sessões ociosas além do TTL
func NewSessionSweepService(store SessionSweeper, cfg config.Session) *SweepService {
	return newSweepService("session_sweep", cfg.SweepCron, func(now time.Time) int {
		return len(store.Sweep(now))
	})
}

func (s *SweepService) Start(ctx context.Context) error {
	logrus.WithFields(logrus.Fields{
		"job":  s.name,
		"cron": s.cronSchedule,
	}).Info("Iniciando agendador de limpeza")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar %s: %w", s.name, err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", s.name).Info("Parando agendador de limpeza")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SweepService) sweep() int {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.WithField("job", s.name).Info("Limpeza já em andamento, ignorando")
		return 0
	}
	s.running = true
	s.mutex.Unlock()

	now := s.now()
	removed := s.sweepFn(now)

	s.mutex.Lock()
	s.running = false
	s.lastSweepAt = now
	s.lastRemoved = removed
	s.mutex.Unlock()

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"job":     s.name,
			"removed": removed,
		}).Debug("Limpeza concluída")
	}

	return removed
}

// TriggerManualSweep dispara uma limpeza fora do cron
func (s *SweepService) TriggerManualSweep() {
	go s.sweep()
}

func (s *SweepService) Name() string {
	return s.name
}

// Status devolve o momento e o resultado da última limpeza
func (s *SweepService) Status() (time.Time, int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.lastSweepAt, s.lastRemoved
}
