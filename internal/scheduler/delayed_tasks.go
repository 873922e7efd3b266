package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// DelayedTaskService executa tarefas únicas depois de um atraso.
// É o que simula os timers do dashboard (upload de CSV, redator de IA).
type DelayedTaskService struct {
	scheduler *gocron.Scheduler
	mutex     sync.Mutex
	pending   int
	started   bool
}

func NewDelayedTaskService() *DelayedTaskService {
	return &DelayedTaskService{
		scheduler: gocron.NewScheduler(time.Local),
	}
}

func (s *DelayedTaskService) Start(ctx context.Context) error {
	s.mutex.Lock()
	if s.started {
		s.mutex.Unlock()
		return nil
	}
	s.started = true
	s.mutex.Unlock()

	logrus.Info("Iniciando agendador de tarefas simuladas")
	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de tarefas simuladas")
		s.scheduler.Stop()
	}()

	return nil
}

// After agenda a tarefa para rodar uma vez depois do atraso; o job é removido ao terminar
func (s *DelayedTaskService) After(delay time.Duration, task func()) error {
	if delay <= 0 {
		delay = time.Millisecond
	}

	var (
		jobMutex sync.Mutex
		job      *gocron.Job
		err      error
	)

	s.mutex.Lock()
	s.pending++
	s.mutex.Unlock()

	jobMutex.Lock()
	job, err = s.scheduler.
		Every(delay).
		WaitForSchedule().
		LimitRunsTo(1).
		Do(func() {
			defer s.done()

			defer func() {
				if r := recover(); r != nil {
					logrus.WithField("panic", r).Error("Tarefa simulada falhou")
				}
			}()

			task()

			jobMutex.Lock()
			defer jobMutex.Unlock()
			if job != nil {
				s.scheduler.RemoveByReference(job)
			}
		})
	jobMutex.Unlock()

	if err != nil {
		s.done()
		return fmt.Errorf("erro ao agendar tarefa simulada: %w", err)
	}

	return nil
}

func (s *DelayedTaskService) done() {
	s.mutex.Lock()
	s.pending--
	s.mutex.Unlock()
}

// Pending informa quantas tarefas ainda não rodaram
func (s *DelayedTaskService) Pending() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.pending
}
