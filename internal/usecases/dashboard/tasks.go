package dashboard

import "time"

//go:generate mockgen -source=tasks.go -destination=mocks/mock_tasks.go -package=mocks

// TaskScheduler executa uma tarefa uma única vez depois do atraso
type TaskScheduler interface {
	After(delay time.Duration, task func()) error
}
