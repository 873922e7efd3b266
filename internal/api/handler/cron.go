package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeNotifications = "notifications"
	CronJobTypeSessions      = "sessions"
	CronJobTypeAll           = "all"
)

type CronJob interface {
	TriggerManualSweep()
	Status() (time.Time, int)
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	NotificationSweep CronJob
	SessionSweep      CronJob
}

type CronJobStatus struct {
	LastRunAt   *time.Time `json:"last_run_at"`
	LastRemoved int        `json:"last_removed"`
	Available   bool       `json:"available"`
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeNotifications:
			if services.NotificationSweep == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de notificações não disponível", nil)
				return
			}
			services.NotificationSweep.TriggerManualSweep()

		case CronJobTypeSessions:
			if services.SessionSweep == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de sessões não disponível", nil)
				return
			}
			services.SessionSweep.TriggerManualSweep()

		case CronJobTypeAll:
			if services.NotificationSweep != nil {
				services.NotificationSweep.TriggerManualSweep()
			}
			if services.SessionSweep != nil {
				services.SessionSweep.TriggerManualSweep()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: notifications, sessions, all", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o resultado da última execução de cada cron job
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]CronJobStatus{
			CronJobTypeNotifications: cronStatus(services.NotificationSweep),
			CronJobTypeSessions:      cronStatus(services.SessionSweep),
		})
	}
}

func cronStatus(job CronJob) CronJobStatus {
	if job == nil {
		return CronJobStatus{}
	}

	status := CronJobStatus{Available: true}
	at, removed := job.Status()
	if !at.IsZero() {
		status.LastRunAt = &at
		status.LastRemoved = removed
	}

	return status
}
