package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/pkg/log"
)

type SessionResponse struct {
	Token     string     `json:"token"`
	SessionID string     `json:"session_id"`
	ExpiresIn int64      `json:"expires_in"`
	ActiveTab domain.Tab `json:"active_tab"`
}

// CreateSession abre uma sessão anônima com o workspace semeado
func CreateSession(manager session.Manager, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, token, err := manager.Create()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar sessão")
			return
		}

		log.ForContext(log.WithSessionID(r.Context(), ws.ID)).Info("Sessão anônima criada")

		writeJSON(w, r, http.StatusCreated, SessionResponse{
			Token:     token,
			SessionID: ws.ID,
			ExpiresIn: int64(ttl.Seconds()),
			ActiveTab: ws.ActiveTab,
		})
	}
}
