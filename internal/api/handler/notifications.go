package handler

import (
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/notifying"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coldinfra-dashboard/pkg/log"
	"github.com/vfg2006/coldinfra-dashboard/pkg/middleware"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = (streamPongWait * 9) / 10
)

type NotificationCenter interface {
	List(sessionID string) []domain.Notification
	Dismiss(sessionID, id string) error
	Subscribe(sessionID string) ([]domain.Notification, <-chan domain.Notification, func())
}

type NotificationMessage struct {
	Type         string              `json:"type"`
	Notification domain.Notification `json:"notification"`
}

func ListNotifications(center NotificationCenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, center.List(ws.ID))
	}
}

func DismissNotification(center NotificationCenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := center.Dismiss(ws.ID, id); err != nil {
			if errors.Is(err, notifying.ErrNotificationNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Notificação não encontrada", id)
				return
			}
			writeServiceError(w, r, err, "Erro ao remover notificação")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// StreamNotifications envia por websocket os toasts visíveis e os novos da sessão
func StreamNotifications(center NotificationCenter, allowedOrigins []string) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(allowedOrigins, origin)
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		logger := log.ForContext(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.WithError(err).Warn("Não foi possível fazer upgrade para websocket")
			return
		}
		defer conn.Close()

		middleware.StreamOpened()
		defer middleware.StreamClosed()

		backlog, updates, cancel := center.Subscribe(ws.ID)
		defer cancel()

		for _, n := range backlog {
			if err := writeStreamMessage(conn, n); err != nil {
				return
			}
		}

		// O cliente não envia nada; a leitura só detecta o fechamento
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			conn.SetReadLimit(512)
			_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
			conn.SetPongHandler(func(string) error {
				return conn.SetReadDeadline(time.Now().Add(streamPongWait))
			})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(streamPingPeriod)
		defer ticker.Stop()

		for {
			select {
			case n, ok := <-updates:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session expired"),
						time.Now().Add(streamWriteWait))
					return
				}
				if err := writeStreamMessage(conn, n); err != nil {
					logger.WithError(err).Debug("Stream de notificações encerrado na escrita")
					return
				}
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
					return
				}
			case <-closed:
				return
			case <-r.Context().Done():
				return
			}
		}
	}
}

func writeStreamMessage(conn *websocket.Conn, n domain.Notification) error {
	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	return conn.WriteJSON(NotificationMessage{Type: "notification", Notification: n})
}
