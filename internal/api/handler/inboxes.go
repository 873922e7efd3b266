package handler

import (
	"net/http"

	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/dashboard"
)

func ListInboxes(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		view, err := service.ListInboxes(ws, listQuery(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar caixas de entrada")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

func GetInboxHealth(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, service.InboxHealth(ws))
	}
}

func SelectInbox(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		var req IDRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		view, err := service.SelectInbox(ws, req.ID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao selecionar caixa de entrada")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}
