package handler

import (
	"net/http"

	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/dashboard"
)

func ListDomains(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, service.ListDomains(ws, r.URL.Query().Get("search")))
	}
}

func ToggleDomain(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		var req IDRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		suggestion, err := service.ToggleDomain(ws, req.ID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao selecionar domínio")
			return
		}

		writeJSON(w, r, http.StatusOK, suggestion)
	}
}

func SelectAllDomains(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, service.SelectAllDomains(ws))
	}
}

func SetupDomains(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		selection, err := service.SetupDomains(r.Context(), ws)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao configurar domínios")
			return
		}

		writeJSON(w, r, http.StatusAccepted, selection)
	}
}
