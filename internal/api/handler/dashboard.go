package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/dashboard"
)

type ActiveTabRequest struct {
	Tab string `json:"tab"`
}

type ActiveTabResponse struct {
	Tab   domain.Tab `json:"tab"`
	Label string     `json:"label"`
}

type PanelResponse struct {
	Tab  domain.Tab          `json:"tab"`
	View dashboard.PanelView `json:"view"`
}

func GetNavigation(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, service.Navigation(ws))
	}
}

func GetActiveTab(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		tab := service.ActiveTab(ws)
		writeJSON(w, r, http.StatusOK, ActiveTabResponse{Tab: tab, Label: tab.Label()})
	}
}

func SetActiveTab(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		var req ActiveTabRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		tab, err := service.SetActiveTab(ws, req.Tab)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao trocar de aba")
			return
		}

		writeJSON(w, r, http.StatusOK, ActiveTabResponse{Tab: tab, Label: tab.Label()})
	}
}

// RenderPanel devolve a view de uma aba; sem :tab usa a aba ativa da sessão
func RenderPanel(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		tab := httprouter.ParamsFromContext(r.Context()).ByName("tab")

		view, err := service.Render(ws, tab, listQuery(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao renderizar painel")
			return
		}

		writeJSON(w, r, http.StatusOK, PanelResponse{Tab: view.Tab(), View: view})
	}
}

func GetOverview(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, service.Overview(ws))
	}
}
