package handler

import (
	"net/http"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/dashboard"
)

type AddStepRequest struct {
	Kind domain.StepKind `json:"kind"`
}

func ListCampaigns(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		view, err := service.ListCampaigns(ws, listQuery(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

func CreateCampaign(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateCampaignRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), ws, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar campanha")
			return
		}

		writeJSON(w, r, http.StatusCreated, campaign)
	}
}

func GetWorkflow(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, service.Workflow(ws))
	}
}

func AddWorkflowStep(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		var req AddStepRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		step, err := service.AddWorkflowStep(ws, req.Kind)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao adicionar etapa")
			return
		}

		writeJSON(w, r, http.StatusCreated, step)
	}
}

func ToggleWorkflowStep(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		var req IDRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		step, err := service.ToggleWorkflowStep(ws, req.ID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao expandir etapa")
			return
		}

		writeJSON(w, r, http.StatusOK, step)
	}
}

func SaveWorkflow(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, service.SaveWorkflow(r.Context(), ws))
	}
}

// GenerateEmail agenda o redator simulado; a etapa aparece no workflow depois do atraso
func GenerateEmail(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		var req domain.GenerateEmailRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := service.GenerateEmail(r.Context(), ws, req); err != nil {
			writeServiceError(w, r, err, "Erro ao gerar e-mail")
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}
