package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/signup"
	"github.com/vfg2006/coldinfra-dashboard/pkg/log"
	"github.com/vfg2006/coldinfra-dashboard/pkg/middleware"
)

type BetaOptionsResponse struct {
	Roles   []string `json:"roles"`
	Volumes []string `json:"volumes"`
}

func GetBetaOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, BetaOptionsResponse{
			Roles:   domain.BetaRoles,
			Volumes: domain.BetaVolumes,
		})
	}
}

func GetBetaForm(service signup.Signer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, service.GetForm(ws))
	}
}

func UpdateBetaForm(service signup.Signer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		var fields domain.BetaSignup
		if !decodeJSON(w, r, &fields) {
			return
		}

		form, err := service.UpdateForm(ws, fields)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar formulário")
			return
		}

		writeJSON(w, r, http.StatusOK, form)
	}
}

// SubmitBetaForm envia o rascunho da sessão; o resultado também chega como toast
func SubmitBetaForm(service signup.Signer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		log.ForContext(r.Context()).Info("INIT - SubmitBetaForm")

		form, err := service.Submit(r.Context(), ws)
		if err != nil {
			switch {
			case errors.Is(err, signup.ErrMissingRequiredData):
				middleware.RecordSignup("invalid")
			case errors.Is(err, signup.ErrInsertFailed):
				middleware.RecordSignup("failed")
			}
			writeServiceError(w, r, err, "Erro ao enviar inscrição")
			return
		}

		middleware.RecordSignup("success")
		writeJSON(w, r, http.StatusCreated, form)
	}
}
