package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/landing"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
)

func GetLanding(service landing.Lander) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetLanding())
	}
}

func GetLandingSection(service landing.Lander) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		section, err := service.GetSection(id)
		if err != nil {
			if errors.Is(err, landing.ErrSectionNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Seção não encontrada", id)
				return
			}
			writeServiceError(w, r, err, "Erro ao buscar seção")
			return
		}

		writeJSON(w, r, http.StatusOK, section)
	}
}
