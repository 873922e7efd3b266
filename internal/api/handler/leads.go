package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coldinfra-dashboard/pkg/log"
)

const uploadField = "file"

func ListGeneratedLeads(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		view, err := service.ListGeneratedLeads(ws, listQuery(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar leads")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

func ListFinderLeads(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		view, err := service.ListFinderLeads(ws, listQuery(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar leads")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

func ToggleLead(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		var req IDRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		lead, err := service.ToggleLead(ws, req.ID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao selecionar lead")
			return
		}

		writeJSON(w, r, http.StatusOK, lead)
	}
}

func AddLeadsToCart(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		cart, err := service.AddLeadsToCart(r.Context(), ws)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao adicionar leads ao carrinho")
			return
		}

		writeJSON(w, r, http.StatusOK, cart)
	}
}

// UploadLeads recebe o CSV em multipart (campo "file"). Sem arquivo o serviço
// registra o toast de falha.
func UploadLeads(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

		var (
			fileName string
			content  []byte
		)

		file, header, err := r.FormFile(uploadField)
		switch {
		case err == nil:
			defer file.Close()
			fileName = header.Filename
			content, err = io.ReadAll(file)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Erro ao ler arquivo enviado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler arquivo", nil)
				return
			}
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		default:
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao decodificar upload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar upload", nil)
			return
		}

		upload, err := service.UploadLeads(r.Context(), ws, fileName, content)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao importar leads")
			return
		}

		writeJSON(w, r, http.StatusAccepted, upload)
	}
}
