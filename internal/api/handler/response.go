package handler

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/signup"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coldinfra-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limite do corpo das requisições JSON e do upload de CSV
const maxBodySize = 2 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao decodificar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
		return false
	}
	return true
}

// workspaceFrom lê o workspace colocado no contexto pelo SessionMiddleware
func workspaceFrom(w http.ResponseWriter, r *http.Request) (*session.Workspace, bool) {
	ws, ok := session.FromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada", nil)
		return nil, false
	}
	return ws, true
}

// writeServiceError converte os erros tipados dos casos de uso no código da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var dashErr *dashboard.DashboardError
	if errors.As(err, &dashErr) {
		if apiErrors.StatusFor(dashErr.Code) >= http.StatusInternalServerError {
			logger.Error(message)
		}
		apiErrors.WriteError(w, dashErr.Code, dashErr.Error(), nil)
		return
	}

	var signErr *signup.SignupError
	if errors.As(err, &signErr) {
		if apiErrors.StatusFor(signErr.Code) >= http.StatusInternalServerError {
			logger.Error(message)
		}
		apiErrors.WriteError(w, signErr.Code, signErr.Error(), nil)
		return
	}

	logger.Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

// listQuery lê search, status, brand, sort e order da query string
func listQuery(r *http.Request) domain.ListQuery {
	values := r.URL.Query()

	return domain.ListQuery{
		Search: values.Get("search"),
		Status: strings.ToLower(values.Get("status")),
		Brand:  values.Get("brand"),
		Sort:   values.Get("sort"),
		Order:  domain.SortOrder(strings.ToLower(values.Get("order"))),
	}
}
