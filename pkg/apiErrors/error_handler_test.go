package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Sessão inexistente", code: ErrSessionNotFound, wantStatus: http.StatusUnauthorized},
		{name: "Aba desconhecida", code: ErrUnknownTab, wantStatus: http.StatusBadRequest},
		{name: "Envio em andamento", code: ErrConflict, wantStatus: http.StatusConflict},
		{name: "Método não suportado", code: ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed},
		{name: "Código desconhecido vira 500", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrNotFound).Code)

	apiErr := FromError(errors.New("falhou"), ErrExternalService)
	assert.Equal(t, ErrExternalService, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)
}
