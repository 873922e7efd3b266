package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coldinfra-dashboard/pkg/log"
)

type SessionResolver interface {
	Resolve(token string) (*session.Workspace, error)
}

// SessionMiddleware resolve o workspace da sessão anônima.
// Websockets não enviam cabeçalhos, então o token também é aceito em ?token=.
func SessionMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			workspace, err := resolver.Resolve(tokenString)
			if err != nil {
				if errors.Is(err, session.ErrSessionNotFound) {
					apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Session expired", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			ctx := session.NewContext(r.Context(), workspace)
			ctx = log.WithSessionID(ctx, workspace.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return ""
		}
		return strings.TrimSpace(tokenString)
	}

	return r.URL.Query().Get("token")
}
