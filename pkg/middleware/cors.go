package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/vfg2006/coldinfra-dashboard/internal/config"
)

func Cors(cfg config.Cors) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           86400, // Cache do CORS por 24 horas
	})
}
