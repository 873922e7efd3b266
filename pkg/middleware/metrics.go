package middleware

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	sessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_sessions_created_total",
			Help: "Total number of anonymous dashboard sessions created",
		},
	)

	sessionsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_sessions_expired_total",
			Help: "Total number of dashboard sessions removed by the sweeper",
		},
	)

	betaSignups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beta_signups_total",
			Help: "Total number of beta signup submissions",
		},
		[]string{"result"},
	)

	notificationStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notification_streams_active",
			Help: "Number of open notification websocket streams",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return hijack(rw.ResponseWriter)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Metrics instrumenta uma rota; route é o padrão registrado, não o path concreto
func Metrics(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			activeConnections.Inc()
			defer activeConnections.Dec()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(rw.statusCode)

			httpRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
			httpRequestDuration.WithLabelValues(r.Method, route).Observe(duration)
		})
	}
}

func RecordSessionCreated() {
	sessionsCreated.Inc()
}

func RecordSessionExpired() {
	sessionsExpired.Inc()
}

// RecordSignup conta envios do formulário beta por resultado (success, invalid, failed)
func RecordSignup(result string) {
	betaSignups.WithLabelValues(result).Inc()
}

func StreamOpened() {
	notificationStreams.Inc()
}

func StreamClosed() {
	notificationStreams.Dec()
}

func hijack(w http.ResponseWriter) (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return h.Hijack()
}
