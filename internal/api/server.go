package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coldinfra-dashboard/internal/api/handler"
	"github.com/vfg2006/coldinfra-dashboard/internal/api/handler/router"
	"github.com/vfg2006/coldinfra-dashboard/internal/config"
	"github.com/vfg2006/coldinfra-dashboard/internal/scheduler"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/landing"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/signup"
	"github.com/vfg2006/coldinfra-dashboard/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services reúne os casos de uso expostos pela API
type Services struct {
	Landing       landing.Lander
	Sessions      *session.Store
	Notifications handler.NotificationCenter
	Signup        signup.Signer
	Dashboard     dashboard.Dashboarder
}

func New(
	config *config.Config,
	services Services,
	notificationSweep *scheduler.SweepService,
	sessionSweep *scheduler.SweepService,
) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if notificationSweep != nil {
		cronServices.NotificationSweep = notificationSweep
	}
	if sessionSweep != nil {
		cronServices.SessionSweep = sessionSweep
	}

	rt := NewRouter(config, services, cronServices)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewRouter registra todas as rotas da API
func NewRouter(config *config.Config, services Services, cronServices handler.CronJobServices) router.Router {
	return router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(router.Route{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		}),
		router.WithRoutes(handler.Landing(services.Landing)...),
		router.WithRoutes(handler.Sessions(services.Sessions, config.Session.TTL)...),
		router.WithRoutes(handler.Notifications(services.Notifications, services.Sessions, config.Cors.AllowedOrigins)...),
		router.WithRoutes(handler.Signup(services.Signup, services.Sessions)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard, services.Sessions)...),
		router.WithRoutes(handler.Brands(services.Dashboard, services.Sessions)...),
		router.WithRoutes(handler.Domains(services.Dashboard, services.Sessions)...),
		router.WithRoutes(handler.Inboxes(services.Dashboard, services.Sessions)...),
		router.WithRoutes(handler.Leads(services.Dashboard, services.Sessions)...),
		router.WithRoutes(handler.Campaigns(services.Dashboard, services.Sessions)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
