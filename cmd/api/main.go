package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coldinfra-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/coldinfra-dashboard/infrastructure/integrator/supabase"
	"github.com/vfg2006/coldinfra-dashboard/infrastructure/integrator/supabase/supabaseclient"
	"github.com/vfg2006/coldinfra-dashboard/infrastructure/repository"
	"github.com/vfg2006/coldinfra-dashboard/internal/api"
	"github.com/vfg2006/coldinfra-dashboard/internal/config"
	"github.com/vfg2006/coldinfra-dashboard/internal/scheduler"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/landing"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/notifying"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/signup"
	"github.com/vfg2006/coldinfra-dashboard/pkg/middleware"
)

const (
	supabaseWarningTitle       = "Supabase credentials not configured"
	supabaseWarningDescription = "Please set up your environment variables to connect to Supabase."
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if !cfg.Supabase.Configured {
		logrus.Warn("Supabase URL ou Anon Key não encontrados nas variáveis de ambiente. Usando valores de desenvolvimento.")
	}

	center := notifying.NewCenter(cfg.Notifications.Duration)

	sessionStore := session.NewStore(
		cfg.Session,
		session.OnCreate(func(w *session.Workspace) {
			middleware.RecordSessionCreated()
			if cfg.Supabase.Configured {
				return
			}
			// Aviso único por sessão enquanto o Supabase usa placeholders
			_, err := center.Push(w.ID, notifying.Warning(
				supabaseWarningTitle,
				supabaseWarningDescription,
				cfg.Notifications.WarningDuration,
			))
			if err != nil {
				logrus.WithError(err).Warn("Erro ao enfileirar aviso do Supabase")
			}
		}),
		session.OnExpire(func(sessionID string) {
			middleware.RecordSessionExpired()
			center.Drop(sessionID)
		}),
	)

	signupStore, closeStore := newSignupStore(ctx, cfg)
	defer closeStore()

	delayedTasks := scheduler.NewDelayedTaskService()
	if err := delayedTasks.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o agendador de tarefas simuladas")
	}

	notificationSweep := scheduler.NewNotificationSweepService(center, cfg.Notifications)
	sessionSweep := scheduler.NewSessionSweepService(sessionStore, cfg.Session)

	// Inicia os agendadores em background
	if err := notificationSweep.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de notificações")
	} else {
		logrus.Info("Agendador de limpeza de notificações iniciado com sucesso")
	}

	if err := sessionSweep.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	services := api.Services{
		Landing:       landing.NewService(),
		Sessions:      sessionStore,
		Notifications: center,
		Signup:        signup.NewService(signupStore, center),
		Dashboard:     dashboard.NewService(center, delayedTasks, cfg.Simulation),
	}

	server, err := api.New(cfg, services, notificationSweep, sessionSweep)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newSignupStore escolhe onde gravar as inscrições beta
func newSignupStore(ctx context.Context, cfg *config.Config) (signup.Store, func()) {
	if cfg.Signup.Store == config.SignupStorePostgres {
		pgConn := pgconn(ctx, cfg.Database)
		logrus.Info("Inscrições beta gravadas direto no PostgreSQL")
		return repository.NewBetaSignupRepository(pgConn, cfg.Supabase.Table), func() { pgConn.Close() }
	}

	client := supabaseclient.NewClient(cfg.Supabase)
	logrus.WithField("table", cfg.Supabase.Table).Info("Inscrições beta gravadas pela API do Supabase")
	return supabase.New(cfg.Supabase, client), func() {}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
