package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Valores inertes usados quando as credenciais do Supabase não estão configuradas
const (
	PlaceholderSupabaseURL = "https://placeholder-project.supabase.co"
	PlaceholderSupabaseKey = "placeholder-anon-key"
)

// Tipos de armazenamento para o formulário beta
const (
	SignupStoreSupabase = "supabase"
	SignupStorePostgres = "postgres"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Supabase      Supabase      `mapstructure:",squash"`
	Signup        Signup        `mapstructure:",squash"`
	Session       Session       `mapstructure:",squash"`
	Notifications Notifications `mapstructure:",squash"`
	Simulation    Simulation    `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Supabase struct {
	URL        string        `mapstructure:"supabase_url"`
	AnonKey    string        `mapstructure:"supabase_anon_key"`
	Table      string        `mapstructure:"supabase_signup_table"`
	Timeout    time.Duration `mapstructure:"supabase_timeout"`
	Configured bool          `mapstructure:"-"`
}

type Signup struct {
	Store string `mapstructure:"signup_store"`
}

type Session struct {
	Secret    string        `mapstructure:"session_secret"`
	TTL       time.Duration `mapstructure:"session_ttl"`
	SweepCron string        `mapstructure:"session_sweep_cron"`
}

type Notifications struct {
	Duration        time.Duration `mapstructure:"notification_duration"`
	WarningDuration time.Duration `mapstructure:"notification_warning_duration"`
	SweepCron       string        `mapstructure:"notification_sweep_cron"`
}

type Simulation struct {
	UploadDelay  time.Duration `mapstructure:"simulation_upload_delay"`
	AIEmailDelay time.Duration `mapstructure:"simulation_ai_email_delay"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/postgres?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")

	viper.SetDefault("SUPABASE_URL", "")
	viper.SetDefault("SUPABASE_ANON_KEY", "")
	viper.SetDefault("SUPABASE_SIGNUP_TABLE", "beta_signups")
	viper.SetDefault("SUPABASE_TIMEOUT", "15s")

	viper.SetDefault("SIGNUP_STORE", SignupStoreSupabase)

	viper.SetDefault("SESSION_SECRET", "your_session_secret") // ONLY LOCAL
	viper.SetDefault("SESSION_TTL", "2h")
	viper.SetDefault("SESSION_SWEEP_CRON", "*/10 * * * *") // A cada 10 minutos

	// Toasts somem sozinhos depois desse tempo
	viper.SetDefault("NOTIFICATION_DURATION", "5s")
	viper.SetDefault("NOTIFICATION_WARNING_DURATION", "10s")
	viper.SetDefault("NOTIFICATION_SWEEP_CRON", "* * * * *") // A cada minuto

	viper.SetDefault("SIMULATION_UPLOAD_DELAY", "2s")
	viper.SetDefault("SIMULATION_AI_EMAIL_DELAY", "1500ms")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8080")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Supabase.ApplyFallbacks()

	if config.Signup.Store != SignupStoreSupabase && config.Signup.Store != SignupStorePostgres {
		return nil, fmt.Errorf("config: signup store inválido: %q", config.Signup.Store)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// ApplyFallbacks troca credenciais ausentes por placeholders inertes.
// A aplicação sobe mesmo assim; Configured indica se os valores são reais.
func (s *Supabase) ApplyFallbacks() {
	s.Configured = s.URL != "" && s.AnonKey != ""

	if s.URL == "" {
		s.URL = PlaceholderSupabaseURL
	}
	if s.AnonKey == "" {
		s.AnonKey = PlaceholderSupabaseKey
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
