package supabaseclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/coldinfra-dashboard/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	InsertRow(ctx context.Context, table string, row interface{}) error
}

type SupabaseClient struct {
	httpClient *http.Client
	config     config.Supabase
}

func NewClient(cfg config.Supabase) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &SupabaseClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
