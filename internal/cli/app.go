// Package cli wires configuration and logging for the swipectl commands.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/swipectl/internal/config"
	"github.com/bnema/swipectl/internal/logging"
)

// App holds the shared command context: loaded configuration and a
// context carrying the logger.
type App struct {
	Ctx    context.Context
	Config *config.Manager
}

// NewApp loads configuration and builds the logger.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := mgr.Get()
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: time.RFC3339,
	})

	return &App{
		Ctx:    logging.WithContext(context.Background(), logger),
		Config: mgr,
	}, nil
}
