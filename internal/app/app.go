// Package app is the composition root: it loads configuration, initialises
// logging, and assembles a session over the JSON file persistence. The
// presentation shell calls Bootstrap once at startup, drives the session's
// store, and closes the session at shutdown.
package app

import (
	"context"
	"fmt"

	"github.com/campushire/career-registry/internal/core/service"
	"github.com/campushire/career-registry/internal/infrastructure/config"
	"github.com/campushire/career-registry/internal/infrastructure/persistence/jsonfile"
	"github.com/campushire/career-registry/pkg/logger"
)

// Bootstrap builds an unopened session from the environment.
func Bootstrap(ctx context.Context) (*service.Session, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	paths := cfg.Data.Paths()
	session := service.NewSession(
		jsonfile.NewReader(paths, log),
		jsonfile.NewWriter(paths, log),
		service.Options{StrictResolve: cfg.Data.StrictResolve},
		log,
	)

	log.Info().Str("data_dir", cfg.Data.Dir).Bool("strict_resolve", cfg.Data.StrictResolve).Msg("registry assembled")
	return session, nil
}
