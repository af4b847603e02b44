// Package app wires configuration, logging, the slot database and the
// entity store together for the TUI.
package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"bandlink/internal/config"
	"bandlink/internal/db"
	"bandlink/internal/store"
)

type App struct {
	ConfigPath string
	Config     *config.Config
	DB         *db.DB
	Log        *zap.Logger
	Store      *store.Store
}

func New(configPath string) (*App, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(cfg.Paths.Data, 0755); err != nil {
		return nil, nil, fmt.Errorf("create data directory: %w", err)
	}

	logger, err := newLogger(cfg.Paths.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	database, err := db.Open(cfg.Paths.Database)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}

	a := &App{
		ConfigPath: configPath,
		Config:     cfg,
		DB:         database,
		Log:        logger,
		Store:      store.New(database, cfg.Identity.User, logger),
	}

	cleanup := func() {
		_ = database.Close()
		_ = logger.Sync()
	}

	return a, cleanup, nil
}

// newLogger builds a zap logger writing to a file. Stderr belongs to
// the full-screen TUI, so nothing may log there while the program runs.
func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
