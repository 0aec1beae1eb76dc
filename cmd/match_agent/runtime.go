package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/match-engine/internal/config"
	"github.com/jonathan/match-engine/internal/engine"
	"github.com/jonathan/match-engine/internal/hierarchy"
	"github.com/jonathan/match-engine/internal/location"
	"github.com/jonathan/match-engine/internal/logger"
	"github.com/jonathan/match-engine/internal/weights"
)

// loadConfig resolves the effective configuration from an optional file path.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// buildEngine constructs the engine with its static tables and collaborators
// from configuration.
func buildEngine(cfg *config.Config, log *zap.Logger) (*engine.Engine, error) {
	table := weights.DefaultTable()
	if cfg.WeightTable != "" {
		loaded, err := weights.LoadTable(cfg.WeightTable)
		if err != nil {
			return nil, fmt.Errorf("failed to load weight table: %w", err)
		}
		table = loaded
	}

	var provider location.Provider
	if cfg.LocationServiceURL != "" {
		provider = location.NewHTTPProvider(cfg.LocationServiceURL, cfg.LocationServiceKey)
	}

	return engine.New(engine.Config{
		Selector:   weights.NewSelector(table),
		Classifier: hierarchy.NewClassifier(hierarchy.DefaultTables()),
		Location:   provider,
		Logger:     log,
	}), nil
}

// buildLogger constructs the process logger from configuration.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}
