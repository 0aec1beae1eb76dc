package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the matching engine over REST endpoints.`,
	RunE:  runServe,
}

var (
	servePort   int
	serveConfig string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to engine config JSON file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	eng, err := buildEngine(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		AuthSecret:     cfg.AuthSecret,
		DefaultOptions: cfg.MatchOptions(),
	}, eng, log)

	return srv.Start()
}
