package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-renderer/internal/config"
	"github.com/jonathan/resume-renderer/internal/server"
)

var (
	serveConfigPath string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes render and assessment endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	cfg = cfg.MergeWithDefaults(config.Config{})

	srv, err := server.New(server.Config{
		Port:   cfg.Port,
		Engine: engineOptions(cfg),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
