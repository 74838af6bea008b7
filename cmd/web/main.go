package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	reporthandler "github.com/pp-tools/pizza-pulse/pkg/handlers/report"
	"github.com/pp-tools/pizza-pulse/pkg/server"
	"github.com/pp-tools/pizza-pulse/pkg/services/config"
	"github.com/pp-tools/pizza-pulse/pkg/store/cache"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Pizza Pulse report server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the server config file (optional; defaults plus PIZZAPULSE_* env vars apply)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadWebConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load web config: %w", err)
	}

	reports := cache.New(cfg.CacheCapacity)
	handler := reporthandler.NewHandler(reports, cfg.DefaultTopN)

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Report: handler,
		},
	})

	logger.Info().
		Str("addr", addr).
		Int("default_top_n", cfg.DefaultTopN).
		Int("cache_capacity", cfg.CacheCapacity).
		Msg("configuration loaded")

	return api.Start()
}
