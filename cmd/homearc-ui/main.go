package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/homearc/homearc/internal/logger"
	"github.com/homearc/homearc/internal/ui/config"
	"github.com/homearc/homearc/internal/ui/server"
	"github.com/homearc/homearc/internal/version"
)

func main() {
	cmd := &cobra.Command{
		Use:   "homearc-ui",
		Short: "homearc web user interface",
		Long:  `Web front-end for the homearc media and archival appliance`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// a missing .env is fine - the environment may be set by the service manager
	_ = godotenv.Load()

	serverLogger := logger.InitServerLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		serverLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	httpLogger := logger.InitHttpLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	serverLogger.Info().Msgf("starting front-end server (version: %s)", version.Get().Version)
	serverLogger.Info().Msgf("using appliance backend at: %s", cfg.APIBaseURL)

	srv, err := server.NewServer(cfg, serverLogger, httpLogger)
	if err != nil {
		serverLogger.Fatal().Err(err).Msg("failed to create server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		serverLogger.Error().Msgf("front-end server error: %v", err)
		return err
	}

	serverLogger.Info().Msg("front-end server shutdown complete")
	return nil
}
