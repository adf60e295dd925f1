package main

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/lunch-web/pkg/logging"
)

func newServeCmd(stdout, _ io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the frontend HTTP server (default)",
		Long: `Run the frontend HTTP server until SIGINT or SIGTERM.

Configuration is read from the --config file, the SERVICE_ENV overlay, and
environment variables such as API_BASE_URL and FRONTEND_HISTORY.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, stdout)
		},
	}
}

func runServe(cmd *cobra.Command, stdout io.Writer) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewWithWriter(&cfg.Logging, stdout)

	srv, err := NewServer(cfg, logger)
	if err != nil {
		logger.Error("service init failed", "error", err)
		return errExit
	}

	if err := srv.Start(); err != nil {
		logger.Error("service start failed", "error", err)
		return errExit
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		logger.Error("shutdown failed", "error", err)
		return errExit
	}

	logger.Info("service stopped gracefully")
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
