// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/brand-engine/internal/logging"
	"github.com/pdiddy/brand-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve classification and recommendation over HTTP",
	Long: `Serve exposes classify, recommend, the preset catalog and the prompt as a
JSON API. When an API token is configured (server.api_token, or the
brand-engine-api-token secret) every /v1 route requires it as a bearer token.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cfg, err := loadEngine()
		if err != nil {
			return err
		}

		logger, err := logging.NewLogger(viper.GetString("log_level"))
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		cfg.Server.APIToken = apiToken(cfg.Server.APIToken)
		if cfg.Server.APIToken == "" {
			logger.Warn("no API token configured; /v1 routes are open")
		}
		logger.Info("starting server",
			zap.String("version", version),
			zap.Int("presets", len(engine.Tables().Catalog)),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(engine, cfg.Server, logger).ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default \":8080\")")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}
