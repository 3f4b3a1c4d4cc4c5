// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/event-crm/internal/config"
	"github.com/canonical/event-crm/internal/db"
	"github.com/canonical/event-crm/internal/kratos"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring/prometheus"
	"github.com/canonical/event-crm/internal/storage"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/pkg/authentication"
	"github.com/canonical/event-crm/pkg/gate"
	"github.com/canonical/event-crm/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("starting with log level %s on port %d", specs.LogLevel, specs.Port)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("event-crm", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	gateConfig := gate.NewConfig(specs.PublicPaths, specs.RequireVerifiedEmail)

	router := web.NewRouter(
		web.Config{
			Gate:                 gateConfig,
			Verifier:             authentication.NewTokenVerifier(specs.SessionSecret, specs.SessionIssuer, tracer, monitor, logger),
			SessionCookieNames:   specs.SessionCookieNames,
			CORSAllowedOrigins:   specs.CORSAllowedOrigins,
			WebhookAPIKey:        specs.WebhookAPIKey,
			RecoveryLinkLifetime: specs.RecoveryLinkLifetime,
		},
		s,
		dbClient,
		kratosClient,
		tracer,
		monitor,
		logger,
	)

	if specs.WebhookAPIKey == "" {
		logger.Warn("WEBHOOK_API_KEY is not set, the registration hook accepts any caller")
	}

	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
