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

	"github.com/canonical/inventory-service/internal/authorization"
	"github.com/canonical/inventory-service/internal/config"
	"github.com/canonical/inventory-service/internal/db"
	"github.com/canonical/inventory-service/internal/identity"
	"github.com/canonical/inventory-service/internal/kratos"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/monitoring/prometheus"
	"github.com/canonical/inventory-service/internal/openfga"
	"github.com/canonical/inventory-service/internal/storage"
	"github.com/canonical/inventory-service/internal/storage/memory"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/pkg/authentication"
	"github.com/canonical/inventory-service/pkg/inventory"
	"github.com/canonical/inventory-service/pkg/organizations"
	"github.com/canonical/inventory-service/pkg/status"
	"github.com/canonical/inventory-service/pkg/users"
	"github.com/canonical/inventory-service/pkg/web"
	"github.com/canonical/inventory-service/pkg/webhooks"
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
		return fmt.Errorf("issues with environment sourcing: %s", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("inventory-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, specs.TracingSampleRatio, logger))

	ctx := context.Background()
	checks := make(map[string]status.Check)

	store, closeStore, err := newStorage(specs, checks, tracer, monitor, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	authorizer, err := newAuthorizer(ctx, specs, checks, tracer, monitor, logger)
	if err != nil {
		return err
	}

	directory, err := newIdentityProvider(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	userService := users.NewService(directory, store, authorizer, tracer, monitor, logger)
	if err := userService.Bootstrap(ctx, specs.BootstrapAdminEmail, specs.BootstrapAdminPassword); err != nil {
		return err
	}

	organizationService := organizations.NewService(store, directory, authorizer, tracer, monitor, logger)

	services := web.Services{
		Inventory:     inventory.NewService(store, directory, tracer, monitor, logger),
		Organizations: organizationService,
		Sessions:      organizations.NewStateRegistry(organizationService, logger),
		Users:         userService,
		Webhooks:      webhooks.NewService(store, directory, tracer, monitor, logger),
	}

	opts := web.Options{
		Tx:                 store,
		Checks:             checks,
		WebhookAPIKey:      specs.WebhookAPIKey,
		CORSAllowedOrigins: specs.CORSAllowedOrigins,
	}

	if specs.AuthenticationEnabled {
		verifier, err := authentication.NewJWTAuthenticator(
			ctx,
			authentication.Config{
				Issuer:          specs.AuthenticationIssuer,
				JwksURL:         specs.AuthenticationJwksURL,
				AllowedSubjects: specs.AuthenticationAllowedSubjects,
				RequiredScope:   specs.AuthenticationRequiredScope,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %w", err)
		}

		opts.Verifier = verifier
		logger.Info("Bearer token authentication is enabled")
	} else {
		logger.Info("Trusting the identity header of the authenticating proxy")
	}

	router := web.NewRouter(services, opts, tracer, monitor, logger)
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

func newStorage(
	specs *config.EnvSpec,
	checks map[string]status.Check,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (storage.StorageInterface, func(), error) {
	switch specs.StorageBackend {
	case config.StorageBackendMemory:
		logger.Warn("Using the in-memory store, data is lost on restart")
		return memory.NewStorage(), func() {}, nil
	case config.StorageBackendPostgres:
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", specs.StorageBackend)
	}

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
			ConnectTimeout:  specs.DBConnectTimeout,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create database client: %v", err)
	}

	checks["database"] = dbClient.Ping

	return storage.NewStorage(dbClient, tracer, monitor, logger), dbClient.Close, nil
}

func newAuthorizer(
	ctx context.Context,
	specs *config.EnvSpec,
	checks map[string]status.Check,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*authorization.Authorizer, error) {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		return authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger), nil
	}

	ofga := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)

	authorizer := authorization.NewAuthorizer(ofga, tracer, monitor, logger)
	logger.Info("Authorization is enabled")

	if err := authorizer.ValidateModel(ctx); err != nil {
		return nil, fmt.Errorf("invalid authorization model provided: %w", err)
	}

	checks["openfga"] = func(ctx context.Context) error {
		_, err := ofga.ReadModel(ctx)
		return err
	}

	return authorizer, nil
}

func newIdentityProvider(
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (identity.ProviderInterface, error) {
	switch specs.IdentityBackend {
	case config.IdentityBackendMemory:
		logger.Warn("Using the in-memory user directory, accounts are lost on restart")
		return identity.NewMemoryProvider(), nil
	case config.IdentityBackendKratos:
		if specs.KratosAdminURL == "" {
			return nil, fmt.Errorf("KRATOS_ADMIN_URL is required by the kratos identity backend")
		}
		return kratos.NewClient(specs.KratosAdminURL, specs.RecoveryCodeLifetime, tracer, monitor, logger), nil
	default:
		return nil, fmt.Errorf("unknown identity backend %q", specs.IdentityBackend)
	}
}
