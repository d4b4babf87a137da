// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/inventory-service/internal/db"
	"github.com/canonical/inventory-service/internal/identity"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/pkg/authentication"
	"github.com/canonical/inventory-service/pkg/inventory"
	"github.com/canonical/inventory-service/pkg/metrics"
	"github.com/canonical/inventory-service/pkg/organizations"
	"github.com/canonical/inventory-service/pkg/status"
	"github.com/canonical/inventory-service/pkg/topology"
	"github.com/canonical/inventory-service/pkg/users"
	"github.com/canonical/inventory-service/pkg/webhooks"
)

// Services groups what the router exposes.
type Services struct {
	Inventory     inventory.ServiceInterface
	Organizations organizations.ServiceInterface
	Sessions      *organizations.StateRegistry
	Users         users.ServiceInterface
	Webhooks      webhooks.ServiceInterface
}

type Options struct {
	// Verifier checks bearer tokens, when nil the requester is read from the
	// identity header set by the authenticating proxy.
	Verifier authentication.TokenVerifierInterface

	// Tx wraps every mutating request in one unit of work.
	Tx db.TxRunner

	Checks             map[string]status.Check
	WebhookAPIKey      string
	CORSAllowedOrigins []string
}

func NewRouter(
	services Services,
	opts Options,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(origins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(opts.Checks, tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(services.Webhooks, opts.WebhookAPIKey, tracer, monitor, logger).RegisterEndpoints(router)

	api := chi.NewMux()
	api.Use(authenticate(opts.Verifier, tracer, monitor, logger))
	if opts.Tx != nil {
		api.Use(db.TransactionMiddleware(opts.Tx, logger))
	}

	inventory.NewAPI(services.Inventory, tracer, monitor, logger).RegisterEndpoints(api)
	organizations.NewAPI(services.Organizations, services.Sessions, tracer, monitor, logger).RegisterEndpoints(api)
	users.NewAPI(services.Users, tracer, monitor, logger).RegisterEndpoints(api)
	topology.NewAPI(services.Inventory, tracer, monitor, logger).RegisterEndpoints(api)

	router.Mount("/", api)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func authenticate(
	verifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) func(http.Handler) http.Handler {
	if verifier == nil {
		return identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware
	}

	return authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate()
}
