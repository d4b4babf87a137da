// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
)

var otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

func oidcConfig() *oidc.Config {
	return &oidc.Config{
		SkipClientIDCheck: true,
		SkipIssuerCheck:   false,
	}
}

// NewJWTAuthenticator builds the bearer token verifier used by the API middleware.
func NewJWTAuthenticator(ctx context.Context, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (TokenVerifierInterface, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	if cfg.JwksURL != "" {
		logger.Infof("verifying tokens of %s against JWKS %s", cfg.Issuer, cfg.JwksURL)
		keySet := oidc.NewRemoteKeySet(ctx, cfg.JwksURL)

		return NewJWTVerifier(oidc.NewVerifier(cfg.Issuer, keySet, oidcConfig()), cfg.policy(), tracer, monitor, logger), nil
	}

	logger.Infof("verifying tokens of %s through OIDC discovery", cfg.Issuer)
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	return NewJWTVerifierFromProvider(provider, cfg.policy(), tracer, monitor, logger), nil
}
