// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
)

const apiAccessResource = "inventory_api_access"

var (
	ErrNoAccessPolicy = errors.New("unauthorized: no access policy configured")
	ErrAccessDenied   = errors.New("unauthorized: missing required scope or subject not allowed")
)

type tokenClaims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

func (c tokenClaims) hasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope) || slices.Contains(c.Scopes, scope)
}

// accessPolicy admits a token when its subject is allow-listed or it carries the required scope.
type accessPolicy struct {
	allowedSubjects []string
	requiredScope   string
}

func (p accessPolicy) admit(c tokenClaims) error {
	if len(p.allowedSubjects) == 0 && p.requiredScope == "" {
		return ErrNoAccessPolicy
	}

	if slices.Contains(p.allowedSubjects, c.Subject) {
		return nil
	}

	if p.requiredScope != "" && c.hasScope(p.requiredScope) {
		return nil
	}

	return ErrAccessDenied
}

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	policy   accessPolicy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// VerifyToken returns the token subject, which the API treats as the requester id.
func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	claims := tokenClaims{}
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("failed to extract claims: %v", err)
		return "", err
	}

	if err := v.policy.admit(claims); err != nil {
		v.logger.Security().AuthzFailure(claims.Subject, apiAccessResource)
		return "", err
	}

	return claims.Subject, nil
}

func NewJWTVerifierFromProvider(provider ProviderInterface, policy accessPolicy, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *JWTVerifier {
	return NewJWTVerifier(provider.Verifier(oidcConfig()), policy, tracer, monitor, logger)
}

func NewJWTVerifier(verifier *oidc.IDTokenVerifier, policy accessPolicy, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *JWTVerifier {
	return &JWTVerifier{
		verifier: verifier,
		policy:   policy,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
