// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"strings"
)

// NoopVerifier accepts any bearer token and uses its value as the requester id.
// Only meant for local runs where the CLI passes --token <user id>.
type NoopVerifier struct{}

func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	return strings.TrimSpace(rawToken), nil
}
