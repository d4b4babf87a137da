// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
)

func TestAccessPolicy_Admit(t *testing.T) {
	tests := []struct {
		name     string
		policy   accessPolicy
		claims   tokenClaims
		expected error
	}{
		{
			name:     "no policy configured",
			policy:   accessPolicy{},
			claims:   tokenClaims{Subject: "svc"},
			expected: ErrNoAccessPolicy,
		},
		{
			name:     "allow listed subject",
			policy:   accessPolicy{allowedSubjects: []string{"svc", "cli"}},
			claims:   tokenClaims{Subject: "cli"},
			expected: nil,
		},
		{
			name:     "required scope in space separated scope claim",
			policy:   accessPolicy{requiredScope: "inventory:write"},
			claims:   tokenClaims{Subject: "u1", Scope: "openid inventory:write"},
			expected: nil,
		},
		{
			name:     "required scope in scp claim",
			policy:   accessPolicy{requiredScope: "inventory:write"},
			claims:   tokenClaims{Subject: "u1", Scopes: []string{"inventory:write"}},
			expected: nil,
		},
		{
			name:     "scope prefix does not match",
			policy:   accessPolicy{requiredScope: "inventory:write"},
			claims:   tokenClaims{Subject: "u1", Scope: "inventory:writer"},
			expected: ErrAccessDenied,
		},
		{
			name:     "unknown subject without scope",
			policy:   accessPolicy{allowedSubjects: []string{"svc"}, requiredScope: "inventory:write"},
			claims:   tokenClaims{Subject: "u1"},
			expected: ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.policy.admit(tt.claims); !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := (Config{}).validate(); err == nil {
		t.Error("expected an error for a missing issuer")
	}

	if err := (Config{Issuer: "https://hydra.local"}).validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewJWTAuthenticator_RequiresIssuer(t *testing.T) {
	if _, err := NewJWTAuthenticator(context.Background(), Config{}, nil, nil, nil); err == nil {
		t.Error("expected an error for a missing issuer")
	}
}

func TestContext_UserID(t *testing.T) {
	if _, ok := GetUserID(context.Background()); ok {
		t.Error("expected no requester on an empty context")
	}

	if _, ok := GetUserID(WithUserID(context.Background(), "")); ok {
		t.Error("expected an empty requester id to be treated as absent")
	}

	id, ok := GetUserID(WithUserID(context.Background(), "user-1"))
	if !ok || id != "user-1" {
		t.Errorf("expected user-1, got %q", id)
	}
}

func TestNoopVerifier_VerifyToken(t *testing.T) {
	id, err := NewNoopVerifier().VerifyToken(context.Background(), " user-1 ")
	if err != nil || id != "user-1" {
		t.Errorf("expected user-1, got %q, %v", id, err)
	}
}
