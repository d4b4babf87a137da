// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/canonical/inventory-service/internal/types"
)

// ProviderInterface is the user directory the service relies on.
// Lookups of missing users fail with ErrUserNotFound.
type ProviderInterface interface {
	FindByID(ctx context.Context, id string) (*types.Identity, error)
	FindByEmail(ctx context.Context, email string) (*types.Identity, error)
	ListUsers(ctx context.Context) ([]*types.Identity, error)
	CreateUser(ctx context.Context, email, password string) (*types.Identity, error)
	SetLockout(ctx context.Context, id string, locked bool) error
	AddToRole(ctx context.Context, id, role string) error
	RemoveFromRole(ctx context.Context, id, role string) error
	RoleExists(ctx context.Context, role string) (bool, error)
	ChangePassword(ctx context.Context, id, password string) error
	GeneratePasswordResetToken(ctx context.Context, id string) (string, error)
	// UpdateSecurityStamp invalidates the sessions issued to the user.
	UpdateSecurityStamp(ctx context.Context, id string) error
}
