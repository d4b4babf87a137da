// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/canonical/inventory-service/internal/types"
)

type ServiceInterface interface {
	CreateUser(ctx context.Context, requesterID string, req *CreateUserRequest) (string, error)
	ListUsers(ctx context.Context, requesterID string) ([]*types.UserSummary, error)
	AddToRole(ctx context.Context, requesterID, userID, role string) error
	RemoveFromRole(ctx context.Context, requesterID, userID, role string) error
	DisableUser(ctx context.Context, requesterID, userID string) error
	EnableUser(ctx context.Context, requesterID, userID string) error
	ChangePassword(ctx context.Context, requesterID, userID string, req *ChangePasswordRequest) error
	GeneratePasswordResetToken(ctx context.Context, requesterID, userID string) (string, error)
}

type IdentityInterface interface {
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
	UpdateSecurityStamp(ctx context.Context, id string) error
}

type StorageInterface interface {
	ListOrganizationIDsByUserID(ctx context.Context, userID string) ([]string, error)
}

// AuthorizerInterface mirrors the administrator role into the relationship store.
type AuthorizerInterface interface {
	AssignSystemAdministrator(ctx context.Context, userID string) error
	RemoveSystemAdministrator(ctx context.Context, userID string) error
}
