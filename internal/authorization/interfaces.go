// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"
)

type AuthorizerInterface interface {
	ValidateModel(context.Context) error

	AssignOrganizationMember(context.Context, string, string) error
	RemoveOrganizationMember(context.Context, string, string) error
	// AssignSystemAdministrator grants the user edit and manage rights on every
	// organization linked to the global platform.
	AssignSystemAdministrator(context.Context, string) error
	RemoveSystemAdministrator(context.Context, string) error
	// LinkOrganizationToPlatform binds a new organization to the global platform,
	// so system administrators reach it.
	LinkOrganizationToPlatform(context.Context, string) error
}

type AuthzClientInterface interface {
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
}
