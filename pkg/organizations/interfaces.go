// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"

	"github.com/canonical/inventory-service/internal/types"
)

type ServiceInterface interface {
	CreateOrganization(ctx context.Context, requesterID string, req *CreateOrganizationRequest) (string, error)
	RenameOrganization(ctx context.Context, requesterID, organizationID string, req *RenameOrganizationRequest) error
	ManageOrganizationStatus(ctx context.Context, requesterID, organizationID string, req *OrganizationStatusRequest) error
	AddUserToOrganization(ctx context.Context, requesterID, organizationID string, req *MemberRequest) error
	RemoveUserFromOrganization(ctx context.Context, requesterID, organizationID, userID string) error
	ListOrganizations(ctx context.Context, requesterID string) ([]*types.OrganizationSummary, error)
	ListOrganizationMembers(ctx context.Context, requesterID, organizationID string) ([]*types.UserSummary, error)
	GetAvailableOrganizations(ctx context.Context, requesterID string) ([]*types.OrganizationSummary, error)
	VerifyRequester(ctx context.Context, requesterID string) error
}

type StorageInterface interface {
	CreateOrganization(ctx context.Context, name string) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	FindOrganizationByName(ctx context.Context, name string) (*types.Organization, error)
	ListOrganizationSummaries(ctx context.Context) ([]*types.OrganizationSummary, error)
	RenameOrganization(ctx context.Context, id, name string) error
	SetOrganizationStatus(ctx context.Context, id string, active bool) error

	AddMember(ctx context.Context, organizationID, userID string) (string, error)
	RemoveMember(ctx context.Context, organizationID, userID string) error
	IsMember(ctx context.Context, organizationID, userID string) (bool, error)
	ListMembers(ctx context.Context, organizationID string) ([]*types.Membership, error)
	ListOrganizationIDsByUserID(ctx context.Context, userID string) ([]string, error)
}

type IdentityInterface interface {
	FindByID(ctx context.Context, id string) (*types.Identity, error)
}

// AuthorizerInterface mirrors organization facts into the relationship store.
type AuthorizerInterface interface {
	LinkOrganizationToPlatform(ctx context.Context, organizationID string) error
	AssignOrganizationMember(ctx context.Context, organizationID, userID string) error
	RemoveOrganizationMember(ctx context.Context, organizationID, userID string) error
}

// AvailabilityInterface is the slice of the service a session selection depends on.
type AvailabilityInterface interface {
	GetAvailableOrganizations(ctx context.Context, requesterID string) ([]*types.OrganizationSummary, error)
	VerifyRequester(ctx context.Context, requesterID string) error
}
