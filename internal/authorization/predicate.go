// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"slices"

	"github.com/canonical/inventory-service/internal/types"
)

// The predicates below are the single source of truth for access decisions, they
// work on a read only snapshot of the requester and never call out.

func IsSystemAdministrator(u *types.User) bool {
	return u != nil && slices.Contains(u.Roles, types.SystemAdministratorRole)
}

// IsActiveRequester is false for an unknown or locked out requester, such a
// requester is denied before any other rule runs.
func IsActiveRequester(u *types.User) bool {
	return u != nil && !u.LockedOut
}

func IsOrgMember(u *types.User, organizationID string) bool {
	return u != nil && slices.Contains(u.OrganizationIDs, organizationID)
}

// CanMutateInOrganization governs devices and connections owned by the organization.
func CanMutateInOrganization(u *types.User, organizationID string) bool {
	return IsActiveRequester(u) && (IsSystemAdministrator(u) || IsOrgMember(u, organizationID))
}

// CanManageOrganizations governs organization lifecycle, membership and user administration.
func CanManageOrganizations(u *types.User) bool {
	return IsActiveRequester(u) && IsSystemAdministrator(u)
}

// VisibleScope is what a requester may list: everything for administrators,
// their own organizations otherwise.
func VisibleScope(u *types.User) types.Scope {
	if IsSystemAdministrator(u) {
		return types.Scope{All: true}
	}

	if u == nil {
		return types.Scope{}
	}

	return types.Scope{OrganizationIDs: append([]string(nil), u.OrganizationIDs...)}
}
