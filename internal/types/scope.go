// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// Scope restricts a listing to a set of organizations.
// All set means every organization is visible, OrganizationIDs is then ignored.
type Scope struct {
	All             bool
	OrganizationIDs []string
}

// Includes reports whether rows owned by organizationID are visible in the scope.
func (s Scope) Includes(organizationID string) bool {
	if s.All {
		return true
	}

	for _, id := range s.OrganizationIDs {
		if id == organizationID {
			return true
		}
	}

	return false
}

// Narrow restricts the scope to a single organization, it never widens it.
func (s Scope) Narrow(organizationID string) Scope {
	if organizationID == "" {
		return s
	}

	if !s.Includes(organizationID) {
		return Scope{OrganizationIDs: []string{}}
	}

	return Scope{OrganizationIDs: []string{organizationID}}
}
