// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "testing"

func TestEnumValidity(t *testing.T) {
	if !DeviceTypeWifiRouter.Valid() {
		t.Errorf("expected WifiRouter to be a valid device type")
	}

	if DeviceType("Toaster").Valid() {
		t.Errorf("expected Toaster to be rejected")
	}

	if !ConnectionTypeVPN.Valid() {
		t.Errorf("expected VPN to be a valid connection type")
	}

	if ConnectionType("ethernet").Valid() {
		t.Errorf("expected connection types to be case sensitive")
	}
}

func TestResolveSpeed(t *testing.T) {
	if got := ResolveSpeed("Gigabit1G"); got != "1 Gbps (Gigabit)" {
		t.Errorf("unexpected label %q", got)
	}

	if got := ResolveSpeed("300 Mbps"); got != "300 Mbps" {
		t.Errorf("expected free text to be kept, got %q", got)
	}
}

func TestIdentityToUser(t *testing.T) {
	identity := &Identity{ID: "u1", Email: "a@b.c", Roles: []string{SystemAdministratorRole}}

	user := identity.ToUser([]string{"org-1"})
	identity.Roles[0] = "changed"

	if user.Roles[0] != SystemAdministratorRole {
		t.Errorf("expected roles to be copied")
	}

	if !identity.HasRole("changed") || identity.HasRole(SystemAdministratorRole) {
		t.Errorf("unexpected HasRole result")
	}

	if len(user.OrganizationIDs) != 1 || user.OrganizationIDs[0] != "org-1" {
		t.Errorf("unexpected organizations %v", user.OrganizationIDs)
	}
}

func TestScopeNarrow(t *testing.T) {
	all := Scope{All: true}
	member := Scope{OrganizationIDs: []string{"org-a"}}

	tests := []struct {
		name     string
		scope    Scope
		filter   string
		expected []string
		all      bool
	}{
		{name: "admin without filter", scope: all, all: true},
		{name: "admin with filter", scope: all, filter: "org-b", expected: []string{"org-b"}},
		{name: "member without filter", scope: member, expected: []string{"org-a"}},
		{name: "member with own organization", scope: member, filter: "org-a", expected: []string{"org-a"}},
		{name: "member with foreign organization", scope: member, filter: "org-b", expected: []string{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			narrowed := test.scope.Narrow(test.filter)

			if narrowed.All != test.all {
				t.Fatalf("expected All=%v, got %v", test.all, narrowed.All)
			}

			if test.all {
				return
			}

			if len(narrowed.OrganizationIDs) != len(test.expected) {
				t.Fatalf("expected %v, got %v", test.expected, narrowed.OrganizationIDs)
			}

			for i := range test.expected {
				if narrowed.OrganizationIDs[i] != test.expected[i] {
					t.Errorf("expected %v, got %v", test.expected, narrowed.OrganizationIDs)
				}
			}
		})
	}
}
