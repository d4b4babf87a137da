// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"testing"
)

func TestAuthorizationModelProvider_GetModel(t *testing.T) {
	model := NewAuthorizationModelProvider("v0").GetModel()

	if model.SchemaVersion != "1.1" {
		t.Errorf("expected schema 1.1, got %s", model.SchemaVersion)
	}

	relations := map[string][]string{}
	for _, td := range model.TypeDefinitions {
		relations[td.Type] = nil
		if td.Relations == nil {
			continue
		}
		for r := range *td.Relations {
			relations[td.Type] = append(relations[td.Type], r)
		}
	}

	for _, typ := range []string{"user", "platform", "organization"} {
		if _, ok := relations[typ]; !ok {
			t.Errorf("expected type %s in the model", typ)
		}
	}

	expected := map[string]bool{
		PLATFORM_RELATION:     true,
		MEMBER_RELATION:       true,
		CAN_MANAGE_PERMISSION: true,
		CAN_EDIT_PERMISSION:   true,
	}
	for _, r := range relations["organization"] {
		delete(expected, r)
	}
	if len(expected) != 0 {
		t.Errorf("missing organization relations %v", expected)
	}
}

func TestAuthorizationModelProvider_UnknownVersion(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unknown version")
		}
	}()

	NewAuthorizationModelProvider("v9").GetModel()
}
