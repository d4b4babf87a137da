// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"strings"
	"testing"

	"github.com/canonical/inventory-service/internal/result"
	"github.com/canonical/inventory-service/internal/types"
)

type sample struct {
	Name     string           `json:"name" validate:"min=3,max=100"`
	IP       *string          `json:"ip_address" validate:"omitempty,max=50"`
	Type     types.DeviceType `json:"type" validate:"device_type"`
	Email    string           `json:"email" validate:"omitempty,email"`
	Password string           `json:"password" validate:"omitempty,min=6"`
	Confirm  string           `json:"confirm_password" validate:"eqfield=Password"`
}

func TestStruct(t *testing.T) {
	v := NewValidator()
	longIP := strings.Repeat("1", 51)

	tests := []struct {
		name     string
		input    sample
		valid    bool
		contains string
	}{
		{name: "valid", input: sample{Name: "Device 1", Type: types.DeviceTypeRouter}, valid: true},
		{name: "short name", input: sample{Name: "ab", Type: types.DeviceTypeRouter}, contains: "name must be at least 3"},
		{name: "long name", input: sample{Name: strings.Repeat("a", 101), Type: types.DeviceTypeRouter}, contains: "name must be at most 100"},
		{name: "long ip", input: sample{Name: "Device 1", IP: &longIP, Type: types.DeviceTypeRouter}, contains: "ip_address must be at most 50"},
		{name: "unknown type", input: sample{Name: "Device 1", Type: "Toaster"}, contains: `"Toaster" is not a known type`},
		{name: "bad email", input: sample{Name: "Device 1", Type: types.DeviceTypePC, Email: "nope"}, contains: "valid email"},
		{name: "password mismatch", input: sample{Name: "Device 1", Type: types.DeviceTypePC, Password: "secret1", Confirm: "secret2"}, contains: "confirm_password must match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(v, tt.input)
			if tt.valid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !result.IsKind(err, result.KindValidationError) {
				t.Fatalf("expected a validation error, got %v", err)
			}

			if msg := result.MessageOf(err); !strings.Contains(msg, tt.contains) {
				t.Errorf("expected %q in %q", tt.contains, msg)
			}
		})
	}
}

func TestOptional(t *testing.T) {
	blank := "   "
	padded := " eth0 "

	if Optional(nil) != nil {
		t.Error("expected nil for nil")
	}
	if Optional(&blank) != nil {
		t.Error("expected nil for a blank value")
	}
	if got := Optional(&padded); got == nil || *got != "eth0" {
		t.Errorf("expected eth0, got %v", got)
	}
}
