// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
)

// A malformed id is answered without touching the database, a nil client would panic otherwise.
func TestMalformedIDsAreNotFound(t *testing.T) {
	logger := logging.NewNoopLogger()
	s := NewStorage(nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("inventory-service", logger), logger)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{name: "get device", call: func() error { _, err := s.GetDeviceByID(ctx, "does-not-exist"); return err }},
		{name: "find device in organization", call: func() error { _, err := s.FindDeviceByName(ctx, "does-not-exist", "Device 1"); return err }},
		{name: "delete device", call: func() error { return s.DeleteDevice(ctx, "does-not-exist") }},
		{name: "get connection", call: func() error { _, err := s.GetConnectionByID(ctx, "does-not-exist"); return err }},
		{name: "delete connection", call: func() error { return s.DeleteConnection(ctx, "does-not-exist") }},
		{name: "get organization", call: func() error { _, err := s.GetOrganizationByID(ctx, "does-not-exist"); return err }},
		{name: "remove member", call: func() error { return s.RemoveMember(ctx, "does-not-exist", "user-1") }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := test.call(); !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}

	member, err := s.IsMember(ctx, "does-not-exist", "user-1")
	if err != nil || member {
		t.Errorf("expected no membership, got %v, %v", member, err)
	}

	members, err := s.ListMembers(ctx, "does-not-exist")
	if err != nil || len(members) != 0 {
		t.Errorf("expected no members, got %v, %v", members, err)
	}
}
