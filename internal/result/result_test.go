// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package result

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{name: "validation", err: NewValidationError("bad name"), expected: KindValidationError},
		{name: "access denied", err: NewAccessDenied("denied"), expected: KindAccessDenied},
		{name: "not found", err: NewNotFound("missing"), expected: KindNotFound},
		{name: "conflict", err: NewConflict("exists"), expected: KindConflict},
		{name: "invalid operation", err: NewInvalidOperation("self loop"), expected: KindInvalidOperation},
		{name: "internal", err: NewInternalError("", cause), expected: KindInternalError},
		{name: "wrapped conflict", err: fmt.Errorf("create: %w", NewConflict("exists")), expected: KindConflict},
		{name: "plain error", err: cause, expected: KindInternalError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if kind := KindOf(test.err); kind != test.expected {
				t.Errorf("expected kind %s, got %s", test.expected, kind)
			}
		})
	}
}

func TestMessageOfHidesInternalCauses(t *testing.T) {
	err := NewInternalError("", errors.New("pq: password authentication failed"))

	if msg := MessageOf(err); msg != internalErrorMessage {
		t.Errorf("expected generic message, got %q", msg)
	}

	if msg := MessageOf(errors.New("raw")); msg != internalErrorMessage {
		t.Errorf("expected generic message for untyped error, got %q", msg)
	}

	if !errors.Is(err, err.Err) {
		t.Errorf("expected the cause to be reachable through Unwrap")
	}
}

func TestFrom(t *testing.T) {
	ok := From("id-1", nil, "created")
	if !ok.Success || ok.Data != "id-1" || ok.Message != "created" {
		t.Errorf("unexpected success envelope: %+v", ok)
	}

	failed := From("ignored", NewConflict("A device with this name already exists in this organization."), "created")
	if failed.Success {
		t.Errorf("expected a failed envelope")
	}
	if failed.Data != "" {
		t.Errorf("expected zero data on failure, got %q", failed.Data)
	}
	if failed.Message != "A device with this name already exists in this organization." {
		t.Errorf("unexpected message %q", failed.Message)
	}
}
