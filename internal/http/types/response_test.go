// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canonical/inventory-service/internal/result"
)

func TestWriteResult(t *testing.T) {
	tests := []struct {
		name            string
		data            string
		err             error
		expectedStatus  int
		expectedSuccess bool
		expectedMessage string
		expectedData    string
	}{
		{
			name:            "success",
			data:            "device-id",
			expectedStatus:  http.StatusOK,
			expectedSuccess: true,
			expectedMessage: "Device created.",
			expectedData:    "device-id",
		},
		{
			name:            "validation error",
			err:             result.NewValidationError("Name must be between 3 and 100 characters."),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Name must be between 3 and 100 characters.",
		},
		{
			name:            "access denied",
			err:             result.NewAccessDenied("You do not have permission to perform this action."),
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "You do not have permission to perform this action.",
		},
		{
			name:            "not found",
			err:             result.NewNotFound("Device not found."),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Device not found.",
		},
		{
			name:            "conflict",
			err:             result.NewConflict("already exists"),
			expectedStatus:  http.StatusConflict,
			expectedMessage: "already exists",
		},
		{
			name:            "invalid operation",
			err:             result.NewInvalidOperation("Cannot connect a device to itself."),
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: "Cannot connect a device to itself.",
		},
		{
			name:            "untyped error",
			data:            "leaked",
			err:             errors.New("dial tcp: refused"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "An internal error occurred while processing the request.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			WriteResult(w, test.data, test.err, "Device created.")

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, w.Code)
			}

			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected json content type, got %q", ct)
			}

			var body result.Result[string]
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body.Success != test.expectedSuccess {
				t.Errorf("expected success %v, got %v", test.expectedSuccess, body.Success)
			}

			if body.Message != test.expectedMessage {
				t.Errorf("expected message %q, got %q", test.expectedMessage, body.Message)
			}

			if body.Data != test.expectedData {
				t.Errorf("expected data %q, got %q", test.expectedData, body.Data)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"Device 1"}`},
		{name: "malformed", body: `{"name":`, wantErr: true},
		{name: "trailing document", body: `{"name":"a"}{"name":"b"}`, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var dst struct {
				Name string `json:"name"`
			}

			err := DecodeJSON(w, r, &dst)
			if tt.wantErr {
				if !result.IsKind(err, result.KindValidationError) {
					t.Fatalf("expected a validation error, got %v", err)
				}
				return
			}

			if err != nil || dst.Name != "Device 1" {
				t.Fatalf("unexpected decode result %q, %v", dst.Name, err)
			}
		})
	}
}
