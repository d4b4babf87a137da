// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/pkg/authentication"
)

func TestHTTPMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		expectedID  string
		expectFound bool
	}{
		{name: "header set", header: "user-123", expectedID: "user-123", expectFound: true},
		{name: "header missing", header: "", expectedID: "", expectFound: false},
	}

	logger := logging.NewNoopLogger()
	m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var gotID string
			var gotFound bool

			handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, gotFound = authentication.GetUserID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v0/devices", nil)
			if test.header != "" {
				req.Header.Set(HeaderName, test.header)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if gotID != test.expectedID || gotFound != test.expectFound {
				t.Errorf("expected (%q, %v), got (%q, %v)", test.expectedID, test.expectFound, gotID, gotFound)
			}
		})
	}
}
