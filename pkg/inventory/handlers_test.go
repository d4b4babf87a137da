// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/result"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/internal/types"
	"github.com/canonical/inventory-service/pkg/authentication"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newRouter(service ServiceInterface) *chi.Mux {
	logger := logging.NewNoopLogger()

	mux := chi.NewMux()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(authentication.WithUserID(r.Context(), "u1")))
		})
	})

	NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("inventory", logger), logger).RegisterEndpoints(mux)

	return mux
}

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedData   string
	}{
		{
			name:   "list devices filtered by organization",
			method: http.MethodGet,
			path:   "/api/v0/devices?organization_id=org-1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListDevices(gomock.Any(), "u1", "org-1").Return([]*types.DeviceSummary{{ID: "d1", Name: "Device 1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "create device",
			method: http.MethodPost,
			path:   "/api/v0/devices",
			body:   `{"name":"Device 1","type":"Router","organization_id":"org-1"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateDevice(gomock.Any(), "u1", &CreateDeviceRequest{Name: "Device 1", Type: types.DeviceTypeRouter, OrganizationID: "org-1"}).Return("d1", nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   `"d1"`,
		},
		{
			name:           "malformed body never reaches the service",
			method:         http.MethodPost,
			path:           "/api/v0/devices",
			body:           `{"name":`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "duplicate device name",
			method: http.MethodPost,
			path:   "/api/v0/devices",
			body:   `{"name":"Device 1","type":"Router","organization_id":"org-1"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateDevice(gomock.Any(), "u1", gomock.Any()).Return("", result.NewConflict(msgDeviceNameTaken))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "update device",
			method: http.MethodPatch,
			path:   "/api/v0/devices/d1",
			body:   `{"name":"Device 2"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateDevice(gomock.Any(), "u1", "d1", gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   `true`,
		},
		{
			name:   "delete device denied",
			method: http.MethodDelete,
			path:   "/api/v0/devices/d1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteDevice(gomock.Any(), "u1", "d1").Return(result.NewAccessDenied("Access denied."))
			},
			expectedStatus: http.StatusForbidden,
			expectedData:   `false`,
		},
		{
			name:   "list connections",
			method: http.MethodGet,
			path:   "/api/v0/connections",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListConnections(gomock.Any(), "u1", "").Return([]*types.ConnectionSummary{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   `[]`,
		},
		{
			name:   "create self loop",
			method: http.MethodPost,
			path:   "/api/v0/connections",
			body:   `{"source_device_id":"d1","destination_device_id":"d1","type":"Fiber","organization_id":"org-1"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateConnection(gomock.Any(), "u1", gomock.Any()).Return("", result.NewInvalidOperation(msgSelfLoop))
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "update connection",
			method: http.MethodPatch,
			path:   "/api/v0/connections/c1",
			body:   `{"speed":"1G"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateConnection(gomock.Any(), "u1", "c1", gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete missing connection",
			method: http.MethodDelete,
			path:   "/api/v0/connections/c1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteConnection(gomock.Any(), "u1", "c1").Return(result.NewNotFound(msgConnectionNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockServiceInterface(ctrl)
			tt.setupMocks(service)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			newRouter(service).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}

			var body envelope
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("expected an envelope: %v", err)
			}

			if body.Success != (tt.expectedStatus == http.StatusOK) {
				t.Errorf("unexpected success flag in %+v", body)
			}

			if body.Message == "" {
				t.Errorf("expected a message")
			}

			if tt.expectedData != "" && string(body.Data) != tt.expectedData {
				t.Errorf("expected data %s, got %s", tt.expectedData, string(body.Data))
			}
		})
	}
}
