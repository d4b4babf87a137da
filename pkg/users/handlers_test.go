// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
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

	NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("users", logger), logger).RegisterEndpoints(mux)

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
			name:   "list users",
			method: http.MethodGet,
			path:   "/api/v0/users",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListUsers(gomock.Any(), "u1").Return([]*types.UserSummary{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   "[]",
		},
		{
			name:   "create user",
			method: http.MethodPost,
			path:   "/api/v0/users",
			body:   `{"email":"a@example.com","password":"secret1","confirm_password":"secret1"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateUser(gomock.Any(), "u1", &CreateUserRequest{Email: "a@example.com", Password: "secret1", ConfirmPassword: "secret1"}).Return("u2", nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   `"u2"`,
		},
		{
			name:           "create user with malformed body",
			method:         http.MethodPost,
			path:           "/api/v0/users",
			body:           `{"email":`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "create user conflict",
			method: http.MethodPost,
			path:   "/api/v0/users",
			body:   `{"email":"a@example.com","password":"secret1","confirm_password":"secret1"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateUser(gomock.Any(), "u1", gomock.Any()).Return("", result.NewConflict("taken"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "add role",
			method: http.MethodPost,
			path:   "/api/v0/users/u2/roles",
			body:   `{"role":"SystemAdministrator"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().AddToRole(gomock.Any(), "u1", "u2", "SystemAdministrator").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   "true",
		},
		{
			name:           "add role without a role",
			method:         http.MethodPost,
			path:           "/api/v0/users/u2/roles",
			body:           `{}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "remove role not held",
			method: http.MethodDelete,
			path:   "/api/v0/users/u2/roles/SystemAdministrator",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().RemoveFromRole(gomock.Any(), "u1", "u2", "SystemAdministrator").Return(result.NewInvalidOperation("not held"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedData:   "false",
		},
		{
			name:   "disable user",
			method: http.MethodPut,
			path:   "/api/v0/users/u2/status",
			body:   `{"enabled":false}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DisableUser(gomock.Any(), "u1", "u2").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   "true",
		},
		{
			name:   "enable user",
			method: http.MethodPut,
			path:   "/api/v0/users/u2/status",
			body:   `{"enabled":true}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().EnableUser(gomock.Any(), "u1", "u2").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   "true",
		},
		{
			name:           "status without a flag",
			method:         http.MethodPut,
			path:           "/api/v0/users/u2/status",
			body:           `{}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "change password denied",
			method: http.MethodPut,
			path:   "/api/v0/users/u2/password",
			body:   `{"password":"secret1","confirm_password":"secret1"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ChangePassword(gomock.Any(), "u1", "u2", gomock.Any()).Return(result.NewAccessDenied("no"))
			},
			expectedStatus: http.StatusForbidden,
			expectedData:   "false",
		},
		{
			name:   "recovery token",
			method: http.MethodPost,
			path:   "/api/v0/users/u2/recovery",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GeneratePasswordResetToken(gomock.Any(), "u1", "u2").Return("tok", nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   `{"token":"tok"}`,
		},
		{
			name:   "recovery for unknown user",
			method: http.MethodPost,
			path:   "/api/v0/users/ghost/recovery",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GeneratePasswordResetToken(gomock.Any(), "u1", "ghost").Return("", result.NewNotFound("User not found."))
			},
			expectedStatus: http.StatusNotFound,
			expectedData:   "null",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockServiceInterface(ctrl)
			test.setupMocks(service)

			rr := httptest.NewRecorder()
			newRouter(service).ServeHTTP(rr, httptest.NewRequest(test.method, test.path, strings.NewReader(test.body)))

			require.Equal(t, test.expectedStatus, rr.Code)

			var e envelope
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&e))
			require.Equal(t, test.expectedStatus == http.StatusOK, e.Success)
			require.NotEmpty(t, e.Message)

			if test.expectedData != "" {
				require.JSONEq(t, test.expectedData, string(e.Data))
			}
		})
	}
}
