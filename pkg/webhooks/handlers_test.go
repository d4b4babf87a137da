// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
)

func TestAPI_TokenHook(t *testing.T) {
	claims := func() *TokenHookResponse {
		resp := new(TokenHookResponse)
		resp.Session.IDToken = map[string]interface{}{OrganizationsClaim: []string{"org-1"}}
		resp.Session.AccessToken = map[string]interface{}{OrganizationsClaim: []string{"org-1"}}
		return resp
	}

	tests := []struct {
		name           string
		apiKey         string
		authorization  string
		body           []byte
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:           "success",
			body:           mustJSON(t, &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-1")}),
			setupMocks:     func(s *MockServiceInterface) { s.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(claims(), nil) },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid request body",
			body:           []byte("not-json"),
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "locked out subject",
			body:           mustJSON(t, &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-1")}),
			setupMocks:     func(s *MockServiceInterface) { s.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, ErrLockedOut) },
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "service error",
			body:           mustJSON(t, &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-1")}),
			setupMocks:     func(s *MockServiceInterface) { s.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")) },
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "missing api key",
			apiKey:         "secret",
			body:           mustJSON(t, &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-1")}),
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong api key",
			apiKey:         "secret",
			authorization:  "Bearer guess",
			body:           mustJSON(t, &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-1")}),
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "matching api key",
			apiKey:         "secret",
			authorization:  "Bearer secret",
			body:           mustJSON(t, &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-1")}),
			setupMocks:     func(s *MockServiceInterface) { s.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(claims(), nil) },
			expectedStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockServiceInterface(ctrl)
			test.setupMocks(service)

			logger := logging.NewNoopLogger()
			mux := chi.NewMux()
			NewAPI(service, test.apiKey, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("webhooks", logger), logger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/token", bytes.NewReader(test.body))
			if test.authorization != "" {
				req.Header.Set("Authorization", test.authorization)
			}
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			require.Equal(t, test.expectedStatus, rr.Code, rr.Body.String())

			if rr.Code == http.StatusOK {
				var resp TokenHookResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				require.Equal(t, []interface{}{"org-1"}, resp.Session.IDToken[OrganizationsClaim])
			}
		})
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return b
}
