// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canonical/inventory-service/internal/authorization"
	"github.com/canonical/inventory-service/internal/identity"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/openfga"
	"github.com/canonical/inventory-service/internal/storage/memory"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/pkg/authentication"
	"github.com/canonical/inventory-service/pkg/inventory"
	"github.com/canonical/inventory-service/pkg/organizations"
	"github.com/canonical/inventory-service/pkg/users"
	"github.com/canonical/inventory-service/pkg/webhooks"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type server struct {
	t       *testing.T
	handler http.Handler
	admin   string
}

func newServer(t *testing.T, opts Options) *server {
	t.Helper()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("inventory-service", logger)

	store := memory.NewStorage()
	directory := identity.NewMemoryProvider()
	authz := authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger)

	userService := users.NewService(directory, store, authz, tracer, monitor, logger)
	require.NoError(t, userService.Bootstrap(context.Background(), "admin@example.com", "Admin123!"))

	admin, err := directory.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)

	orgService := organizations.NewService(store, directory, authz, tracer, monitor, logger)

	services := Services{
		Inventory:     inventory.NewService(store, directory, tracer, monitor, logger),
		Organizations: orgService,
		Sessions:      organizations.NewStateRegistry(orgService, logger),
		Users:         userService,
		Webhooks:      webhooks.NewService(store, directory, tracer, monitor, logger),
	}

	if opts.Tx == nil {
		opts.Tx = store
	}

	return &server{
		t:       t,
		handler: NewRouter(services, opts, tracer, monitor, logger),
		admin:   admin.ID,
	}
}

func (s *server) do(method, path, userID string, body any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(identity.HeaderName, userID)
	}

	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)

	var env envelope
	if rr.Header().Get("Content-Type") == "application/json" {
		_ = json.Unmarshal(rr.Body.Bytes(), &env)
	}

	return rr, env
}

func (s *server) create(path string, body any) string {
	s.t.Helper()

	rr, env := s.do(http.MethodPost, path, s.admin, body)
	require.Equal(s.t, http.StatusOK, rr.Code, rr.Body.String())
	require.True(s.t, env.Success)

	var id string
	require.NoError(s.t, json.Unmarshal(env.Data, &id))
	require.NotEmpty(s.t, id)

	return id
}

func TestRouterServesInventoryAndTopology(t *testing.T) {
	s := newServer(t, Options{})

	orgID := s.create("/api/v0/organizations", map[string]any{"name": "Headquarters"})
	modem := s.create("/api/v0/devices", map[string]any{"name": "edge-modem", "type": "Modem", "organization_id": orgID})
	router := s.create("/api/v0/devices", map[string]any{"name": "core-router", "type": "Router", "organization_id": orgID})
	s.create("/api/v0/connections", map[string]any{
		"source_device_id":      modem,
		"destination_device_id": router,
		"type":                  "Fiber",
		"speed":                 "1G",
		"organization_id":       orgID,
	})

	rr, env := s.do(http.MethodGet, "/api/v0/devices?organization_id="+orgID, s.admin, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var devices []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &devices))
	require.Len(t, devices, 2)

	rr, env = s.do(http.MethodGet, "/api/v0/topology?organization_id="+orgID, s.admin, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var export struct {
		Elements []struct {
			Group string `json:"group"`
		} `json:"elements"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &export))
	require.Len(t, export.Elements, 3)

	rr, _ = s.do(http.MethodGet, "/api/v0/topology?format=svg&organization_id="+orgID, s.admin, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "image/svg+xml", rr.Header().Get("Content-Type"))
}

func TestRouterRejectsUnknownRequester(t *testing.T) {
	s := newServer(t, Options{})

	rr, env := s.do(http.MethodPost, "/api/v0/organizations", "", map[string]any{"name": "Headquarters"})

	require.Equal(t, http.StatusForbidden, rr.Code)
	require.False(t, env.Success)
	require.NotEmpty(t, env.Message)
}

func TestRouterBearerAuthentication(t *testing.T) {
	s := newServer(t, Options{Verifier: authentication.NewNoopVerifier()})

	rr, _ := s.do(http.MethodGet, "/api/v0/organizations", s.admin, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/organizations", nil)
	req.Header.Set("Authorization", "Bearer "+s.admin)

	ok := httptest.NewRecorder()
	s.handler.ServeHTTP(ok, req)
	require.Equal(t, http.StatusOK, ok.Code)
}

func TestRouterPublicEndpoints(t *testing.T) {
	s := newServer(t, Options{WebhookAPIKey: "secret"})

	rr, _ := s.do(http.MethodGet, "/api/v0/status", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr, _ = s.do(http.MethodGet, "/api/v0/ready", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr, _ = s.do(http.MethodGet, "/api/v0/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr, _ = s.do(http.MethodPost, "/api/v0/webhooks/token", "", map[string]any{})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouterCORSPreflight(t *testing.T) {
	s := newServer(t, Options{CORSAllowedOrigins: []string{"https://inventory.example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/v0/devices", nil)
	req.Header.Set("Origin", "https://inventory.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)

	require.Equal(t, "https://inventory.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
}
