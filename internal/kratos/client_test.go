// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/canonical/inventory-service/internal/identity"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/internal/types"
)

const identityJSON = `{
	"id": "user-1",
	"schema_id": "default",
	"schema_url": "http://kratos/schemas/default",
	"state": "active",
	"traits": {"email": "user@example.com"},
	"metadata_admin": {"roles": ["SystemAdministrator"]}
}`

type recordedRequest struct {
	method string
	path   string
	body   string
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Client, *[]recordedRequest) {
	t.Helper()

	var mu sync.Mutex
	requests := make([]recordedRequest, 0)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
		mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	logger := logging.NewNoopLogger()
	c := NewClient(server.URL, "1h", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	return c, &requests
}

func writeIdentity(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(identityJSON))
}

func TestFindByID(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/admin/identities/user-1" {
			writeIdentity(w)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"code": 404, "message": "not found"}}`))
	})

	user, err := c.FindByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Email != "user@example.com" || user.LockedOut {
		t.Errorf("unexpected identity %+v", user)
	}

	if !user.HasRole(types.SystemAdministratorRole) {
		t.Errorf("expected roles from metadata_admin, got %v", user.Roles)
	}

	if _, err := c.FindByID(context.Background(), "missing"); !errors.Is(err, identity.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSetLockoutPatchesState(t *testing.T) {
	c, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeIdentity(w)
	})

	if err := c.SetLockout(context.Background(), "user-1", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(*requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(*requests))
	}

	req := (*requests)[0]
	if req.method != http.MethodPatch || req.path != "/admin/identities/user-1" {
		t.Errorf("unexpected request %s %s", req.method, req.path)
	}

	var ops []map[string]interface{}
	if err := json.Unmarshal([]byte(req.body), &ops); err != nil {
		t.Fatalf("invalid patch body: %v", err)
	}

	if len(ops) != 1 || ops[0]["path"] != "/state" || ops[0]["value"] != "inactive" {
		t.Errorf("unexpected patch %v", ops)
	}
}

func TestRemoveFromRoleRewritesMetadata(t *testing.T) {
	c, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeIdentity(w)
	})

	if err := c.RemoveFromRole(context.Background(), "user-1", types.SystemAdministratorRole); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(*requests) != 2 {
		t.Fatalf("expected a read and a patch, got %d requests", len(*requests))
	}

	var ops []struct {
		Path  string `json:"path"`
		Value struct {
			Roles []string `json:"roles"`
		} `json:"value"`
	}
	if err := json.Unmarshal([]byte((*requests)[1].body), &ops); err != nil {
		t.Fatalf("invalid patch body: %v", err)
	}

	if len(ops) != 1 || ops[0].Path != "/metadata_admin" || len(ops[0].Value.Roles) != 0 {
		t.Errorf("unexpected patch %+v", ops)
	}
}

func TestUnknownRole(t *testing.T) {
	c, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeIdentity(w)
	})

	if err := c.AddToRole(context.Background(), "user-1", "Auditor"); !errors.Is(err, identity.ErrRoleNotFound) {
		t.Errorf("expected ErrRoleNotFound, got %v", err)
	}

	if len(*requests) != 0 {
		t.Errorf("expected no request for an unknown role")
	}

	exists, _ := c.RoleExists(context.Background(), types.SystemAdministratorRole)
	if !exists {
		t.Errorf("expected the administrator role to exist")
	}
}

func TestListUsersFollowsPages(t *testing.T) {
	page := func(id string) string {
		return `[{"id": "` + id + `", "schema_id": "default", "schema_url": "http://kratos/schemas/default", "state": "active", "traits": {"email": "` + id + `@example.com"}}]`
	}

	var tokens []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("page_token")
		tokens = append(tokens, token)

		w.Header().Set("Content-Type", "application/json")
		switch token {
		case "":
			w.Header().Set("Link", `<http://kratos/admin/identities?page_size=1000&page_token=first>; rel="first",<http://kratos/admin/identities?page_size=1000&page_token=second>; rel="next"`)
			_, _ = w.Write([]byte(page("user-1")))
		case "second":
			w.Header().Set("Link", `<http://kratos/admin/identities?page_size=1000&page_token=first>; rel="first"`)
			_, _ = w.Write([]byte(page("user-2")))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	users, err := c.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(users) != 2 || users[0].ID != "user-1" || users[1].ID != "user-2" {
		t.Errorf("expected both pages, got %+v", users)
	}

	if len(tokens) != 2 || tokens[0] != "" || tokens[1] != "second" {
		t.Errorf("unexpected page tokens %v", tokens)
	}
}
