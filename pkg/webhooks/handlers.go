// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
)

type API struct {
	service ServiceInterface
	apiKey  string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewAPI builds the webhook endpoints, a non empty apiKey must be sent by Hydra
// as a bearer token.
func NewAPI(service ServiceInterface, apiKey string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		apiKey:  apiKey,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/token", a.tokenHook)
}

func (a *API) tokenHook(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.tokenHook")
	defer span.End()

	if !a.authorized(r) {
		a.logger.Security().AuthzFailure("hydra", "token hook")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	req := new(oauth2.TokenHookRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.logger.Errorf("failed to decode token hook request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := a.service.HandleTokenHook(ctx, req)
	if err != nil {
		a.logger.Errorf("token hook failed: %v", err)
		http.Error(w, err.Error(), statusOf(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

func (a *API) authorized(r *http.Request) bool {
	if a.apiKey == "" {
		return true
	}

	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(a.apiKey)) == 1
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrMissingSubject):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnknownSubject), errors.Is(err, ErrLockedOut):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
