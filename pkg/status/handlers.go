// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/inventory-service/internal/http/types"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/internal/version"
)

const checkTimeout = 2 * time.Second

// Check probes one dependency, a nil error means it is reachable.
type Check func(context.Context) error

type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Readiness struct {
	Ready      bool              `json:"ready"`
	Components map[string]string `json:"components"`
}

type API struct {
	checks map[string]Check

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	types.WriteJSON(w, http.StatusOK, Status{Status: "ok", Version: version.Version})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.version")
	defer span.End()

	types.WriteJSON(w, http.StatusOK, map[string]string{"version": version.Version})
}

// ready probes every dependency and publishes its availability as a gauge.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	names := make([]string, 0, len(a.checks))
	for name := range a.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	res := Readiness{Ready: true, Components: make(map[string]string, len(names))}

	for _, name := range names {
		cctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := a.checks[name](cctx)
		cancel()

		available := 1.0
		res.Components[name] = "ok"
		if err != nil {
			a.logger.Warnf("dependency %s is not available: %v", name, err)
			available = 0
			res.Components[name] = err.Error()
			res.Ready = false
		}

		if err := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available); err != nil {
			a.logger.Debugf("error when setting dependency availability: %s", err)
		}
	}

	code := http.StatusOK
	if !res.Ready {
		code = http.StatusServiceUnavailable
	}

	types.WriteJSON(w, code, res)
}

func NewAPI(checks map[string]Check, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.checks = checks
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
