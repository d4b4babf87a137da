// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package topology

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/inventory-service/internal/http/types"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/result"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/pkg/authentication"
)

const (
	FormatJSON = "json"
	FormatSVG  = "svg"

	msgUnknownFormat  = "Unknown format, expected json or svg."
	msgUnknownElement = "The element to focus is not part of the topology."
)

type API struct {
	inventory InventoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/topology", a.export)
}

func (a *API) export(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "topology.API.export")
	defer span.End()

	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatSVG {
		types.WriteError(w, result.NewValidationError(msgUnknownFormat))
		return
	}

	requesterID, _ := authentication.GetUserID(ctx)
	organizationID := q.Get("organization_id")

	devices, err := a.inventory.ListDevices(ctx, requesterID, organizationID)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	connections, err := a.inventory.ListConnections(ctx, requesterID, organizationID)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	graph := BuildGraph(devices, connections)

	svg := new(SVGRenderer)
	controller := NewController(func(string) (Renderer, error) { return svg, nil }, a.logger)
	defer controller.Destroy()

	if err := controller.Init("export", graph.Nodes, graph.Edges, nil); err != nil {
		types.WriteError(w, result.NewInternalError("", err))
		return
	}

	if focus := q.Get("focus"); focus != "" && !controller.Focus(focus) {
		types.WriteError(w, result.NewNotFound(msgUnknownElement))
		return
	}

	if format == FormatJSON {
		types.WriteResult(w, NewExport(controller.Scene()), nil, "Topology built successfully.")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)

	if _, err := svg.WriteTo(w); err != nil {
		a.logger.Errorf("failed to write topology svg: %v", err)
	}
}

func NewAPI(inventory InventoryInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.inventory = inventory
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
