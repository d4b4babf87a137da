// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/inventory-service/internal/http/types"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/devices", a.listDevices)
	mux.Post("/api/v0/devices", a.createDevice)
	mux.Patch("/api/v0/devices/{id}", a.updateDevice)
	mux.Delete("/api/v0/devices/{id}", a.deleteDevice)

	mux.Get("/api/v0/connections", a.listConnections)
	mux.Post("/api/v0/connections", a.createConnection)
	mux.Patch("/api/v0/connections/{id}", a.updateConnection)
	mux.Delete("/api/v0/connections/{id}", a.deleteConnection)
}

func (a *API) listDevices(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.listDevices")
	defer span.End()

	requesterID, _ := authentication.GetUserID(ctx)
	devices, err := a.service.ListDevices(ctx, requesterID, r.URL.Query().Get("organization_id"))

	types.WriteResult(w, devices, err, "Devices listed successfully.")
}

func (a *API) createDevice(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.createDevice")
	defer span.End()

	req := new(CreateDeviceRequest)
	if err := types.DecodeJSON(w, r, req); err != nil {
		types.WriteError(w, err)
		return
	}

	requesterID, _ := authentication.GetUserID(ctx)
	id, err := a.service.CreateDevice(ctx, requesterID, req)

	types.WriteResult(w, id, err, "Device created successfully.")
}

func (a *API) updateDevice(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.updateDevice")
	defer span.End()

	req := new(UpdateDeviceRequest)
	if err := types.DecodeJSON(w, r, req); err != nil {
		types.WriteError(w, err)
		return
	}

	requesterID, _ := authentication.GetUserID(ctx)
	err := a.service.UpdateDevice(ctx, requesterID, chi.URLParam(r, "id"), req)

	types.WriteResult(w, err == nil, err, "Device updated successfully.")
}

func (a *API) deleteDevice(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.deleteDevice")
	defer span.End()

	requesterID, _ := authentication.GetUserID(ctx)
	err := a.service.DeleteDevice(ctx, requesterID, chi.URLParam(r, "id"))

	types.WriteResult(w, err == nil, err, "Device removed successfully.")
}

func (a *API) listConnections(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.listConnections")
	defer span.End()

	requesterID, _ := authentication.GetUserID(ctx)
	connections, err := a.service.ListConnections(ctx, requesterID, r.URL.Query().Get("organization_id"))

	types.WriteResult(w, connections, err, "Connections listed successfully.")
}

func (a *API) createConnection(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.createConnection")
	defer span.End()

	req := new(CreateConnectionRequest)
	if err := types.DecodeJSON(w, r, req); err != nil {
		types.WriteError(w, err)
		return
	}

	requesterID, _ := authentication.GetUserID(ctx)
	id, err := a.service.CreateConnection(ctx, requesterID, req)

	types.WriteResult(w, id, err, "Connection created successfully.")
}

func (a *API) updateConnection(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.updateConnection")
	defer span.End()

	req := new(UpdateConnectionRequest)
	if err := types.DecodeJSON(w, r, req); err != nil {
		types.WriteError(w, err)
		return
	}

	requesterID, _ := authentication.GetUserID(ctx)
	err := a.service.UpdateConnection(ctx, requesterID, chi.URLParam(r, "id"), req)

	types.WriteResult(w, err == nil, err, "Connection updated successfully.")
}

func (a *API) deleteConnection(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.deleteConnection")
	defer span.End()

	requesterID, _ := authentication.GetUserID(ctx)
	err := a.service.DeleteConnection(ctx, requesterID, chi.URLParam(r, "id"))

	types.WriteResult(w, err == nil, err, "Connection removed successfully.")
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
