// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/inventory-service/internal/http/types"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/internal/validation"
	"github.com/canonical/inventory-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/users", a.listUsers)
	mux.Post("/api/v0/users", a.createUser)
	mux.Post("/api/v0/users/{id}/roles", a.addToRole)
	mux.Delete("/api/v0/users/{id}/roles/{role}", a.removeFromRole)
	mux.Put("/api/v0/users/{id}/status", a.setStatus)
	mux.Put("/api/v0/users/{id}/password", a.changePassword)
	mux.Post("/api/v0/users/{id}/recovery", a.recovery)
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.listUsers")
	defer span.End()

	requesterID, _ := authentication.GetUserID(ctx)
	users, err := a.service.ListUsers(ctx, requesterID)

	types.WriteResult(w, users, err, "Users loaded successfully.")
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.createUser")
	defer span.End()

	req := new(CreateUserRequest)
	if err := types.DecodeJSON(w, r, req); err != nil {
		types.WriteError(w, err)
		return
	}

	requesterID, _ := authentication.GetUserID(ctx)
	id, err := a.service.CreateUser(ctx, requesterID, req)

	types.WriteResult(w, id, err, "User created successfully.")
}

func (a *API) addToRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.addToRole")
	defer span.End()

	req := new(RoleRequest)
	if err := types.DecodeJSON(w, r, req); err != nil {
		types.WriteError(w, err)
		return
	}

	if err := validation.Struct(a.validate, req); err != nil {
		types.WriteError(w, err)
		return
	}

	requesterID, _ := authentication.GetUserID(ctx)
	err := a.service.AddToRole(ctx, requesterID, chi.URLParam(r, "id"), req.Role)

	types.WriteResult(w, err == nil, err, "Role added successfully.")
}

func (a *API) removeFromRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.removeFromRole")
	defer span.End()

	requesterID, _ := authentication.GetUserID(ctx)
	err := a.service.RemoveFromRole(ctx, requesterID, chi.URLParam(r, "id"), chi.URLParam(r, "role"))

	types.WriteResult(w, err == nil, err, "Role removed successfully.")
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.setStatus")
	defer span.End()

	req := new(StatusRequest)
	if err := types.DecodeJSON(w, r, req); err != nil {
		types.WriteError(w, err)
		return
	}

	if err := validation.Struct(a.validate, req); err != nil {
		types.WriteError(w, err)
		return
	}

	requesterID, _ := authentication.GetUserID(ctx)
	userID := chi.URLParam(r, "id")

	if *req.Enabled {
		err := a.service.EnableUser(ctx, requesterID, userID)
		types.WriteResult(w, err == nil, err, "User enabled successfully.")
		return
	}

	err := a.service.DisableUser(ctx, requesterID, userID)
	types.WriteResult(w, err == nil, err, "User disabled successfully.")
}

func (a *API) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.changePassword")
	defer span.End()

	req := new(ChangePasswordRequest)
	if err := types.DecodeJSON(w, r, req); err != nil {
		types.WriteError(w, err)
		return
	}

	requesterID, _ := authentication.GetUserID(ctx)
	err := a.service.ChangePassword(ctx, requesterID, chi.URLParam(r, "id"), req)

	types.WriteResult(w, err == nil, err, "Password changed successfully.")
}

func (a *API) recovery(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.recovery")
	defer span.End()

	requesterID, _ := authentication.GetUserID(ctx)
	token, err := a.service.GeneratePasswordResetToken(ctx, requesterID, chi.URLParam(r, "id"))

	var data *ResetToken
	if err == nil {
		data = &ResetToken{Token: token}
	}

	types.WriteResult(w, data, err, "Password reset token generated successfully.")
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validation.NewValidator()
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
