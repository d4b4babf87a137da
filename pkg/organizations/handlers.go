// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/inventory-service/internal/http/types"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
	domain "github.com/canonical/inventory-service/internal/types"
	"github.com/canonical/inventory-service/internal/validation"
	"github.com/canonical/inventory-service/pkg/authentication"
)

// Selection is the organization selector of the requester's session.
type Selection struct {
	Current   *domain.OrganizationSummary   `json:"current"`
	Available []*domain.OrganizationSummary `json:"available"`
}

type API struct {
	service  ServiceInterface
	sessions *StateRegistry
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/organizations", a.listOrganizations)
	mux.Get("/api/v0/organizations/available", a.availableOrganizations)
	mux.Post("/api/v0/organizations", a.createOrganization)
	mux.Patch("/api/v0/organizations/{id}", a.renameOrganization)
	mux.Put("/api/v0/organizations/{id}/status", a.manageStatus)
	mux.Get("/api/v0/organizations/{id}/members", a.listMembers)
	mux.Post("/api/v0/organizations/{id}/members", a.addMember)
	mux.Delete("/api/v0/organizations/{id}/members/{userID}", a.removeMember)

	mux.Get("/api/v0/session/organization", a.getSelection)
	mux.Put("/api/v0/session/organization", a.setSelection)
}

func (a *API) listOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.listOrganizations")
	defer span.End()

	requesterID, _ := authentication.GetUserID(ctx)
	organizations, err := a.service.ListOrganizations(ctx, requesterID)

	types.WriteResult(w, organizations, err, "Organizations loaded successfully.")
}

func (a *API) availableOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.availableOrganizations")
	defer span.End()

	requesterID, _ := authentication.GetUserID(ctx)
	organizations, err := a.service.GetAvailableOrganizations(ctx, requesterID)

	types.WriteResult(w, organizations, err, "Organizations loaded successfully.")
}

func (a *API) createOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.createOrganization")
	defer span.End()

	req := new(CreateOrganizationRequest)
	if err := types.DecodeJSON(w, r, req); err != nil {
		types.WriteError(w, err)
		return
	}

	requesterID, _ := authentication.GetUserID(ctx)
	id, err := a.service.CreateOrganization(ctx, requesterID, req)
	a.notify(ctx, err)

	types.WriteResult(w, id, err, "Organization created successfully.")
}

func (a *API) renameOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.renameOrganization")
	defer span.End()

	req := new(RenameOrganizationRequest)
	if err := types.DecodeJSON(w, r, req); err != nil {
		types.WriteError(w, err)
		return
	}

	requesterID, _ := authentication.GetUserID(ctx)
	err := a.service.RenameOrganization(ctx, requesterID, chi.URLParam(r, "id"), req)
	a.notify(ctx, err)

	types.WriteResult(w, err == nil, err, "Organization renamed successfully.")
}

func (a *API) manageStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.manageStatus")
	defer span.End()

	req := new(OrganizationStatusRequest)
	if err := types.DecodeJSON(w, r, req); err != nil {
		types.WriteError(w, err)
		return
	}

	requesterID, _ := authentication.GetUserID(ctx)
	err := a.service.ManageOrganizationStatus(ctx, requesterID, chi.URLParam(r, "id"), req)
	a.notify(ctx, err)

	message := "Organization disabled successfully."
	if req.Enabled != nil && *req.Enabled {
		message = "Organization enabled successfully."
	}

	types.WriteResult(w, err == nil, err, message)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.listMembers")
	defer span.End()

	requesterID, _ := authentication.GetUserID(ctx)
	members, err := a.service.ListOrganizationMembers(ctx, requesterID, chi.URLParam(r, "id"))

	types.WriteResult(w, members, err, "Members loaded successfully.")
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.addMember")
	defer span.End()

	req := new(MemberRequest)
	if err := types.DecodeJSON(w, r, req); err != nil {
		types.WriteError(w, err)
		return
	}

	requesterID, _ := authentication.GetUserID(ctx)
	err := a.service.AddUserToOrganization(ctx, requesterID, chi.URLParam(r, "id"), req)
	a.notify(ctx, err)

	types.WriteResult(w, err == nil, err, "User added successfully.")
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.removeMember")
	defer span.End()

	requesterID, _ := authentication.GetUserID(ctx)
	err := a.service.RemoveUserFromOrganization(ctx, requesterID, chi.URLParam(r, "id"), chi.URLParam(r, "userID"))
	a.notify(ctx, err)

	types.WriteResult(w, err == nil, err, "User removed successfully.")
}

func (a *API) getSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.getSelection")
	defer span.End()

	state, err := a.session(ctx)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResult(w, selectionOf(state), nil, "Current organization loaded successfully.")
}

func (a *API) setSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.setSelection")
	defer span.End()

	req := new(SelectOrganizationRequest)
	if err := types.DecodeJSON(w, r, req); err != nil {
		types.WriteError(w, err)
		return
	}

	if err := validation.Struct(a.validate, req); err != nil {
		types.WriteError(w, err)
		return
	}

	state, err := a.session(ctx)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	if err := state.Select(req.OrganizationID); err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResult(w, selectionOf(state), nil, "Current organization changed successfully.")
}

// session returns the requester's selection state, loading it on first use.
func (a *API) session(ctx context.Context) (*State, error) {
	requesterID, _ := authentication.GetUserID(ctx)

	return a.sessions.Open(ctx, requesterID)
}

// notify lets every open session re-validate its selection after a successful mutation.
func (a *API) notify(ctx context.Context, err error) {
	if err == nil {
		a.sessions.Notify(ctx)
	}
}

func selectionOf(state *State) Selection {
	available := state.Available()
	if available == nil {
		available = []*domain.OrganizationSummary{}
	}

	return Selection{Current: state.Current(), Available: available}
}

func NewAPI(service ServiceInterface, sessions *StateRegistry, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.sessions = sessions
	a.validate = validation.NewValidator()
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
