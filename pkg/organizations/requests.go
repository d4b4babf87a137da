// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import "strings"

type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"min=3,max=100"`
}

func (r *CreateOrganizationRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type RenameOrganizationRequest struct {
	Name string `json:"name" validate:"min=3,max=100"`
}

func (r *RenameOrganizationRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// OrganizationStatusRequest toggles the soft lock of an organization.
// Enabled is a pointer so an empty body is rejected instead of deactivating.
type OrganizationStatusRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type MemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

func (r *MemberRequest) normalize() {
	r.UserID = strings.TrimSpace(r.UserID)
}

type SelectOrganizationRequest struct {
	OrganizationID string `json:"organization_id" validate:"required"`
}
