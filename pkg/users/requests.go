// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import "strings"

type CreateUserRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

func (r *CreateUserRequest) normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

type ChangePasswordRequest struct {
	Password        string `json:"password" validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type RoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type StatusRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// ResetToken is handed to the administrator, who passes it on to the user.
type ResetToken struct {
	Token string `json:"token"`
}
