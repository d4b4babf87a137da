// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"strings"

	"github.com/canonical/inventory-service/internal/types"
	"github.com/canonical/inventory-service/internal/validation"
)

type CreateDeviceRequest struct {
	Name           string           `json:"name" validate:"min=3,max=100"`
	IPAddress      *string          `json:"ip_address,omitempty" validate:"omitempty,max=50"`
	Type           types.DeviceType `json:"type" validate:"device_type"`
	OrganizationID string           `json:"organization_id" validate:"required"`
}

func (r *CreateDeviceRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.IPAddress = validation.Optional(r.IPAddress)
}

// UpdateDeviceRequest is a partial update, absent fields are left unchanged.
type UpdateDeviceRequest struct {
	Name      *string           `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	IPAddress *string           `json:"ip_address,omitempty" validate:"omitempty,max=50"`
	Type      *types.DeviceType `json:"type,omitempty" validate:"omitempty,device_type"`
}

func (r *UpdateDeviceRequest) normalize() {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
	}
	r.IPAddress = validation.Optional(r.IPAddress)
}

func (r *UpdateDeviceRequest) Patch() types.DevicePatch {
	return types.DevicePatch{Name: r.Name, IPAddress: r.IPAddress, Type: r.Type}
}

type CreateConnectionRequest struct {
	SourceDeviceID       string               `json:"source_device_id" validate:"required"`
	SourceInterface      *string              `json:"source_interface,omitempty" validate:"omitempty,max=50"`
	DestinationDeviceID  string               `json:"destination_device_id" validate:"required"`
	DestinationInterface *string              `json:"destination_interface,omitempty" validate:"omitempty,max=50"`
	Type                 types.ConnectionType `json:"type" validate:"connection_type"`
	Speed                *string              `json:"speed,omitempty" validate:"omitempty,max=50"`
	OrganizationID       string               `json:"organization_id" validate:"required"`
}

func (r *CreateConnectionRequest) normalize() {
	r.SourceInterface = validation.Optional(r.SourceInterface)
	r.DestinationInterface = validation.Optional(r.DestinationInterface)
	r.Speed = validation.Optional(r.Speed)
}

// UpdateConnectionRequest is a partial update, the connection never changes organization.
type UpdateConnectionRequest struct {
	SourceDeviceID       *string               `json:"source_device_id,omitempty" validate:"omitempty,min=1"`
	DestinationDeviceID  *string               `json:"destination_device_id,omitempty" validate:"omitempty,min=1"`
	SourceInterface      *string               `json:"source_interface,omitempty" validate:"omitempty,max=50"`
	DestinationInterface *string               `json:"destination_interface,omitempty" validate:"omitempty,max=50"`
	Type                 *types.ConnectionType `json:"type,omitempty" validate:"omitempty,connection_type"`
	Speed                *string               `json:"speed,omitempty" validate:"omitempty,max=50"`
}

func (r *UpdateConnectionRequest) normalize() {
	r.SourceInterface = validation.Optional(r.SourceInterface)
	r.DestinationInterface = validation.Optional(r.DestinationInterface)
	r.Speed = validation.Optional(r.Speed)
}

func (r *UpdateConnectionRequest) Patch() types.ConnectionPatch {
	return types.ConnectionPatch{
		SourceDeviceID:       r.SourceDeviceID,
		DestinationDeviceID:  r.DestinationDeviceID,
		SourceInterface:      r.SourceInterface,
		DestinationInterface: r.DestinationInterface,
		Type:                 r.Type,
		Speed:                r.Speed,
	}
}
