// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"context"

	"github.com/canonical/inventory-service/internal/types"
)

type ServiceInterface interface {
	CreateDevice(ctx context.Context, requesterID string, req *CreateDeviceRequest) (string, error)
	UpdateDevice(ctx context.Context, requesterID, deviceID string, req *UpdateDeviceRequest) error
	DeleteDevice(ctx context.Context, requesterID, deviceID string) error
	ListDevices(ctx context.Context, requesterID, organizationID string) ([]*types.DeviceSummary, error)

	CreateConnection(ctx context.Context, requesterID string, req *CreateConnectionRequest) (string, error)
	UpdateConnection(ctx context.Context, requesterID, connectionID string, req *UpdateConnectionRequest) error
	DeleteConnection(ctx context.Context, requesterID, connectionID string) error
	ListConnections(ctx context.Context, requesterID, organizationID string) ([]*types.ConnectionSummary, error)
}

type StorageInterface interface {
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizationIDsByUserID(ctx context.Context, userID string) ([]string, error)

	CreateDevice(ctx context.Context, d *types.Device) (*types.Device, error)
	GetDeviceByID(ctx context.Context, id string) (*types.Device, error)
	FindDeviceByName(ctx context.Context, organizationID, name string) (*types.Device, error)
	UpdateDevice(ctx context.Context, d *types.Device) error
	DeleteDevice(ctx context.Context, id string) error
	ListDevices(ctx context.Context, scope types.Scope) ([]*types.DeviceSummary, error)

	CreateConnection(ctx context.Context, c *types.Connection) (*types.Connection, error)
	GetConnectionByID(ctx context.Context, id string) (*types.Connection, error)
	UpdateConnection(ctx context.Context, c *types.Connection) error
	DeleteConnection(ctx context.Context, id string) error
	ListConnections(ctx context.Context, scope types.Scope) ([]*types.ConnectionSummary, error)
}

type IdentityInterface interface {
	FindByID(ctx context.Context, id string) (*types.Identity, error)
}
