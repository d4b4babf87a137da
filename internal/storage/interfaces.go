// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/inventory-service/internal/types"
)

type StorageInterface interface {
	OrganizationStorage
	MembershipStorage
	DeviceStorage
	ConnectionStorage
	WithTx(context.Context, func(context.Context) error) error
}

type OrganizationStorage interface {
	CreateOrganization(ctx context.Context, name string) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	FindOrganizationByName(ctx context.Context, name string) (*types.Organization, error)
	ListOrganizationSummaries(ctx context.Context) ([]*types.OrganizationSummary, error)
	ListActiveOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error)
	RenameOrganization(ctx context.Context, id, name string) error
	SetOrganizationStatus(ctx context.Context, id string, active bool) error
}

type MembershipStorage interface {
	AddMember(ctx context.Context, organizationID, userID string) (string, error)
	RemoveMember(ctx context.Context, organizationID, userID string) error
	IsMember(ctx context.Context, organizationID, userID string) (bool, error)
	ListMembers(ctx context.Context, organizationID string) ([]*types.Membership, error)
	ListOrganizationIDsByUserID(ctx context.Context, userID string) ([]string, error)
}

type DeviceStorage interface {
	CreateDevice(ctx context.Context, d *types.Device) (*types.Device, error)
	GetDeviceByID(ctx context.Context, id string) (*types.Device, error)
	FindDeviceByName(ctx context.Context, organizationID, name string) (*types.Device, error)
	UpdateDevice(ctx context.Context, d *types.Device) error
	DeleteDevice(ctx context.Context, id string) error
	ListDevices(ctx context.Context, scope types.Scope) ([]*types.DeviceSummary, error)
}

type ConnectionStorage interface {
	CreateConnection(ctx context.Context, c *types.Connection) (*types.Connection, error)
	GetConnectionByID(ctx context.Context, id string) (*types.Connection, error)
	UpdateConnection(ctx context.Context, c *types.Connection) error
	DeleteConnection(ctx context.Context, id string) error
	ListConnections(ctx context.Context, scope types.Scope) ([]*types.ConnectionSummary, error)
}
