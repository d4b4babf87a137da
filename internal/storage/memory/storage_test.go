// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canonical/inventory-service/internal/storage"
	"github.com/canonical/inventory-service/internal/types"
)

func strPtr(s string) *string { return &s }

func TestOrganizationNamesAreCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()

	org, err := s.CreateOrganization(ctx, "Org 1")
	require.NoError(t, err)
	require.True(t, org.IsActive)

	_, err = s.CreateOrganization(ctx, "ORG 1")
	require.ErrorIs(t, err, storage.ErrDuplicateKey)

	found, err := s.FindOrganizationByName(ctx, "org 1")
	require.NoError(t, err)
	require.Equal(t, org.ID, found.ID)

	other, err := s.CreateOrganization(ctx, "Org 2")
	require.NoError(t, err)

	require.ErrorIs(t, s.RenameOrganization(ctx, other.ID, "oRg 1"), storage.ErrDuplicateKey)
	require.NoError(t, s.RenameOrganization(ctx, org.ID, "ORG 1"))
	require.ErrorIs(t, s.RenameOrganization(ctx, "missing", "Org 3"), storage.ErrNotFound)
}

func TestMemberships(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()

	org, err := s.CreateOrganization(ctx, "Org 1")
	require.NoError(t, err)
	inactive, err := s.CreateOrganization(ctx, "Org 2")
	require.NoError(t, err)
	require.NoError(t, s.SetOrganizationStatus(ctx, inactive.ID, false))

	_, err = s.AddMember(ctx, org.ID, "user-1")
	require.NoError(t, err)
	_, err = s.AddMember(ctx, inactive.ID, "user-1")
	require.NoError(t, err)

	_, err = s.AddMember(ctx, org.ID, "user-1")
	require.ErrorIs(t, err, storage.ErrDuplicateKey)

	_, err = s.AddMember(ctx, "missing", "user-1")
	require.ErrorIs(t, err, storage.ErrForeignKeyViolation)

	ids, err := s.ListOrganizationIDsByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{org.ID, inactive.ID}, ids)

	active, err := s.ListActiveOrganizationsByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, org.ID, active[0].ID)

	summaries, err := s.ListOrganizationSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.Equal(t, 1, summaries[0].MemberCount)

	ok, err := s.IsMember(ctx, org.ID, "user-1")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.RemoveMember(ctx, org.ID, "user-1"))
	require.ErrorIs(t, s.RemoveMember(ctx, org.ID, "user-1"), storage.ErrNotFound)

	ids, err = s.ListOrganizationIDsByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, []string{inactive.ID}, ids)
}

func TestDevicesAndConnections(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()

	org1, err := s.CreateOrganization(ctx, "Org 1")
	require.NoError(t, err)
	org2, err := s.CreateOrganization(ctx, "Org 2")
	require.NoError(t, err)

	devA, err := s.CreateDevice(ctx, &types.Device{Name: "DevA", Type: types.DeviceTypeRouter, OrganizationID: org1.ID})
	require.NoError(t, err)
	require.Nil(t, devA.IPAddress)

	devB, err := s.CreateDevice(ctx, &types.Device{Name: "DevB", IPAddress: strPtr("10.0.0.2"), Type: types.DeviceTypeSwitch, OrganizationID: org1.ID})
	require.NoError(t, err)

	_, err = s.CreateDevice(ctx, &types.Device{Name: "deva", Type: types.DeviceTypePC, OrganizationID: org1.ID})
	require.ErrorIs(t, err, storage.ErrDuplicateKey)

	_, err = s.CreateDevice(ctx, &types.Device{Name: "DevA", Type: types.DeviceTypePC, OrganizationID: org2.ID})
	require.NoError(t, err)

	conn, err := s.CreateConnection(ctx, &types.Connection{
		SourceDeviceID:      devA.ID,
		DestinationDeviceID: devB.ID,
		Type:                types.ConnectionTypeFiber,
		Speed:               strPtr("10 Gbps"),
		OrganizationID:      org1.ID,
	})
	require.NoError(t, err)

	_, err = s.CreateConnection(ctx, &types.Connection{SourceDeviceID: devA.ID, DestinationDeviceID: devA.ID, OrganizationID: org1.ID})
	require.ErrorIs(t, err, storage.ErrCheckViolation)

	require.ErrorIs(t, s.DeleteDevice(ctx, devA.ID), storage.ErrForeignKeyViolation)

	connections, err := s.ListConnections(ctx, types.Scope{OrganizationIDs: []string{org1.ID}})
	require.NoError(t, err)
	require.Len(t, connections, 1)
	require.Equal(t, "DevA", connections[0].SourceDeviceName)
	require.Equal(t, types.DeviceTypeSwitch, connections[0].DestinationDeviceType)

	devices, err := s.ListDevices(ctx, types.Scope{All: true})
	require.NoError(t, err)
	require.Len(t, devices, 3)

	devices, err = s.ListDevices(ctx, types.Scope{OrganizationIDs: []string{org2.ID}})
	require.NoError(t, err)
	require.Len(t, devices, 1)
	require.Equal(t, "Org 2", devices[0].OrganizationName)

	require.NoError(t, s.DeleteConnection(ctx, conn.ID))
	require.NoError(t, s.DeleteDevice(ctx, devA.ID))
	require.ErrorIs(t, s.DeleteDevice(ctx, devA.ID), storage.ErrNotFound)
}

func TestReturnedValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()

	org, err := s.CreateOrganization(ctx, "Org 1")
	require.NoError(t, err)

	created, err := s.CreateDevice(ctx, &types.Device{Name: "DevA", IPAddress: strPtr("10.0.0.1"), Type: types.DeviceTypeRouter, OrganizationID: org.ID})
	require.NoError(t, err)

	*created.IPAddress = "tampered"
	created.Name = "tampered"

	stored, err := s.GetDeviceByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "DevA", stored.Name)
	require.Equal(t, "10.0.0.1", *stored.IPAddress)
}
