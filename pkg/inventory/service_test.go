// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/inventory-service/internal/identity"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/result"
	"github.com/canonical/inventory-service/internal/storage"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package inventory -destination ./mock_inventory.go -source=./interfaces.go

type fixture struct {
	storage  *MockStorageInterface
	identity *MockIdentityInterface
	svc      *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	logger := logging.NewNoopLogger()

	f := new(fixture)
	f.storage = NewMockStorageInterface(ctrl)
	f.identity = NewMockIdentityInterface(ctrl)
	f.svc = NewService(f.storage, f.identity, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("inventory", logger), logger)

	return f
}

func (f *fixture) asAdmin(id string) {
	f.identity.EXPECT().FindByID(gomock.Any(), id).Return(&types.Identity{ID: id, Roles: []string{types.SystemAdministratorRole}}, nil)
	f.storage.EXPECT().ListOrganizationIDsByUserID(gomock.Any(), id).Return(nil, nil)
}

func (f *fixture) asMember(id string, organizationIDs ...string) {
	f.identity.EXPECT().FindByID(gomock.Any(), id).Return(&types.Identity{ID: id}, nil)
	f.storage.EXPECT().ListOrganizationIDsByUserID(gomock.Any(), id).Return(organizationIDs, nil)
}

func (f *fixture) asLocked(id string) {
	f.identity.EXPECT().FindByID(gomock.Any(), id).Return(&types.Identity{ID: id, Roles: []string{types.SystemAdministratorRole}, LockedOut: true}, nil)
	f.storage.EXPECT().ListOrganizationIDsByUserID(gomock.Any(), id).Return(nil, nil)
}

func (f *fixture) asUnknown(id string) {
	f.identity.EXPECT().FindByID(gomock.Any(), id).Return(nil, identity.ErrUserNotFound)
}

func expectKind(t *testing.T, err error, kind *result.Kind) {
	t.Helper()

	if kind == nil {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}

	if err == nil {
		t.Fatalf("expected %s, got no error", kind)
	}

	if got := result.KindOf(err); got != *kind {
		t.Fatalf("expected %s, got %s (%v)", kind, got, err)
	}
}

func kind(k result.Kind) *result.Kind {
	return &k
}

func strPtr(s string) *string {
	return &s
}

var errStore = errors.New("connection reset by peer")

func activeOrg(id string) *types.Organization {
	return &types.Organization{ID: id, Name: "Org " + id, IsActive: true}
}

func TestService_CreateDevice(t *testing.T) {
	valid := func() *CreateDeviceRequest {
		return &CreateDeviceRequest{Name: "Device 1", Type: types.DeviceTypeRouter, OrganizationID: "org-1"}
	}

	tests := []struct {
		name       string
		req        *CreateDeviceRequest
		setupMocks func(*fixture)
		expected   *result.Kind
	}{
		{
			name:       "name too short",
			req:        &CreateDeviceRequest{Name: "ab", Type: types.DeviceTypeRouter, OrganizationID: "org-1"},
			setupMocks: func(*fixture) {},
			expected:   kind(result.KindValidationError),
		},
		{
			name:       "ip address too long",
			req:        &CreateDeviceRequest{Name: "Device 1", IPAddress: strPtr("192.168.100.100/24 192.168.100.100/24 192.168.100.100"), Type: types.DeviceTypeRouter, OrganizationID: "org-1"},
			setupMocks: func(*fixture) {},
			expected:   kind(result.KindValidationError),
		},
		{
			name:       "unknown requester",
			req:        valid(),
			setupMocks: func(f *fixture) { f.asUnknown("u1") },
			expected:   kind(result.KindAccessDenied),
		},
		{
			name:       "locked out requester",
			req:        valid(),
			setupMocks: func(f *fixture) { f.asLocked("u1") },
			expected:   kind(result.KindAccessDenied),
		},
		{
			name:       "requester outside the organization",
			req:        valid(),
			setupMocks: func(f *fixture) { f.asMember("u1", "org-2") },
			expected:   kind(result.KindAccessDenied),
		},
		{
			name: "organization not found",
			req:  valid(),
			setupMocks: func(f *fixture) {
				f.asAdmin("u1")
				f.storage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(nil, storage.ErrNotFound)
			},
			expected: kind(result.KindNotFound),
		},
		{
			name: "inactive organization",
			req:  valid(),
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-1")
				f.storage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(&types.Organization{ID: "org-1", IsActive: false}, nil)
			},
			expected: kind(result.KindAccessDenied),
		},
		{
			name: "name already taken",
			req:  valid(),
			setupMocks: func(f *fixture) {
				f.asAdmin("u1")
				f.storage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(activeOrg("org-1"), nil)
				f.storage.EXPECT().FindDeviceByName(gomock.Any(), "org-1", "Device 1").Return(&types.Device{ID: "d0"}, nil)
			},
			expected: kind(result.KindConflict),
		},
		{
			name: "unique index wins the race",
			req:  valid(),
			setupMocks: func(f *fixture) {
				f.asAdmin("u1")
				f.storage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(activeOrg("org-1"), nil)
				f.storage.EXPECT().FindDeviceByName(gomock.Any(), "org-1", "Device 1").Return(nil, storage.ErrNotFound)
				f.storage.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expected: kind(result.KindConflict),
		},
		{
			name: "store failure",
			req:  valid(),
			setupMocks: func(f *fixture) {
				f.asAdmin("u1")
				f.storage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(activeOrg("org-1"), nil)
				f.storage.EXPECT().FindDeviceByName(gomock.Any(), "org-1", "Device 1").Return(nil, storage.ErrNotFound)
				f.storage.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).Return(nil, errStore)
			},
			expected: kind(result.KindInternalError),
		},
		{
			name: "member creates a device",
			req:  &CreateDeviceRequest{Name: "  Device 1 ", IPAddress: strPtr("  "), Type: types.DeviceTypeRouter, OrganizationID: "org-1"},
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-1")
				f.storage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(activeOrg("org-1"), nil)
				f.storage.EXPECT().FindDeviceByName(gomock.Any(), "org-1", "Device 1").Return(nil, storage.ErrNotFound)
				f.storage.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, d *types.Device) (*types.Device, error) {
						if d.Name != "Device 1" || d.IPAddress != nil {
							t.Errorf("expected a normalized device, got %+v", d)
						}
						created := *d
						created.ID = "d1"
						return &created, nil
					},
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMocks(f)

			id, err := f.svc.CreateDevice(context.Background(), "u1", tt.req)
			expectKind(t, err, tt.expected)

			if tt.expected == nil && id != "d1" {
				t.Errorf("expected id d1, got %q", id)
			}
		})
	}
}

func TestService_UpdateDevice(t *testing.T) {
	existing := func() *types.Device {
		return &types.Device{ID: "d1", Name: "Device 1", Type: types.DeviceTypeRouter, OrganizationID: "org-1"}
	}

	tests := []struct {
		name       string
		req        *UpdateDeviceRequest
		setupMocks func(*fixture)
		expected   *result.Kind
	}{
		{
			name:       "name too long",
			req:        &UpdateDeviceRequest{Name: strPtr(strings.Repeat("a", 101))},
			setupMocks: func(*fixture) {},
			expected:   kind(result.KindValidationError),
		},
		{
			name: "device not found",
			req:  &UpdateDeviceRequest{Name: strPtr("Device 2")},
			setupMocks: func(f *fixture) {
				f.asAdmin("u1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(nil, storage.ErrNotFound)
			},
			expected: kind(result.KindNotFound),
		},
		{
			name: "malformed device id",
			setupMocks: func(f *fixture) {
				f.asAdmin("u1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(nil, fmt.Errorf("failed to get device: %w", storage.ErrNotFound))
			},
			expected: kind(result.KindNotFound),
		},
		{
			name: "requester outside the device organization",
			req:  &UpdateDeviceRequest{Name: strPtr("Device 2")},
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-2")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(existing(), nil)
			},
			expected: kind(result.KindAccessDenied),
		},
		{
			name: "new name taken by another device",
			req:  &UpdateDeviceRequest{Name: strPtr("Device 2")},
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(existing(), nil)
				f.storage.EXPECT().FindDeviceByName(gomock.Any(), "org-1", "Device 2").Return(&types.Device{ID: "d2"}, nil)
			},
			expected: kind(result.KindConflict),
		},
		{
			name: "case only rename skips the uniqueness check",
			req:  &UpdateDeviceRequest{Name: strPtr("DEVICE 1")},
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(existing(), nil)
				f.storage.EXPECT().UpdateDevice(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "partial update keeps untouched fields",
			req:  &UpdateDeviceRequest{IPAddress: strPtr(" 10.0.0.1 ")},
			setupMocks: func(f *fixture) {
				f.asAdmin("u1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(existing(), nil)
				f.storage.EXPECT().UpdateDevice(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, d *types.Device) error {
						if d.Name != "Device 1" || d.Type != types.DeviceTypeRouter || d.IPAddress == nil || *d.IPAddress != "10.0.0.1" {
							t.Errorf("unexpected device %+v", d)
						}
						return nil
					},
				)
			},
		},
		{
			name: "unique index wins the race",
			req:  &UpdateDeviceRequest{Name: strPtr("Device 2")},
			setupMocks: func(f *fixture) {
				f.asAdmin("u1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(existing(), nil)
				f.storage.EXPECT().FindDeviceByName(gomock.Any(), "org-1", "Device 2").Return(nil, storage.ErrNotFound)
				f.storage.EXPECT().UpdateDevice(gomock.Any(), gomock.Any()).Return(storage.ErrDuplicateKey)
			},
			expected: kind(result.KindConflict),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMocks(f)

			expectKind(t, f.svc.UpdateDevice(context.Background(), "u1", "d1", tt.req), tt.expected)
		})
	}
}

func TestService_DeleteDevice(t *testing.T) {
	device := &types.Device{ID: "d1", Name: "Device 1", OrganizationID: "org-1"}

	tests := []struct {
		name       string
		setupMocks func(*fixture)
		expected   *result.Kind
	}{
		{
			name: "device not found",
			setupMocks: func(f *fixture) {
				f.asAdmin("u1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(nil, storage.ErrNotFound)
			},
			expected: kind(result.KindNotFound),
		},
		{
			name: "requester outside the device organization",
			setupMocks: func(f *fixture) {
				f.asMember("u1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(device, nil)
			},
			expected: kind(result.KindAccessDenied),
		},
		{
			name: "device still referenced",
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(device, nil)
				f.storage.EXPECT().DeleteDevice(gomock.Any(), "d1").Return(storage.ErrForeignKeyViolation)
			},
			expected: kind(result.KindConflict),
		},
		{
			name: "store failure",
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(device, nil)
				f.storage.EXPECT().DeleteDevice(gomock.Any(), "d1").Return(errStore)
			},
			expected: kind(result.KindInternalError),
		},
		{
			name: "member removes a device",
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(device, nil)
				f.storage.EXPECT().DeleteDevice(gomock.Any(), "d1").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMocks(f)

			expectKind(t, f.svc.DeleteDevice(context.Background(), "u1", "d1"), tt.expected)
		})
	}
}

func TestService_ListDevices(t *testing.T) {
	tests := []struct {
		name          string
		filter        string
		setupMocks    func(*fixture)
		expectedScope types.Scope
		expected      *result.Kind
	}{
		{
			name:       "locked out requester",
			setupMocks: func(f *fixture) { f.asLocked("u1") },
			expected:   kind(result.KindAccessDenied),
		},
		{
			name:          "administrator sees every organization",
			setupMocks:    func(f *fixture) { f.asAdmin("u1") },
			expectedScope: types.Scope{All: true},
		},
		{
			name:          "administrator narrowed to one organization",
			filter:        "org-9",
			setupMocks:    func(f *fixture) { f.asAdmin("u1") },
			expectedScope: types.Scope{OrganizationIDs: []string{"org-9"}},
		},
		{
			name:          "member sees its organizations",
			setupMocks:    func(f *fixture) { f.asMember("u1", "org-1", "org-2") },
			expectedScope: types.Scope{OrganizationIDs: []string{"org-1", "org-2"}},
		},
		{
			name:          "member filter on a foreign organization never widens",
			filter:        "org-3",
			setupMocks:    func(f *fixture) { f.asMember("u1", "org-1") },
			expectedScope: types.Scope{OrganizationIDs: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMocks(f)

			if tt.expected == nil {
				f.storage.EXPECT().ListDevices(gomock.Any(), tt.expectedScope).Return([]*types.DeviceSummary{}, nil)
			}

			_, err := f.svc.ListDevices(context.Background(), "u1", tt.filter)
			expectKind(t, err, tt.expected)
		})
	}
}

func TestService_CreateConnection(t *testing.T) {
	valid := func() *CreateConnectionRequest {
		return &CreateConnectionRequest{SourceDeviceID: "d1", DestinationDeviceID: "d2", Type: types.ConnectionTypeEthernet, OrganizationID: "org-1"}
	}

	device := func(id, organizationID string) *types.Device {
		return &types.Device{ID: id, Name: "Device " + id, OrganizationID: organizationID}
	}

	tests := []struct {
		name       string
		req        *CreateConnectionRequest
		setupMocks func(*fixture)
		expected   *result.Kind
	}{
		{
			name:       "self loop is rejected before anything is looked up",
			req:        &CreateConnectionRequest{SourceDeviceID: "d1", DestinationDeviceID: "d1", Type: types.ConnectionTypeEthernet, OrganizationID: "org-1"},
			setupMocks: func(*fixture) {},
			expected:   kind(result.KindInvalidOperation),
		},
		{
			name:       "unknown connection type",
			req:        &CreateConnectionRequest{SourceDeviceID: "d1", DestinationDeviceID: "d2", Type: "Carrier pigeon", OrganizationID: "org-1"},
			setupMocks: func(*fixture) {},
			expected:   kind(result.KindValidationError),
		},
		{
			name: "missing endpoint",
			req:  valid(),
			setupMocks: func(f *fixture) {
				f.asAdmin("u1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(device("d1", "org-1"), nil)
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d2").Return(nil, storage.ErrNotFound)
			},
			expected: kind(result.KindNotFound),
		},
		{
			name: "endpoints in different organizations",
			req:  valid(),
			setupMocks: func(f *fixture) {
				f.asAdmin("u1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(device("d1", "org-1"), nil)
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d2").Return(device("d2", "org-2"), nil)
			},
			expected: kind(result.KindInvalidOperation),
		},
		{
			name: "requester outside the organization",
			req:  valid(),
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-2")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(device("d1", "org-1"), nil)
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d2").Return(device("d2", "org-1"), nil)
			},
			expected: kind(result.KindAccessDenied),
		},
		{
			name: "endpoint removed concurrently",
			req:  valid(),
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(device("d1", "org-1"), nil)
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d2").Return(device("d2", "org-1"), nil)
				f.storage.EXPECT().CreateConnection(gomock.Any(), gomock.Any()).Return(nil, storage.ErrForeignKeyViolation)
			},
			expected: kind(result.KindNotFound),
		},
		{
			name: "member connects two devices",
			req:  valid(),
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-1")
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(device("d1", "org-1"), nil)
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d2").Return(device("d2", "org-1"), nil)
				f.storage.EXPECT().CreateConnection(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *types.Connection) (*types.Connection, error) {
						created := *c
						created.ID = "c1"
						return &created, nil
					},
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMocks(f)

			id, err := f.svc.CreateConnection(context.Background(), "u1", tt.req)
			expectKind(t, err, tt.expected)

			if tt.expected == nil && id != "c1" {
				t.Errorf("expected id c1, got %q", id)
			}
		})
	}
}

func TestService_UpdateConnection(t *testing.T) {
	existing := func() *types.Connection {
		return &types.Connection{ID: "c1", SourceDeviceID: "d1", DestinationDeviceID: "d2", Type: types.ConnectionTypeEthernet, OrganizationID: "org-1"}
	}

	tests := []struct {
		name       string
		req        *UpdateConnectionRequest
		setupMocks func(*fixture)
		expected   *result.Kind
	}{
		{
			name: "connection not found",
			req:  &UpdateConnectionRequest{Speed: strPtr("1G")},
			setupMocks: func(f *fixture) {
				f.asAdmin("u1")
				f.storage.EXPECT().GetConnectionByID(gomock.Any(), "c1").Return(nil, storage.ErrNotFound)
			},
			expected: kind(result.KindNotFound),
		},
		{
			name: "requester outside the organization",
			req:  &UpdateConnectionRequest{Speed: strPtr("1G")},
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-2")
				f.storage.EXPECT().GetConnectionByID(gomock.Any(), "c1").Return(existing(), nil)
			},
			expected: kind(result.KindAccessDenied),
		},
		{
			name: "moving one endpoint onto the other",
			req:  &UpdateConnectionRequest{DestinationDeviceID: strPtr("d1")},
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-1")
				f.storage.EXPECT().GetConnectionByID(gomock.Any(), "c1").Return(existing(), nil)
			},
			expected: kind(result.KindInvalidOperation),
		},
		{
			name: "new endpoint in another organization",
			req:  &UpdateConnectionRequest{DestinationDeviceID: strPtr("d9")},
			setupMocks: func(f *fixture) {
				f.asAdmin("u1")
				f.storage.EXPECT().GetConnectionByID(gomock.Any(), "c1").Return(existing(), nil)
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d1").Return(&types.Device{ID: "d1", OrganizationID: "org-1"}, nil)
				f.storage.EXPECT().GetDeviceByID(gomock.Any(), "d9").Return(&types.Device{ID: "d9", OrganizationID: "org-2"}, nil)
			},
			expected: kind(result.KindInvalidOperation),
		},
		{
			name: "attribute update leaves endpoints alone",
			req:  &UpdateConnectionRequest{Speed: strPtr(" 10G "), Type: func() *types.ConnectionType { t := types.ConnectionTypeFiber; return &t }()},
			setupMocks: func(f *fixture) {
				f.asMember("u1", "org-1")
				f.storage.EXPECT().GetConnectionByID(gomock.Any(), "c1").Return(existing(), nil)
				f.storage.EXPECT().UpdateConnection(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *types.Connection) error {
						if c.SourceDeviceID != "d1" || c.DestinationDeviceID != "d2" || c.Type != types.ConnectionTypeFiber || *c.Speed != "10G" {
							t.Errorf("unexpected connection %+v", c)
						}
						return nil
					},
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMocks(f)

			expectKind(t, f.svc.UpdateConnection(context.Background(), "u1", "c1", tt.req), tt.expected)
		})
	}
}

func TestService_DeleteConnection(t *testing.T) {
	f := newFixture(t)
	f.asMember("u1", "org-1")
	f.storage.EXPECT().GetConnectionByID(gomock.Any(), "c1").Return(&types.Connection{ID: "c1", OrganizationID: "org-1"}, nil)
	f.storage.EXPECT().DeleteConnection(gomock.Any(), "c1").Return(storage.ErrNotFound)

	expectKind(t, f.svc.DeleteConnection(context.Background(), "u1", "c1"), kind(result.KindNotFound))
}
