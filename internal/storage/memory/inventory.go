// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/canonical/inventory-service/internal/storage"
	"github.com/canonical/inventory-service/internal/types"
)

func (s *Storage) CreateDevice(_ context.Context, d *types.Device) (*types.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.organizations[d.OrganizationID]; !ok {
		return nil, fmt.Errorf("organization %s: %w", d.OrganizationID, storage.ErrForeignKeyViolation)
	}

	if s.deviceNameTaken(d.OrganizationID, d.Name, "") {
		return nil, fmt.Errorf("device %q: %w", d.Name, storage.ErrDuplicateKey)
	}

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate device ID: %w", err)
	}

	created := types.Device{
		ID:             id,
		Name:           d.Name,
		IPAddress:      cloneString(d.IPAddress),
		Type:           d.Type,
		OrganizationID: d.OrganizationID,
		CreatedAt:      s.now(),
	}
	s.devices[id] = created

	out := created
	out.IPAddress = cloneString(created.IPAddress)

	return &out, nil
}

func (s *Storage) GetDeviceByID(_ context.Context, id string) (*types.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.devices[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	d.IPAddress = cloneString(d.IPAddress)
	return &d, nil
}

func (s *Storage) FindDeviceByName(_ context.Context, organizationID, name string) (*types.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.devices {
		if d.OrganizationID == organizationID && sameName(d.Name, name) {
			d.IPAddress = cloneString(d.IPAddress)
			return &d, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (s *Storage) UpdateDevice(_ context.Context, d *types.Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.devices[d.ID]
	if !ok {
		return storage.ErrNotFound
	}

	if s.deviceNameTaken(current.OrganizationID, d.Name, d.ID) {
		return fmt.Errorf("device %q: %w", d.Name, storage.ErrDuplicateKey)
	}

	current.Name = d.Name
	current.IPAddress = cloneString(d.IPAddress)
	current.Type = d.Type
	s.devices[d.ID] = current

	return nil
}

func (s *Storage) DeleteDevice(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.devices[id]; !ok {
		return storage.ErrNotFound
	}

	for _, c := range s.connections {
		if c.SourceDeviceID == id || c.DestinationDeviceID == id {
			return fmt.Errorf("device %s referenced by connection %s: %w", id, c.ID, storage.ErrForeignKeyViolation)
		}
	}

	delete(s.devices, id)

	return nil
}

func (s *Storage) ListDevices(_ context.Context, scope types.Scope) ([]*types.DeviceSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	devices := make([]*types.DeviceSummary, 0)
	for _, d := range s.devices {
		if !scope.Includes(d.OrganizationID) {
			continue
		}

		devices = append(devices, &types.DeviceSummary{
			ID:               d.ID,
			Name:             d.Name,
			IPAddress:        cloneString(d.IPAddress),
			Type:             d.Type,
			OrganizationID:   d.OrganizationID,
			OrganizationName: s.organizations[d.OrganizationID].Name,
		})
	}

	sort.Slice(devices, func(i, j int) bool {
		if devices[i].OrganizationName != devices[j].OrganizationName {
			return devices[i].OrganizationName < devices[j].OrganizationName
		}
		return strings.ToLower(devices[i].Name) < strings.ToLower(devices[j].Name)
	})

	return devices, nil
}

func (s *Storage) CreateConnection(_ context.Context, c *types.Connection) (*types.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkConnection(c); err != nil {
		return nil, err
	}

	if _, ok := s.organizations[c.OrganizationID]; !ok {
		return nil, fmt.Errorf("organization %s: %w", c.OrganizationID, storage.ErrForeignKeyViolation)
	}

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate connection ID: %w", err)
	}

	created := cloneConnection(*c)
	created.ID = id
	created.CreatedAt = s.now()
	s.connections[id] = created

	out := cloneConnection(created)
	return &out, nil
}

func (s *Storage) GetConnectionByID(_ context.Context, id string) (*types.Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.connections[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	out := cloneConnection(c)
	return &out, nil
}

func (s *Storage) UpdateConnection(_ context.Context, c *types.Connection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.connections[c.ID]
	if !ok {
		return storage.ErrNotFound
	}

	if err := s.checkConnection(c); err != nil {
		return err
	}

	updated := cloneConnection(*c)
	updated.OrganizationID = current.OrganizationID
	updated.CreatedAt = current.CreatedAt
	s.connections[c.ID] = updated

	return nil
}

func (s *Storage) DeleteConnection(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.connections[id]; !ok {
		return storage.ErrNotFound
	}

	delete(s.connections, id)

	return nil
}

func (s *Storage) ListConnections(_ context.Context, scope types.Scope) ([]*types.ConnectionSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	connections := make([]types.Connection, 0)
	for _, c := range s.connections {
		if scope.Includes(c.OrganizationID) {
			connections = append(connections, c)
		}
	}

	sort.Slice(connections, func(i, j int) bool {
		if !connections[i].CreatedAt.Equal(connections[j].CreatedAt) {
			return connections[i].CreatedAt.Before(connections[j].CreatedAt)
		}
		return connections[i].ID < connections[j].ID
	})

	summaries := make([]*types.ConnectionSummary, 0, len(connections))
	for _, c := range connections {
		src := s.devices[c.SourceDeviceID]
		dst := s.devices[c.DestinationDeviceID]

		summaries = append(summaries, &types.ConnectionSummary{
			ID:                    c.ID,
			SourceDeviceID:        c.SourceDeviceID,
			SourceDeviceName:      src.Name,
			SourceDeviceType:      src.Type,
			SourceInterface:       cloneString(c.SourceInterface),
			DestinationDeviceID:   c.DestinationDeviceID,
			DestinationDeviceName: dst.Name,
			DestinationDeviceType: dst.Type,
			DestinationInterface:  cloneString(c.DestinationInterface),
			Type:                  c.Type,
			Speed:                 cloneString(c.Speed),
			OrganizationID:        c.OrganizationID,
		})
	}

	return summaries, nil
}

// checkConnection mirrors the foreign keys and the self loop check of the schema.
func (s *Storage) checkConnection(c *types.Connection) error {
	if c.SourceDeviceID == c.DestinationDeviceID {
		return fmt.Errorf("connection from %s to itself: %w", c.SourceDeviceID, storage.ErrCheckViolation)
	}

	for _, id := range []string{c.SourceDeviceID, c.DestinationDeviceID} {
		if _, ok := s.devices[id]; !ok {
			return fmt.Errorf("device %s: %w", id, storage.ErrForeignKeyViolation)
		}
	}

	return nil
}

func (s *Storage) deviceNameTaken(organizationID, name, exceptID string) bool {
	for _, d := range s.devices {
		if d.ID != exceptID && d.OrganizationID == organizationID && sameName(d.Name, name) {
			return true
		}
	}

	return false
}

func cloneConnection(c types.Connection) types.Connection {
	c.SourceInterface = cloneString(c.SourceInterface)
	c.DestinationInterface = cloneString(c.DestinationInterface)
	c.Speed = cloneString(c.Speed)

	return c
}
