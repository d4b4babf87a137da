// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/inventory-service/internal/types"
)

var deviceColumns = []string{"id", "name", "ip_address", "type", "organization_id", "created_at"}

func (s *Storage) CreateDevice(ctx context.Context, d *types.Device) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDevice")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate device ID: %w", err)
	}

	var created types.Device
	err = s.statement(ctx).
		Insert("devices").
		Columns("id", "name", "ip_address", "type", "organization_id").
		Values(id, d.Name, d.IPAddress, string(d.Type), d.OrganizationID).
		Suffix("RETURNING id, name, ip_address, type, organization_id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.IPAddress, &created.Type, &created.OrganizationID, &created.CreatedAt)

	if err != nil {
		return nil, mapError(err, "failed to insert device")
	}

	return &created, nil
}

func (s *Storage) GetDeviceByID(ctx context.Context, id string) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDeviceByID")
	defer span.End()

	if !validID(id) {
		return nil, ErrNotFound
	}

	return s.getDevice(ctx, sq.Eq{"id": id})
}

// FindDeviceByName looks a device up by name within one organization, ignoring case.
func (s *Storage) FindDeviceByName(ctx context.Context, organizationID, name string) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindDeviceByName")
	defer span.End()

	if !validID(organizationID) {
		return nil, ErrNotFound
	}

	return s.getDevice(ctx, sq.And{
		sq.Eq{"organization_id": organizationID},
		sq.Expr("lower(name) = lower(?)", name),
	})
}

func (s *Storage) getDevice(ctx context.Context, pred sq.Sqlizer) (*types.Device, error) {
	var d types.Device
	err := s.statement(ctx).
		Select(deviceColumns...).
		From("devices").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&d.ID, &d.Name, &d.IPAddress, &d.Type, &d.OrganizationID, &d.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, mapError(err, "failed to get device")
	}

	return &d, nil
}

// UpdateDevice writes the mutable fields of d, the owning organization never changes.
func (s *Storage) UpdateDevice(ctx context.Context, d *types.Device) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateDevice")
	defer span.End()

	res, err := s.statement(ctx).
		Update("devices").
		SetMap(sq.Eq{
			"name":       d.Name,
			"ip_address": d.IPAddress,
			"type":       string(d.Type),
		}).
		Where(sq.Eq{"id": d.ID}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "failed to update device")
	}

	return expectAffected(res)
}

// DeleteDevice fails with ErrForeignKeyViolation while a connection still references the device.
func (s *Storage) DeleteDevice(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteDevice")
	defer span.End()

	if !validID(id) {
		return ErrNotFound
	}

	res, err := s.statement(ctx).
		Delete("devices").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "failed to delete device")
	}

	return expectAffected(res)
}

func (s *Storage) ListDevices(ctx context.Context, scope types.Scope) ([]*types.DeviceSummary, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDevices")
	defer span.End()

	rows, err := s.statement(ctx).
		Select("d.id", "d.name", "d.ip_address", "d.type", "d.organization_id", "o.name").
		From("devices d").
		Join("organizations o ON o.id = d.organization_id").
		Where(scopeFilter("d.organization_id", scope)).
		OrderBy("o.name", "d.name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	devices := make([]*types.DeviceSummary, 0)
	for rows.Next() {
		var d types.DeviceSummary
		if err := rows.Scan(&d.ID, &d.Name, &d.IPAddress, &d.Type, &d.OrganizationID, &d.OrganizationName); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return devices, nil
}
