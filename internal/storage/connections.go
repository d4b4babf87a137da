// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/inventory-service/internal/types"
)

var connectionColumns = []string{
	"id",
	"source_device_id",
	"source_interface",
	"destination_device_id",
	"destination_interface",
	"type",
	"speed",
	"organization_id",
	"created_at",
}

func scanConnection(row sq.RowScanner, c *types.Connection) error {
	return row.Scan(
		&c.ID,
		&c.SourceDeviceID,
		&c.SourceInterface,
		&c.DestinationDeviceID,
		&c.DestinationInterface,
		&c.Type,
		&c.Speed,
		&c.OrganizationID,
		&c.CreatedAt,
	)
}

func (s *Storage) CreateConnection(ctx context.Context, c *types.Connection) (*types.Connection, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateConnection")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate connection ID: %w", err)
	}

	var created types.Connection
	err = scanConnection(
		s.statement(ctx).
			Insert("connections").
			Columns(
				"id",
				"source_device_id",
				"source_interface",
				"destination_device_id",
				"destination_interface",
				"type",
				"speed",
				"organization_id",
			).
			Values(
				id,
				c.SourceDeviceID,
				c.SourceInterface,
				c.DestinationDeviceID,
				c.DestinationInterface,
				string(c.Type),
				c.Speed,
				c.OrganizationID,
			).
			Suffix("RETURNING id, source_device_id, source_interface, destination_device_id, destination_interface, type, speed, organization_id, created_at").
			QueryRowContext(ctx),
		&created,
	)

	if err != nil {
		return nil, mapError(err, "failed to insert connection")
	}

	return &created, nil
}

func (s *Storage) GetConnectionByID(ctx context.Context, id string) (*types.Connection, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetConnectionByID")
	defer span.End()

	if !validID(id) {
		return nil, ErrNotFound
	}

	var c types.Connection
	err := scanConnection(
		s.statement(ctx).
			Select(connectionColumns...).
			From("connections").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
		&c,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, mapError(err, "failed to get connection")
	}

	return &c, nil
}

// UpdateConnection writes every mutable field of c, the organization is kept as stored.
func (s *Storage) UpdateConnection(ctx context.Context, c *types.Connection) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateConnection")
	defer span.End()

	res, err := s.statement(ctx).
		Update("connections").
		SetMap(sq.Eq{
			"source_device_id":      c.SourceDeviceID,
			"source_interface":      c.SourceInterface,
			"destination_device_id": c.DestinationDeviceID,
			"destination_interface": c.DestinationInterface,
			"type":                  string(c.Type),
			"speed":                 c.Speed,
		}).
		Where(sq.Eq{"id": c.ID}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "failed to update connection")
	}

	return expectAffected(res)
}

func (s *Storage) DeleteConnection(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteConnection")
	defer span.End()

	if !validID(id) {
		return ErrNotFound
	}

	res, err := s.statement(ctx).
		Delete("connections").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "failed to delete connection")
	}

	return expectAffected(res)
}

func (s *Storage) ListConnections(ctx context.Context, scope types.Scope) ([]*types.ConnectionSummary, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListConnections")
	defer span.End()

	rows, err := s.statement(ctx).
		Select(
			"c.id",
			"c.source_device_id",
			"src.name",
			"src.type",
			"c.source_interface",
			"c.destination_device_id",
			"dst.name",
			"dst.type",
			"c.destination_interface",
			"c.type",
			"c.speed",
			"c.organization_id",
		).
		From("connections c").
		Join("devices src ON src.id = c.source_device_id").
		Join("devices dst ON dst.id = c.destination_device_id").
		Where(scopeFilter("c.organization_id", scope)).
		OrderBy("c.created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	defer rows.Close()

	connections := make([]*types.ConnectionSummary, 0)
	for rows.Next() {
		var c types.ConnectionSummary
		err := rows.Scan(
			&c.ID,
			&c.SourceDeviceID,
			&c.SourceDeviceName,
			&c.SourceDeviceType,
			&c.SourceInterface,
			&c.DestinationDeviceID,
			&c.DestinationDeviceName,
			&c.DestinationDeviceType,
			&c.DestinationInterface,
			&c.Type,
			&c.Speed,
			&c.OrganizationID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan connection: %w", err)
		}
		connections = append(connections, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return connections, nil
}
