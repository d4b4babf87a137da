// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/inventory-service/internal/types"
)

var organizationColumns = []string{"id", "name", "is_active", "created_at"}

func (s *Storage) CreateOrganization(ctx context.Context, name string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	var o types.Organization
	err = s.statement(ctx).
		Insert("organizations").
		Columns("id", "name", "is_active").
		Values(id, name, true).
		Suffix("RETURNING id, name, is_active, created_at").
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.IsActive, &o.CreatedAt)

	if err != nil {
		return nil, mapError(err, "failed to insert organization")
	}

	return &o, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByID")
	defer span.End()

	if !validID(id) {
		return nil, ErrNotFound
	}

	return s.getOrganization(ctx, sq.Eq{"id": id})
}

// FindOrganizationByName looks the organization up ignoring case.
func (s *Storage) FindOrganizationByName(ctx context.Context, name string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindOrganizationByName")
	defer span.End()

	return s.getOrganization(ctx, sq.Expr("lower(name) = lower(?)", name))
}

func (s *Storage) getOrganization(ctx context.Context, pred sq.Sqlizer) (*types.Organization, error) {
	var o types.Organization
	err := s.statement(ctx).
		Select(organizationColumns...).
		From("organizations").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.IsActive, &o.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, mapError(err, "failed to get organization")
	}

	return &o, nil
}

// ListActiveOrganizationsByUserID returns the enabled organizations userID belongs to.
func (s *Storage) ListActiveOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveOrganizationsByUserID")
	defer span.End()

	return s.listOrganizations(ctx, s.statement(ctx).
		Select("o.id", "o.name", "o.is_active", "o.created_at").
		From("organizations o").
		Join("memberships m ON o.id = m.organization_id").
		Where(sq.Eq{"m.user_id": userID, "o.is_active": true}).
		OrderBy("o.name"))
}

func (s *Storage) listOrganizations(ctx context.Context, query sq.SelectBuilder) ([]*types.Organization, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	organizations := make([]*types.Organization, 0)
	for rows.Next() {
		var o types.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.IsActive, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		organizations = append(organizations, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return organizations, nil
}

func (s *Storage) ListOrganizationSummaries(ctx context.Context) ([]*types.OrganizationSummary, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizationSummaries")
	defer span.End()

	rows, err := s.statement(ctx).
		Select("o.id", "o.name", "o.is_active", "COUNT(m.id) AS member_count").
		From("organizations o").
		LeftJoin("memberships m ON o.id = m.organization_id").
		GroupBy("o.id", "o.name", "o.is_active").
		OrderBy("o.name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]*types.OrganizationSummary, 0)
	for rows.Next() {
		var o types.OrganizationSummary
		if err := rows.Scan(&o.ID, &o.Name, &o.IsActive, &o.MemberCount); err != nil {
			return nil, fmt.Errorf("failed to scan organization summary: %w", err)
		}
		summaries = append(summaries, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return summaries, nil
}

func (s *Storage) RenameOrganization(ctx context.Context, id, name string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RenameOrganization")
	defer span.End()

	return s.updateOrganization(ctx, id, sq.Eq{"name": name})
}

func (s *Storage) SetOrganizationStatus(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetOrganizationStatus")
	defer span.End()

	return s.updateOrganization(ctx, id, sq.Eq{"is_active": active})
}

func (s *Storage) updateOrganization(ctx context.Context, id string, values sq.Eq) error {
	res, err := s.statement(ctx).
		Update("organizations").
		SetMap(values).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "failed to update organization")
	}

	return expectAffected(res)
}
