// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/inventory-service/internal/types"
)

func (s *Storage) AddMember(ctx context.Context, organizationID, userID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := newID()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.statement(ctx).
		Insert("memberships").
		Columns("id", "organization_id", "user_id").
		Values(id, organizationID, userID).
		ExecContext(ctx)

	if err != nil {
		return "", mapError(err, "failed to add member")
	}

	return id, nil
}

func (s *Storage) RemoveMember(ctx context.Context, organizationID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	if !validID(organizationID) {
		return ErrNotFound
	}

	res, err := s.statement(ctx).
		Delete("memberships").
		Where(sq.Eq{
			"organization_id": organizationID,
			"user_id":         userID,
		}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "failed to remove member")
	}

	return expectAffected(res)
}

func (s *Storage) IsMember(ctx context.Context, organizationID, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsMember")
	defer span.End()

	if !validID(organizationID) {
		return false, nil
	}

	var exists bool
	err := s.statement(ctx).
		Select("1").
		Prefix("SELECT EXISTS (").
		From("memberships").
		Where(sq.Eq{
			"organization_id": organizationID,
			"user_id":         userID,
		}).
		Suffix(")").
		QueryRowContext(ctx).
		Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}

	return exists, nil
}

func (s *Storage) ListMembers(ctx context.Context, organizationID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembers")
	defer span.End()

	if !validID(organizationID) {
		return []*types.Membership{}, nil
	}

	rows, err := s.statement(ctx).
		Select("id", "organization_id", "user_id", "created_at").
		From("memberships").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "failed to list members")
	}
	defer rows.Close()

	members := make([]*types.Membership, 0)
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) ListOrganizationIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizationIDsByUserID")
	defer span.End()

	rows, err := s.statement(ctx).
		Select("organization_id").
		From("memberships").
		Where(sq.Eq{"user_id": userID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

func expectAffected(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
