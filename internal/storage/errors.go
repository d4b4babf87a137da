// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return hasCode(err, pgerrcode.UniqueViolation)
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation)
}

// IsCheckViolation checks if the error is a PostgreSQL check constraint violation.
func IsCheckViolation(err error) bool {
	return hasCode(err, pgerrcode.CheckViolation)
}

// IsInvalidID checks if the error is a PostgreSQL rejection of a malformed uuid.
func IsInvalidID(err error) bool {
	return hasCode(err, pgerrcode.InvalidTextRepresentation)
}

func hasCode(err error, codes ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	for _, code := range codes {
		if pgErr.Code == code {
			return true
		}
	}

	return false
}

// mapError turns constraint violations into sentinels, keeping the constraint name for logs.
// A malformed id cannot name a stored row and is reported as ErrNotFound.
func mapError(err error, context string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", context, err)
	}

	switch {
	case IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %s: %w", context, pgErr.ConstraintName, ErrDuplicateKey)
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %s: %w", context, pgErr.ConstraintName, ErrForeignKeyViolation)
	case IsCheckViolation(err):
		return fmt.Errorf("%s: %s: %w", context, pgErr.ConstraintName, ErrCheckViolation)
	case IsInvalidID(err):
		return fmt.Errorf("%s: %w", context, ErrNotFound)
	}

	return fmt.Errorf("%s: postgres error [%s]: %w", context, pgErr.Code, err)
}
