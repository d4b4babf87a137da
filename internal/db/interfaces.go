// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

type DBClientInterface interface {
	TxRunner
	Statement(context.Context) sq.StatementBuilderType
	TxStatement(context.Context) (TxInterface, sq.StatementBuilderType, error)
	BeginTx(context.Context) (context.Context, TxInterface, error)
	Ping(context.Context) error
	Close()
}

// TxRunner runs fn as one unit of work, the memory store implements it as a passthrough.
type TxRunner interface {
	WithTx(context.Context, func(context.Context) error) error
}

type TxInterface interface {
	Commit() error
	Rollback() error
	sq.BaseRunner
}
