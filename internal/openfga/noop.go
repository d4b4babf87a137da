// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	fga "github.com/openfga/go-sdk"

	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
)

// NoOpClient is used when authorization is disabled, writes are dropped and any model is accepted.
type NoOpClient struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *NoOpClient) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	return true, nil
}

func (c *NoOpClient) WriteTuple(ctx context.Context, user, relation, object string) error {
	_, span := c.tracer.Start(ctx, "openfga.NoOpClient.WriteTuple")
	defer span.End()

	return nil
}

func (c *NoOpClient) DeleteTuple(ctx context.Context, user, relation, object string) error {
	_, span := c.tracer.Start(ctx, "openfga.NoOpClient.DeleteTuple")
	defer span.End()

	return nil
}

func NewNoopClient(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *NoOpClient {
	c := new(NoOpClient)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
