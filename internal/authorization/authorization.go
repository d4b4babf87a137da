// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

// Authorizer mirrors membership and role facts into OpenFGA.
type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := *v0AuthzModel.GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) AssignOrganizationMember(ctx context.Context, organizationId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignOrganizationMember")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), MEMBER_RELATION, OrganizationTuple(organizationId))
}

func (a *Authorizer) RemoveOrganizationMember(ctx context.Context, organizationId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveOrganizationMember")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userId), MEMBER_RELATION, OrganizationTuple(organizationId))
}

func (a *Authorizer) AssignSystemAdministrator(ctx context.Context, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignSystemAdministrator")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), ADMINISTRATOR_RELATION, PlatformTuple(GlobalPlatform))
}

func (a *Authorizer) RemoveSystemAdministrator(ctx context.Context, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveSystemAdministrator")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userId), ADMINISTRATOR_RELATION, PlatformTuple(GlobalPlatform))
}

func (a *Authorizer) LinkOrganizationToPlatform(ctx context.Context, organizationId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.LinkOrganizationToPlatform")
	defer span.End()

	return a.client.WriteTuple(ctx, PlatformTuple(GlobalPlatform), PLATFORM_RELATION, OrganizationTuple(organizationId))
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
