// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"context"
	"errors"

	"github.com/canonical/inventory-service/internal/authorization"
	"github.com/canonical/inventory-service/internal/result"
	"github.com/canonical/inventory-service/internal/storage"
	"github.com/canonical/inventory-service/internal/types"
	"github.com/canonical/inventory-service/internal/validation"
)

const (
	msgConnectionNotFound = "Connection not found."
	msgEndpointsNotFound  = "One or both devices were not found."
	msgSelfLoop           = "A device cannot be connected to itself."
	msgCrossOrganization  = "Devices must belong to the same organization."
)

func (s *Service) CreateConnection(ctx context.Context, requesterID string, req *CreateConnectionRequest) (string, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.CreateConnection")
	defer span.End()

	const op = "CreateConnection"

	// rejected before anything else is looked up, whoever asks
	if req.SourceDeviceID != "" && req.SourceDeviceID == req.DestinationDeviceID {
		return "", s.guard.Fail(op, requesterID, result.NewInvalidOperation(msgSelfLoop))
	}

	req.normalize()
	if err := validation.Struct(s.validate, req); err != nil {
		return "", s.guard.Fail(op, requesterID, err)
	}

	requester, err := s.guard.Requester(ctx, op, requesterID)
	if err != nil {
		return "", err
	}

	if err := s.checkEndpoints(ctx, req.SourceDeviceID, req.DestinationDeviceID, req.OrganizationID); err != nil {
		return "", s.guard.Fail(op, requesterID, err)
	}

	if !authorization.CanMutateInOrganization(requester, req.OrganizationID) {
		return "", s.guard.Deny(op, requesterID, authorization.OrganizationTuple(req.OrganizationID),
			"Access denied: you are not allowed to manage connections in this organization.")
	}

	connection, err := s.storage.CreateConnection(ctx, &types.Connection{
		SourceDeviceID:       req.SourceDeviceID,
		SourceInterface:      req.SourceInterface,
		DestinationDeviceID:  req.DestinationDeviceID,
		DestinationInterface: req.DestinationInterface,
		Type:                 req.Type,
		Speed:                req.Speed,
		OrganizationID:       req.OrganizationID,
	})
	if err != nil {
		return "", s.guard.Fail(op, requesterID, connectionWriteError(err))
	}

	s.logger.Infof("connection %s created in organization %s by %s", connection.ID, connection.OrganizationID, requesterID)

	return connection.ID, nil
}

func (s *Service) UpdateConnection(ctx context.Context, requesterID, connectionID string, req *UpdateConnectionRequest) error {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.UpdateConnection")
	defer span.End()

	const op = "UpdateConnection"

	req.normalize()
	if err := validation.Struct(s.validate, req); err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	requester, err := s.guard.Requester(ctx, op, requesterID)
	if err != nil {
		return err
	}

	connection, err := s.connection(ctx, connectionID)
	if err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	if !authorization.CanMutateInOrganization(requester, connection.OrganizationID) {
		return s.guard.Deny(op, requesterID, authorization.OrganizationTuple(connection.OrganizationID),
			"Access denied: you are not allowed to update this connection.")
	}

	patch := req.Patch()

	if patch.SourceDeviceID != nil || patch.DestinationDeviceID != nil {
		source, destination := connection.SourceDeviceID, connection.DestinationDeviceID
		if patch.SourceDeviceID != nil {
			source = *patch.SourceDeviceID
		}
		if patch.DestinationDeviceID != nil {
			destination = *patch.DestinationDeviceID
		}

		if source == destination {
			return s.guard.Fail(op, requesterID, result.NewInvalidOperation(msgSelfLoop))
		}

		// the connection keeps its organization, new endpoints must live there too
		if err := s.checkEndpoints(ctx, source, destination, connection.OrganizationID); err != nil {
			return s.guard.Fail(op, requesterID, err)
		}
	}

	applyConnectionPatch(connection, patch)

	if err := s.storage.UpdateConnection(ctx, connection); err != nil {
		return s.guard.Fail(op, requesterID, connectionWriteError(err))
	}

	s.logger.Infof("connection %s updated by %s", connection.ID, requesterID)

	return nil
}

func (s *Service) DeleteConnection(ctx context.Context, requesterID, connectionID string) error {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.DeleteConnection")
	defer span.End()

	const op = "DeleteConnection"

	requester, err := s.guard.Requester(ctx, op, requesterID)
	if err != nil {
		return err
	}

	connection, err := s.connection(ctx, connectionID)
	if err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	if !authorization.CanMutateInOrganization(requester, connection.OrganizationID) {
		return s.guard.Deny(op, requesterID, authorization.OrganizationTuple(connection.OrganizationID),
			"Access denied: you are not allowed to remove this connection.")
	}

	if err := s.storage.DeleteConnection(ctx, connection.ID); err != nil {
		return s.guard.Fail(op, requesterID, connectionWriteError(err))
	}

	s.logger.Infof("connection %s removed by %s", connection.ID, requesterID)

	return nil
}

// ListConnections returns the connections visible to the requester, narrowed to
// organizationID when it is set.
func (s *Service) ListConnections(ctx context.Context, requesterID, organizationID string) ([]*types.ConnectionSummary, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.ListConnections")
	defer span.End()

	requester, err := s.guard.Requester(ctx, "ListConnections", requesterID)
	if err != nil {
		return nil, err
	}

	connections, err := s.storage.ListConnections(ctx, authorization.VisibleScope(requester).Narrow(organizationID))
	if err != nil {
		return nil, s.guard.Fail("ListConnections", requesterID, err)
	}

	return connections, nil
}

func (s *Service) connection(ctx context.Context, id string) (*types.Connection, error) {
	c, err := s.storage.GetConnectionByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, result.NewNotFound(msgConnectionNotFound)
	}

	return c, err
}

// checkEndpoints resolves both devices and requires them to belong to organizationID.
func (s *Service) checkEndpoints(ctx context.Context, sourceID, destinationID, organizationID string) error {
	source, err := s.storage.GetDeviceByID(ctx, sourceID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	destination, err := s.storage.GetDeviceByID(ctx, destinationID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	if source == nil || destination == nil {
		return result.NewNotFound(msgEndpointsNotFound)
	}

	if source.OrganizationID != organizationID || destination.OrganizationID != organizationID {
		return result.NewInvalidOperation(msgCrossOrganization)
	}

	return nil
}

func applyConnectionPatch(c *types.Connection, p types.ConnectionPatch) {
	if p.SourceDeviceID != nil {
		c.SourceDeviceID = *p.SourceDeviceID
	}
	if p.DestinationDeviceID != nil {
		c.DestinationDeviceID = *p.DestinationDeviceID
	}
	if p.SourceInterface != nil {
		c.SourceInterface = p.SourceInterface
	}
	if p.DestinationInterface != nil {
		c.DestinationInterface = p.DestinationInterface
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Speed != nil {
		c.Speed = p.Speed
	}
}

func connectionWriteError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return result.NewNotFound(msgConnectionNotFound)
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return result.NewNotFound(msgEndpointsNotFound)
	case errors.Is(err, storage.ErrCheckViolation):
		return result.NewInvalidOperation(msgSelfLoop)
	default:
		return result.NewInternalError("", err)
	}
}
