// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/inventory-service/internal/authorization"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/result"
	"github.com/canonical/inventory-service/internal/storage"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/internal/types"
	"github.com/canonical/inventory-service/internal/validation"
)

const (
	msgDeviceNotFound       = "Device not found."
	msgOrganizationNotFound = "Organization not found."
	msgDeviceNameTaken      = "A device with this name already exists in this organization."
	msgDeviceNameTakenOther = "Another device with this name already exists in this organization."
	msgDeviceReferenced     = "The device is still referenced by a connection, remove its connections first."
)

type Service struct {
	storage  StorageInterface
	guard    *authorization.Guard
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	identity IdentityInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		guard:    authorization.NewGuard(identity, storage, logger),
		validate: validation.NewValidator(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) CreateDevice(ctx context.Context, requesterID string, req *CreateDeviceRequest) (string, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.CreateDevice")
	defer span.End()

	const op = "CreateDevice"

	req.normalize()
	if err := validation.Struct(s.validate, req); err != nil {
		return "", s.guard.Fail(op, requesterID, err)
	}

	requester, err := s.guard.Requester(ctx, op, requesterID)
	if err != nil {
		return "", err
	}

	if !authorization.CanMutateInOrganization(requester, req.OrganizationID) {
		return "", s.guard.Deny(op, requesterID, authorization.OrganizationTuple(req.OrganizationID),
			"Access denied: you are not allowed to add devices to this organization.")
	}

	org, err := s.storage.GetOrganizationByID(ctx, req.OrganizationID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", s.guard.Fail(op, requesterID, result.NewNotFound(msgOrganizationNotFound))
	}
	if err != nil {
		return "", s.guard.Fail(op, requesterID, err)
	}

	if !org.IsActive {
		return "", s.guard.Deny(op, requesterID, authorization.OrganizationTuple(org.ID),
			"Devices cannot be added to an inactive organization.")
	}

	if taken, err := s.deviceNameTaken(ctx, org.ID, req.Name, ""); err != nil {
		return "", s.guard.Fail(op, requesterID, err)
	} else if taken {
		return "", s.guard.Fail(op, requesterID, result.NewConflict(msgDeviceNameTaken))
	}

	device, err := s.storage.CreateDevice(ctx, &types.Device{
		Name:           req.Name,
		IPAddress:      req.IPAddress,
		Type:           req.Type,
		OrganizationID: org.ID,
	})
	if err != nil {
		return "", s.guard.Fail(op, requesterID, deviceWriteError(err, msgDeviceNameTaken))
	}

	s.logger.Infof("device %s created in organization %s by %s", device.ID, org.ID, requesterID)

	return device.ID, nil
}

func (s *Service) UpdateDevice(ctx context.Context, requesterID, deviceID string, req *UpdateDeviceRequest) error {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.UpdateDevice")
	defer span.End()

	const op = "UpdateDevice"

	req.normalize()
	if err := validation.Struct(s.validate, req); err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	requester, err := s.guard.Requester(ctx, op, requesterID)
	if err != nil {
		return err
	}

	device, err := s.device(ctx, deviceID)
	if err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	if !authorization.CanMutateInOrganization(requester, device.OrganizationID) {
		return s.guard.Deny(op, requesterID, authorization.OrganizationTuple(device.OrganizationID),
			"Access denied: you are not allowed to update this device.")
	}

	patch := req.Patch()

	if patch.Name != nil && !strings.EqualFold(*patch.Name, device.Name) {
		if taken, err := s.deviceNameTaken(ctx, device.OrganizationID, *patch.Name, device.ID); err != nil {
			return s.guard.Fail(op, requesterID, err)
		} else if taken {
			return s.guard.Fail(op, requesterID, result.NewConflict(msgDeviceNameTakenOther))
		}
	}

	applyDevicePatch(device, patch)

	if err := s.storage.UpdateDevice(ctx, device); err != nil {
		return s.guard.Fail(op, requesterID, deviceWriteError(err, msgDeviceNameTakenOther))
	}

	s.logger.Infof("device %s updated by %s", device.ID, requesterID)

	return nil
}

func (s *Service) DeleteDevice(ctx context.Context, requesterID, deviceID string) error {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.DeleteDevice")
	defer span.End()

	const op = "DeleteDevice"

	requester, err := s.guard.Requester(ctx, op, requesterID)
	if err != nil {
		return err
	}

	device, err := s.device(ctx, deviceID)
	if err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	if !authorization.CanMutateInOrganization(requester, device.OrganizationID) {
		return s.guard.Deny(op, requesterID, authorization.OrganizationTuple(device.OrganizationID),
			"Access denied: you are not allowed to remove this device.")
	}

	err = s.storage.DeleteDevice(ctx, device.ID)
	switch {
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return s.guard.Fail(op, requesterID, result.NewConflict(msgDeviceReferenced))
	case errors.Is(err, storage.ErrNotFound):
		return s.guard.Fail(op, requesterID, result.NewNotFound(msgDeviceNotFound))
	case err != nil:
		return s.guard.Fail(op, requesterID, err)
	}

	s.logger.Infof("device %s removed by %s", device.ID, requesterID)

	return nil
}

// ListDevices returns the devices visible to the requester, narrowed to
// organizationID when it is set.
func (s *Service) ListDevices(ctx context.Context, requesterID, organizationID string) ([]*types.DeviceSummary, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.ListDevices")
	defer span.End()

	requester, err := s.guard.Requester(ctx, "ListDevices", requesterID)
	if err != nil {
		return nil, err
	}

	devices, err := s.storage.ListDevices(ctx, authorization.VisibleScope(requester).Narrow(organizationID))
	if err != nil {
		return nil, s.guard.Fail("ListDevices", requesterID, err)
	}

	return devices, nil
}

func (s *Service) device(ctx context.Context, id string) (*types.Device, error) {
	device, err := s.storage.GetDeviceByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, result.NewNotFound(msgDeviceNotFound)
	}

	return device, err
}

// deviceNameTaken is the friendly pre-check, the unique index stays authoritative.
func (s *Service) deviceNameTaken(ctx context.Context, organizationID, name, exceptID string) (bool, error) {
	d, err := s.storage.FindDeviceByName(ctx, organizationID, name)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return d.ID != exceptID, nil
}

func applyDevicePatch(d *types.Device, p types.DevicePatch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.IPAddress != nil {
		d.IPAddress = p.IPAddress
	}
	if p.Type != nil {
		d.Type = *p.Type
	}
}

func deviceWriteError(err error, duplicateMessage string) error {
	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		return result.NewConflict(duplicateMessage)
	case errors.Is(err, storage.ErrNotFound):
		return result.NewNotFound(msgDeviceNotFound)
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return result.NewNotFound(msgOrganizationNotFound)
	default:
		return result.NewInternalError("", err)
	}
}
