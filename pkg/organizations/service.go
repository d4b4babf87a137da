// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/inventory-service/internal/authorization"
	"github.com/canonical/inventory-service/internal/identity"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/result"
	"github.com/canonical/inventory-service/internal/storage"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/internal/types"
	"github.com/canonical/inventory-service/internal/validation"
)

const (
	msgOrganizationNotFound = "Organization not found."
	msgOrganizationInactive = "Access denied: the organization is disabled."
	msgNameTaken            = "An organization with this name already exists."
	msgNameTakenOther       = "Another organization with this name already exists."
	msgUserNotFound         = "User not found."
	msgAlreadyMember        = "The user is already a member of this organization."
	msgNotMember            = "The user is not a member of this organization."
	msgManageDenied         = "Access denied: you are not allowed to manage organizations."
)

type Service struct {
	storage  StorageInterface
	identity IdentityInterface
	authz    AuthorizerInterface
	guard    *authorization.Guard
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	identity IdentityInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		identity: identity,
		authz:    authz,
		guard:    authorization.NewGuard(identity, storage, logger),
		validate: validation.NewValidator(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) CreateOrganization(ctx context.Context, requesterID string, req *CreateOrganizationRequest) (string, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.CreateOrganization")
	defer span.End()

	const op = "CreateOrganization"

	req.normalize()
	if err := validation.Struct(s.validate, req); err != nil {
		return "", s.guard.Fail(op, requesterID, err)
	}

	if _, err := s.administrator(ctx, op, requesterID); err != nil {
		return "", err
	}

	if taken, err := s.nameTaken(ctx, req.Name, ""); err != nil {
		return "", s.guard.Fail(op, requesterID, err)
	} else if taken {
		return "", s.guard.Fail(op, requesterID, result.NewConflict(msgNameTaken))
	}

	org, err := s.storage.CreateOrganization(ctx, req.Name)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return "", s.guard.Fail(op, requesterID, result.NewConflict(msgNameTaken))
	}
	if err != nil {
		return "", s.guard.Fail(op, requesterID, err)
	}

	if err := s.authz.LinkOrganizationToPlatform(ctx, org.ID); err != nil {
		return "", s.guard.Fail(op, requesterID, err)
	}

	s.logger.Security().AdminAction(requesterID, "create_organization", org.ID)
	s.logger.Infof("organization %s (%s) created by %s", org.Name, org.ID, requesterID)

	return org.ID, nil
}

func (s *Service) RenameOrganization(ctx context.Context, requesterID, organizationID string, req *RenameOrganizationRequest) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.RenameOrganization")
	defer span.End()

	const op = "RenameOrganization"

	req.normalize()
	if err := validation.Struct(s.validate, req); err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	if _, err := s.administrator(ctx, op, requesterID); err != nil {
		return err
	}

	org, err := s.activeOrganization(ctx, op, requesterID, organizationID)
	if err != nil {
		return err
	}

	if taken, err := s.nameTaken(ctx, req.Name, org.ID); err != nil {
		return s.guard.Fail(op, requesterID, err)
	} else if taken {
		return s.guard.Fail(op, requesterID, result.NewConflict(msgNameTakenOther))
	}

	err = s.storage.RenameOrganization(ctx, org.ID, req.Name)
	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		return s.guard.Fail(op, requesterID, result.NewConflict(msgNameTakenOther))
	case errors.Is(err, storage.ErrNotFound):
		return s.guard.Fail(op, requesterID, result.NewNotFound(msgOrganizationNotFound))
	case err != nil:
		return s.guard.Fail(op, requesterID, err)
	}

	s.logger.Security().AdminAction(requesterID, "rename_organization", org.ID)
	s.logger.Infof("organization %s renamed to %s by %s", org.ID, req.Name, requesterID)

	return nil
}

// ManageOrganizationStatus soft locks or unlocks an organization, members and
// inventory are kept as they are.
func (s *Service) ManageOrganizationStatus(ctx context.Context, requesterID, organizationID string, req *OrganizationStatusRequest) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ManageOrganizationStatus")
	defer span.End()

	const op = "ManageOrganizationStatus"

	if err := validation.Struct(s.validate, req); err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	if _, err := s.administrator(ctx, op, requesterID); err != nil {
		return err
	}

	org, err := s.organization(ctx, organizationID)
	if err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	err = s.storage.SetOrganizationStatus(ctx, org.ID, *req.Enabled)
	if errors.Is(err, storage.ErrNotFound) {
		return s.guard.Fail(op, requesterID, result.NewNotFound(msgOrganizationNotFound))
	}
	if err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	action := "disable_organization"
	if *req.Enabled {
		action = "enable_organization"
	}

	s.logger.Security().AdminAction(requesterID, action, org.ID)
	s.logger.Infof("organization %s active=%t set by %s", org.ID, *req.Enabled, requesterID)

	return nil
}

func (s *Service) AddUserToOrganization(ctx context.Context, requesterID, organizationID string, req *MemberRequest) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.AddUserToOrganization")
	defer span.End()

	const op = "AddUserToOrganization"

	req.normalize()
	if err := validation.Struct(s.validate, req); err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	if _, err := s.administrator(ctx, op, requesterID); err != nil {
		return err
	}

	org, err := s.activeOrganization(ctx, op, requesterID, organizationID)
	if err != nil {
		return err
	}

	user, err := s.identity.FindByID(ctx, req.UserID)
	if errors.Is(err, identity.ErrUserNotFound) {
		return s.guard.Fail(op, requesterID, result.NewNotFound(msgUserNotFound))
	}
	if err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	if user.LockedOut {
		return s.guard.Deny(op, requesterID, authorization.UserTuple(user.ID),
			"Access denied: a disabled user cannot be added to an organization.")
	}

	if member, err := s.storage.IsMember(ctx, org.ID, user.ID); err != nil {
		return s.guard.Fail(op, requesterID, err)
	} else if member {
		return s.guard.Fail(op, requesterID, result.NewConflict(msgAlreadyMember))
	}

	_, err = s.storage.AddMember(ctx, org.ID, user.ID)
	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		return s.guard.Fail(op, requesterID, result.NewConflict(msgAlreadyMember))
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return s.guard.Fail(op, requesterID, result.NewNotFound(msgOrganizationNotFound))
	case err != nil:
		return s.guard.Fail(op, requesterID, err)
	}

	if err := s.authz.AssignOrganizationMember(ctx, org.ID, user.ID); err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	s.logger.Security().AdminAction(requesterID, "add_member", org.ID+"/"+user.ID)
	s.logger.Infof("user %s added to organization %s by %s", user.ID, org.ID, requesterID)

	return nil
}

func (s *Service) RemoveUserFromOrganization(ctx context.Context, requesterID, organizationID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.RemoveUserFromOrganization")
	defer span.End()

	const op = "RemoveUserFromOrganization"

	if _, err := s.administrator(ctx, op, requesterID); err != nil {
		return err
	}

	org, err := s.activeOrganization(ctx, op, requesterID, organizationID)
	if err != nil {
		return err
	}

	err = s.storage.RemoveMember(ctx, org.ID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return s.guard.Fail(op, requesterID, result.NewNotFound(msgNotMember))
	}
	if err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	if err := s.authz.RemoveOrganizationMember(ctx, org.ID, userID); err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	s.logger.Security().AdminAction(requesterID, "remove_member", org.ID+"/"+userID)
	s.logger.Infof("user %s removed from organization %s by %s", userID, org.ID, requesterID)

	return nil
}

func (s *Service) ListOrganizations(ctx context.Context, requesterID string) ([]*types.OrganizationSummary, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListOrganizations")
	defer span.End()

	const op = "ListOrganizations"

	if _, err := s.administrator(ctx, op, requesterID); err != nil {
		return nil, err
	}

	summaries, err := s.storage.ListOrganizationSummaries(ctx)
	if err != nil {
		return nil, s.guard.Fail(op, requesterID, err)
	}

	return summaries, nil
}

// ListOrganizationMembers describes every member known to the identity provider,
// memberships of users the provider no longer knows are skipped.
func (s *Service) ListOrganizationMembers(ctx context.Context, requesterID, organizationID string) ([]*types.UserSummary, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListOrganizationMembers")
	defer span.End()

	const op = "ListOrganizationMembers"

	if _, err := s.administrator(ctx, op, requesterID); err != nil {
		return nil, err
	}

	org, err := s.organization(ctx, organizationID)
	if err != nil {
		return nil, s.guard.Fail(op, requesterID, err)
	}

	memberships, err := s.storage.ListMembers(ctx, org.ID)
	if err != nil {
		return nil, s.guard.Fail(op, requesterID, err)
	}

	members := make([]*types.UserSummary, 0, len(memberships))
	for _, m := range memberships {
		user, err := s.identity.FindByID(ctx, m.UserID)
		if errors.Is(err, identity.ErrUserNotFound) {
			s.logger.Warnf("member %s of organization %s is unknown to the identity provider", m.UserID, org.ID)
			continue
		}
		if err != nil {
			return nil, s.guard.Fail(op, requesterID, err)
		}

		roles := user.Roles
		if roles == nil {
			roles = []string{}
		}

		members = append(members, &types.UserSummary{
			ID:        user.ID,
			Email:     user.Email,
			LockedOut: user.LockedOut,
			Roles:     roles,
		})
	}

	return members, nil
}

// GetAvailableOrganizations feeds the current organization selector: every
// organization for administrators, the requester's own otherwise.
func (s *Service) GetAvailableOrganizations(ctx context.Context, requesterID string) ([]*types.OrganizationSummary, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.GetAvailableOrganizations")
	defer span.End()

	const op = "GetAvailableOrganizations"

	requester, err := s.guard.Requester(ctx, op, requesterID)
	if err != nil {
		return nil, err
	}

	summaries, err := s.storage.ListOrganizationSummaries(ctx)
	if err != nil {
		return nil, s.guard.Fail(op, requesterID, err)
	}

	scope := authorization.VisibleScope(requester)

	available := make([]*types.OrganizationSummary, 0, len(summaries))
	for _, o := range summaries {
		if scope.Includes(o.ID) {
			available = append(available, o)
		}
	}

	return available, nil
}

// VerifyRequester fails with AccessDenied for an unknown or locked out requester.
func (s *Service) VerifyRequester(ctx context.Context, requesterID string) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.VerifyRequester")
	defer span.End()

	_, err := s.guard.Requester(ctx, "VerifyRequester", requesterID)

	return err
}

func (s *Service) administrator(ctx context.Context, op, requesterID string) (*types.User, error) {
	requester, err := s.guard.Requester(ctx, op, requesterID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanManageOrganizations(requester) {
		return nil, s.guard.Deny(op, requesterID, authorization.PlatformTuple(authorization.GlobalPlatform), msgManageDenied)
	}

	return requester, nil
}

func (s *Service) organization(ctx context.Context, id string) (*types.Organization, error) {
	org, err := s.storage.GetOrganizationByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, result.NewNotFound(msgOrganizationNotFound)
	}

	return org, err
}

// activeOrganization resolves an organization that must exist and be enabled,
// a disabled one is an access denial rather than a missing resource.
func (s *Service) activeOrganization(ctx context.Context, op, requesterID, id string) (*types.Organization, error) {
	org, err := s.organization(ctx, id)
	if err != nil {
		return nil, s.guard.Fail(op, requesterID, err)
	}

	if !org.IsActive {
		return nil, s.guard.Deny(op, requesterID, authorization.OrganizationTuple(org.ID), msgOrganizationInactive)
	}

	return org, nil
}

// nameTaken is the friendly pre-check, the unique index on lower(name) stays authoritative.
func (s *Service) nameTaken(ctx context.Context, name, exceptID string) (bool, error) {
	org, err := s.storage.FindOrganizationByName(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return org.ID != exceptID, nil
}
