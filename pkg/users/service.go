// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/inventory-service/internal/authorization"
	"github.com/canonical/inventory-service/internal/identity"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/result"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/internal/types"
	"github.com/canonical/inventory-service/internal/validation"
)

const (
	msgUserNotFound  = "User not found."
	msgEmailTaken    = "A user with this email already exists."
	msgRoleNotFound  = "The specified role does not exist."
	msgRoleNotHeld   = "The user does not have this role."
	msgManageDenied  = "Access denied: you are not allowed to manage users."
	msgBootstrapFail = "failed to bootstrap administrator %s: %w"
)

type Service struct {
	identity IdentityInterface
	authz    AuthorizerInterface
	guard    *authorization.Guard
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	identity IdentityInterface,
	storage StorageInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		identity: identity,
		authz:    authz,
		guard:    authorization.NewGuard(identity, storage, logger),
		validate: validation.NewValidator(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) CreateUser(ctx context.Context, requesterID string, req *CreateUserRequest) (string, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.CreateUser")
	defer span.End()

	const op = "CreateUser"

	req.normalize()
	if err := validation.Struct(s.validate, req); err != nil {
		return "", s.guard.Fail(op, requesterID, err)
	}

	if err := s.administrator(ctx, op, requesterID); err != nil {
		return "", err
	}

	user, err := s.identity.CreateUser(ctx, req.Email, req.Password)
	if errors.Is(err, identity.ErrDuplicateEmail) {
		return "", s.guard.Fail(op, requesterID, result.NewConflict(msgEmailTaken))
	}
	if err != nil {
		return "", s.guard.Fail(op, requesterID, err)
	}

	s.logger.Security().AdminAction(requesterID, "create_user", user.ID)
	s.logger.Infof("user %s created by %s", user.ID, requesterID)

	return user.ID, nil
}

func (s *Service) ListUsers(ctx context.Context, requesterID string) ([]*types.UserSummary, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListUsers")
	defer span.End()

	const op = "ListUsers"

	if err := s.administrator(ctx, op, requesterID); err != nil {
		return nil, err
	}

	identities, err := s.identity.ListUsers(ctx)
	if err != nil {
		return nil, s.guard.Fail(op, requesterID, err)
	}

	summaries := make([]*types.UserSummary, 0, len(identities))
	for _, i := range identities {
		summaries = append(summaries, summaryOf(i))
	}

	return summaries, nil
}

// AddToRole grants role to the user. Granting a role the user already holds succeeds
// without touching the directory.
func (s *Service) AddToRole(ctx context.Context, requesterID, userID, role string) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.AddToRole")
	defer span.End()

	const op = "AddToRole"

	if err := s.administrator(ctx, op, requesterID); err != nil {
		return err
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	role = strings.TrimSpace(role)
	if exists, err := s.identity.RoleExists(ctx, role); err != nil {
		return s.guard.Fail(op, requesterID, err)
	} else if !exists {
		return s.guard.Fail(op, requesterID, result.NewNotFound(msgRoleNotFound))
	}

	if user.HasRole(role) {
		return nil
	}

	if err := s.identity.AddToRole(ctx, user.ID, role); err != nil {
		return s.guard.Fail(op, requesterID, roleError(err))
	}

	if role == types.SystemAdministratorRole {
		if err := s.authz.AssignSystemAdministrator(ctx, user.ID); err != nil {
			return s.guard.Fail(op, requesterID, err)
		}
	}

	if err := s.identity.UpdateSecurityStamp(ctx, user.ID); err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	s.logger.Security().AdminAction(requesterID, "add_role:"+role, user.ID)

	return nil
}

func (s *Service) RemoveFromRole(ctx context.Context, requesterID, userID, role string) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.RemoveFromRole")
	defer span.End()

	const op = "RemoveFromRole"

	if err := s.administrator(ctx, op, requesterID); err != nil {
		return err
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	if !user.HasRole(role) {
		return s.guard.Fail(op, requesterID, result.NewInvalidOperation(msgRoleNotHeld))
	}

	if err := s.identity.RemoveFromRole(ctx, user.ID, role); err != nil {
		return s.guard.Fail(op, requesterID, roleError(err))
	}

	if role == types.SystemAdministratorRole {
		if err := s.authz.RemoveSystemAdministrator(ctx, user.ID); err != nil {
			return s.guard.Fail(op, requesterID, err)
		}
	}

	if err := s.identity.UpdateSecurityStamp(ctx, user.ID); err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	s.logger.Security().AdminAction(requesterID, "remove_role:"+role, user.ID)

	return nil
}

func (s *Service) DisableUser(ctx context.Context, requesterID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.DisableUser")
	defer span.End()

	return s.setLockout(ctx, "DisableUser", requesterID, userID, true)
}

func (s *Service) EnableUser(ctx context.Context, requesterID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.EnableUser")
	defer span.End()

	return s.setLockout(ctx, "EnableUser", requesterID, userID, false)
}

func (s *Service) ChangePassword(ctx context.Context, requesterID, userID string, req *ChangePasswordRequest) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.ChangePassword")
	defer span.End()

	const op = "ChangePassword"

	if err := validation.Struct(s.validate, req); err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	if err := s.administrator(ctx, op, requesterID); err != nil {
		return err
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	if err := s.identity.ChangePassword(ctx, user.ID, req.Password); err != nil {
		return s.guard.Fail(op, requesterID, notFound(err))
	}

	if err := s.identity.UpdateSecurityStamp(ctx, user.ID); err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	s.logger.Security().AdminAction(requesterID, "change_password", user.ID)

	return nil
}

func (s *Service) GeneratePasswordResetToken(ctx context.Context, requesterID, userID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.GeneratePasswordResetToken")
	defer span.End()

	const op = "GeneratePasswordResetToken"

	if err := s.administrator(ctx, op, requesterID); err != nil {
		return "", err
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return "", s.guard.Fail(op, requesterID, err)
	}

	token, err := s.identity.GeneratePasswordResetToken(ctx, user.ID)
	if err != nil {
		return "", s.guard.Fail(op, requesterID, notFound(err))
	}

	s.logger.Security().AdminAction(requesterID, "password_reset_token", user.ID)

	return token, nil
}

// Bootstrap creates the first administrator when no user owns email yet.
// An empty email disables it, an existing user is left untouched.
func (s *Service) Bootstrap(ctx context.Context, email, password string) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.Bootstrap")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}

	_, err := s.identity.FindByEmail(ctx, email)
	if err == nil {
		s.logger.Debugf("bootstrap administrator %s already exists", email)
		return nil
	}
	if !errors.Is(err, identity.ErrUserNotFound) {
		return fmt.Errorf(msgBootstrapFail, email, err)
	}

	req := &CreateUserRequest{Email: email, Password: password, ConfirmPassword: password}
	if err := validation.Struct(s.validate, req); err != nil {
		return fmt.Errorf(msgBootstrapFail, email, err)
	}

	user, err := s.identity.CreateUser(ctx, email, password)
	if err != nil {
		return fmt.Errorf(msgBootstrapFail, email, err)
	}

	if err := s.identity.AddToRole(ctx, user.ID, types.SystemAdministratorRole); err != nil {
		return fmt.Errorf(msgBootstrapFail, email, err)
	}

	if err := s.authz.AssignSystemAdministrator(ctx, user.ID); err != nil {
		return fmt.Errorf(msgBootstrapFail, email, err)
	}

	s.logger.Security().AdminAction("system", "bootstrap_administrator", user.ID)
	s.logger.Infof("bootstrap administrator %s created", email)

	return nil
}

func (s *Service) setLockout(ctx context.Context, op, requesterID, userID string, locked bool) error {
	if err := s.administrator(ctx, op, requesterID); err != nil {
		return err
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	if err := s.identity.SetLockout(ctx, user.ID, locked); err != nil {
		return s.guard.Fail(op, requesterID, notFound(err))
	}

	if err := s.identity.UpdateSecurityStamp(ctx, user.ID); err != nil {
		return s.guard.Fail(op, requesterID, err)
	}

	action := "enable_user"
	if locked {
		action = "disable_user"
	}

	s.logger.Security().AdminAction(requesterID, action, user.ID)

	return nil
}

func (s *Service) administrator(ctx context.Context, op, requesterID string) error {
	requester, err := s.guard.Requester(ctx, op, requesterID)
	if err != nil {
		return err
	}

	if !authorization.CanManageOrganizations(requester) {
		return s.guard.Deny(op, requesterID, authorization.PlatformTuple(authorization.GlobalPlatform), msgManageDenied)
	}

	return nil
}

func (s *Service) user(ctx context.Context, id string) (*types.Identity, error) {
	i, err := s.identity.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	return i, nil
}

func notFound(err error) error {
	if errors.Is(err, identity.ErrUserNotFound) {
		return result.NewNotFound(msgUserNotFound)
	}

	return err
}

func roleError(err error) error {
	if errors.Is(err, identity.ErrRoleNotFound) {
		return result.NewNotFound(msgRoleNotFound)
	}

	return notFound(err)
}

func summaryOf(i *types.Identity) *types.UserSummary {
	roles := i.Roles
	if roles == nil {
		roles = []string{}
	}

	return &types.UserSummary{ID: i.ID, Email: i.Email, LockedOut: i.LockedOut, Roles: roles}
}
