// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/inventory-service/internal/identity"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
)

var (
	ErrMissingSubject = errors.New("token hook request carries no subject")
	ErrUnknownSubject = errors.New("token subject is not a known user")
	ErrLockedOut      = errors.New("token subject is locked out")
)

type Service struct {
	storage  StorageInterface
	identity IdentityInterface

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
		identity: identity,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// HandleTokenHook adds the active organizations and the roles of the subject to
// both tokens. Locked out users get no token.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	if req == nil || req.Session == nil || req.Session.DefaultSession == nil || req.Session.DefaultSession.Subject == "" {
		return nil, ErrMissingSubject
	}

	subject := req.Session.DefaultSession.Subject
	s.logger.Debugf("handling token hook for subject %s", subject)

	user, err := s.identity.FindByID(ctx, subject)
	if errors.Is(err, identity.ErrUserNotFound) {
		return nil, ErrUnknownSubject
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subject %s: %w", subject, err)
	}

	if user.LockedOut {
		s.logger.Security().AuthzFailure(subject, "token")
		return nil, ErrLockedOut
	}

	organizations, err := s.storage.ListActiveOrganizationsByUserID(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations of %s: %w", subject, err)
	}

	ids := make([]string, 0, len(organizations))
	for _, o := range organizations {
		ids = append(ids, o.ID)
	}

	roles := append([]string{}, user.Roles...)

	resp := new(TokenHookResponse)
	resp.Session.IDToken = map[string]interface{}{
		OrganizationsClaim: ids,
		RolesClaim:         roles,
	}
	resp.Session.AccessToken = map[string]interface{}{
		OrganizationsClaim: ids,
		RolesClaim:         roles,
	}

	return resp, nil
}
