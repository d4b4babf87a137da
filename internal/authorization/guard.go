// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/inventory-service/internal/identity"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/result"
	"github.com/canonical/inventory-service/internal/types"
)

const invalidRequesterMessage = "Invalid or inactive requester."

// Guard resolves requesters and logs every refused or failed operation before
// the error reaches the caller.
type Guard struct {
	identity    identity.Finder
	memberships identity.MembershipLister

	logger logging.LoggerInterface
}

// Requester returns the active requester snapshot, absent or locked out
// requesters are denied.
func (g *Guard) Requester(ctx context.Context, op, requesterID string) (*types.User, error) {
	u, err := identity.ResolveRequester(ctx, g.identity, g.memberships, requesterID)
	if err != nil {
		return nil, g.Fail(op, requesterID, result.NewInternalError("", err))
	}

	if !IsActiveRequester(u) {
		return nil, g.Deny(op, requesterID, "requester", invalidRequesterMessage)
	}

	return u, nil
}

// Deny records an access refusal on resource and returns the AccessDenied error.
func (g *Guard) Deny(op, requesterID, resource, message string) error {
	g.logger.Warnf("%s: access denied to %s for requester %s: %s", op, resource, requesterID, message)
	g.logger.Security().AuthzFailure(requesterID, resource)

	return result.NewAccessDenied(message)
}

// Fail logs err with the operation context, errors that are not *result.Error
// become internal errors.
func (g *Guard) Fail(op, requesterID string, err error) error {
	if _, ok := err.(*result.Error); !ok {
		err = result.NewInternalError("", err)
	}

	if result.KindOf(err) == result.KindInternalError {
		g.logger.Errorf("%s failed for requester %s: %v", op, requesterID, err)
	} else {
		g.logger.Warnf("%s rejected for requester %s: %v", op, requesterID, err)
	}

	return err
}

func NewGuard(finder identity.Finder, memberships identity.MembershipLister, logger logging.LoggerInterface) *Guard {
	g := new(Guard)
	g.identity = finder
	g.memberships = memberships
	g.logger = logger

	return g
}
