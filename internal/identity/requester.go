// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/inventory-service/internal/types"
)

type Finder interface {
	FindByID(ctx context.Context, id string) (*types.Identity, error)
}

type MembershipLister interface {
	ListOrganizationIDsByUserID(ctx context.Context, userID string) ([]string, error)
}

// ResolveRequester builds the snapshot the access predicates run on.
// An unknown requester yields a nil user and no error.
func ResolveRequester(ctx context.Context, finder Finder, memberships MembershipLister, id string) (*types.User, error) {
	if id == "" {
		return nil, nil
	}

	i, err := finder.FindByID(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve requester %s: %w", id, err)
	}

	orgIDs, err := memberships.ListOrganizationIDsByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships of %s: %w", id, err)
	}

	return i.ToUser(orgIDs), nil
}
