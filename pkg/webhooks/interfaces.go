// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/inventory-service/internal/types"
)

// StorageInterface is the subset of internal/storage the token hook reads.
type StorageInterface interface {
	ListActiveOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error)
}

type IdentityInterface interface {
	FindByID(ctx context.Context, id string) (*types.Identity, error)
}

type ServiceInterface interface {
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
