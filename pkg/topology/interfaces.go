// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package topology

import (
	"context"

	"github.com/canonical/inventory-service/internal/types"
)

// InventoryInterface lists what the requester may see, scoping happens there.
type InventoryInterface interface {
	ListDevices(ctx context.Context, requesterID, organizationID string) ([]*types.DeviceSummary, error)
	ListConnections(ctx context.Context, requesterID, organizationID string) ([]*types.ConnectionSummary, error)
}
