// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

type requesterKey struct{}

// WithUserID stores the authenticated requester id, every engine call is made on behalf of it.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, requesterKey{}, userID)
}

// GetUserID returns the requester id, false when the request was never authenticated.
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requesterKey{}).(string)
	return id, ok && id != ""
}
