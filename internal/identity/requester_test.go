// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canonical/inventory-service/internal/types"
)

type staticMemberships struct {
	ids []string
	err error
}

func (s staticMemberships) ListOrganizationIDsByUserID(context.Context, string) ([]string, error) {
	return s.ids, s.err
}

func TestResolveRequester(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider()

	u, err := p.CreateUser(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, p.AddToRole(ctx, u.ID, types.SystemAdministratorRole))

	requester, err := ResolveRequester(ctx, p, staticMemberships{ids: []string{"org-1"}}, u.ID)
	require.NoError(t, err)
	require.NotNil(t, requester)
	require.Equal(t, []string{types.SystemAdministratorRole}, requester.Roles)
	require.Equal(t, []string{"org-1"}, requester.OrganizationIDs)

	requester, err = ResolveRequester(ctx, p, staticMemberships{}, "missing")
	require.NoError(t, err)
	require.Nil(t, requester)

	requester, err = ResolveRequester(ctx, p, staticMemberships{}, "")
	require.NoError(t, err)
	require.Nil(t, requester)

	_, err = ResolveRequester(ctx, p, staticMemberships{err: errors.New("db down")}, u.ID)
	require.Error(t, err)
}
