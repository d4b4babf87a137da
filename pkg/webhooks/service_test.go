// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"github.com/ory/hydra/v2/oauth2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/inventory-service/internal/identity"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go

func newService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockIdentityInterface) {
	logger := logging.NewNoopLogger()
	storage := NewMockStorageInterface(ctrl)
	identities := NewMockIdentityInterface(ctrl)

	return NewService(storage, identities, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("webhooks", logger), logger), storage, identities
}

func TestService_HandleTokenHook(t *testing.T) {
	tests := []struct {
		name        string
		req         *oauth2.TokenHookRequest
		setupMocks  func(*MockStorageInterface, *MockIdentityInterface)
		expectedErr error
		expectErr   bool
		expectedIDs []string
	}{
		{
			name:        "no session",
			req:         &oauth2.TokenHookRequest{},
			setupMocks:  func(*MockStorageInterface, *MockIdentityInterface) {},
			expectedErr: ErrMissingSubject,
		},
		{
			name: "unknown subject",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("ghost")},
			setupMocks: func(_ *MockStorageInterface, i *MockIdentityInterface) {
				i.EXPECT().FindByID(gomock.Any(), "ghost").Return(nil, identity.ErrUserNotFound)
			},
			expectedErr: ErrUnknownSubject,
		},
		{
			name: "locked out subject",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-1")},
			setupMocks: func(_ *MockStorageInterface, i *MockIdentityInterface) {
				i.EXPECT().FindByID(gomock.Any(), "user-1").Return(&types.Identity{ID: "user-1", LockedOut: true}, nil)
			},
			expectedErr: ErrLockedOut,
		},
		{
			name: "storage failure",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-1")},
			setupMocks: func(s *MockStorageInterface, i *MockIdentityInterface) {
				i.EXPECT().FindByID(gomock.Any(), "user-1").Return(&types.Identity{ID: "user-1"}, nil)
				s.EXPECT().ListActiveOrganizationsByUserID(gomock.Any(), "user-1").Return(nil, errors.New("db down"))
			},
			expectErr: true,
		},
		{
			name: "claims",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-1")},
			setupMocks: func(s *MockStorageInterface, i *MockIdentityInterface) {
				i.EXPECT().FindByID(gomock.Any(), "user-1").Return(&types.Identity{ID: "user-1", Roles: []string{types.SystemAdministratorRole}}, nil)
				s.EXPECT().ListActiveOrganizationsByUserID(gomock.Any(), "user-1").Return([]*types.Organization{{ID: "org-1"}, {ID: "org-2"}}, nil)
			},
			expectedIDs: []string{"org-1", "org-2"},
		},
		{
			name: "no memberships",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-1")},
			setupMocks: func(s *MockStorageInterface, i *MockIdentityInterface) {
				i.EXPECT().FindByID(gomock.Any(), "user-1").Return(&types.Identity{ID: "user-1"}, nil)
				s.EXPECT().ListActiveOrganizationsByUserID(gomock.Any(), "user-1").Return(nil, nil)
			},
			expectedIDs: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, storage, identities := newService(ctrl)
			test.setupMocks(storage, identities)

			resp, err := svc.HandleTokenHook(context.Background(), test.req)

			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				return
			}
			if test.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expectedIDs, resp.Session.IDToken[OrganizationsClaim])
			require.Equal(t, test.expectedIDs, resp.Session.AccessToken[OrganizationsClaim])
			require.NotNil(t, resp.Session.AccessToken[RolesClaim])
		})
	}
}
