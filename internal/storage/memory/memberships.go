// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/canonical/inventory-service/internal/storage"
	"github.com/canonical/inventory-service/internal/types"
)

func (s *Storage) AddMember(_ context.Context, organizationID, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.organizations[organizationID]; !ok {
		return "", fmt.Errorf("organization %s: %w", organizationID, storage.ErrForeignKeyViolation)
	}

	for _, m := range s.memberships {
		if m.OrganizationID == organizationID && m.UserID == userID {
			return "", fmt.Errorf("membership %s/%s: %w", organizationID, userID, storage.ErrDuplicateKey)
		}
	}

	id, err := newID()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	s.memberships[id] = types.Membership{
		ID:             id,
		OrganizationID: organizationID,
		UserID:         userID,
		CreatedAt:      s.now(),
	}

	return id, nil
}

func (s *Storage) RemoveMember(_ context.Context, organizationID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, m := range s.memberships {
		if m.OrganizationID == organizationID && m.UserID == userID {
			delete(s.memberships, id)
			return nil
		}
	}

	return storage.ErrNotFound
}

func (s *Storage) IsMember(_ context.Context, organizationID, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.memberships {
		if m.OrganizationID == organizationID && m.UserID == userID {
			return true, nil
		}
	}

	return false, nil
}

func (s *Storage) ListMembers(_ context.Context, organizationID string) ([]*types.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]*types.Membership, 0)
	for _, m := range s.memberships {
		if m.OrganizationID == organizationID {
			m := m
			members = append(members, &m)
		}
	}

	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })

	return members, nil
}

func (s *Storage) ListOrganizationIDsByUserID(_ context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	for _, m := range s.memberships {
		if m.UserID == userID {
			ids = append(ids, m.OrganizationID)
		}
	}

	sort.Strings(ids)

	return ids, nil
}
