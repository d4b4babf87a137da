// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package memory keeps the inventory in process, with the same uniqueness and
// referential rules as the postgres schema.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/inventory-service/internal/storage"
	"github.com/canonical/inventory-service/internal/types"
)

var _ storage.StorageInterface = (*Storage)(nil)

type Storage struct {
	mu sync.RWMutex

	organizations map[string]types.Organization
	memberships   map[string]types.Membership
	devices       map[string]types.Device
	connections   map[string]types.Connection

	now func() time.Time
}

func NewStorage() *Storage {
	s := new(Storage)

	s.organizations = make(map[string]types.Organization)
	s.memberships = make(map[string]types.Membership)
	s.devices = make(map[string]types.Device)
	s.connections = make(map[string]types.Connection)
	s.now = time.Now

	return s
}

// WithTx runs fn directly, every call on the store is atomic on its own.
func (s *Storage) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func sameName(a, b string) bool {
	return strings.EqualFold(a, b)
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}

	c := *v
	return &c
}

func (s *Storage) CreateOrganization(_ context.Context, name string) (*types.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.organizations {
		if sameName(o.Name, name) {
			return nil, fmt.Errorf("organization %q: %w", name, storage.ErrDuplicateKey)
		}
	}

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	o := types.Organization{ID: id, Name: name, IsActive: true, CreatedAt: s.now()}
	s.organizations[id] = o

	return &o, nil
}

func (s *Storage) GetOrganizationByID(_ context.Context, id string) (*types.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.organizations[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &o, nil
}

func (s *Storage) FindOrganizationByName(_ context.Context, name string) (*types.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.organizations {
		if sameName(o.Name, name) {
			return &o, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (s *Storage) ListOrganizationSummaries(_ context.Context) ([]*types.OrganizationSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, m := range s.memberships {
		counts[m.OrganizationID]++
	}

	organizations := s.organizationsWhere(func(types.Organization) bool { return true })
	summaries := make([]*types.OrganizationSummary, 0, len(organizations))
	for _, o := range organizations {
		summaries = append(summaries, &types.OrganizationSummary{
			ID:          o.ID,
			Name:        o.Name,
			IsActive:    o.IsActive,
			MemberCount: counts[o.ID],
		})
	}

	return summaries, nil
}

func (s *Storage) ListActiveOrganizationsByUserID(_ context.Context, userID string) ([]*types.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member := s.membershipSet(userID)
	return s.organizationsWhere(func(o types.Organization) bool { return member[o.ID] && o.IsActive }), nil
}

func (s *Storage) RenameOrganization(_ context.Context, id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.organizations[id]
	if !ok {
		return storage.ErrNotFound
	}

	for _, other := range s.organizations {
		if other.ID != id && sameName(other.Name, name) {
			return fmt.Errorf("organization %q: %w", name, storage.ErrDuplicateKey)
		}
	}

	o.Name = name
	s.organizations[id] = o

	return nil
}

func (s *Storage) SetOrganizationStatus(_ context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.organizations[id]
	if !ok {
		return storage.ErrNotFound
	}

	o.IsActive = active
	s.organizations[id] = o

	return nil
}

// organizationsWhere must be called with the lock held.
func (s *Storage) organizationsWhere(keep func(types.Organization) bool) []*types.Organization {
	organizations := make([]*types.Organization, 0)
	for _, o := range s.organizations {
		if keep(o) {
			o := o
			organizations = append(organizations, &o)
		}
	}

	sort.Slice(organizations, func(i, j int) bool {
		return strings.ToLower(organizations[i].Name) < strings.ToLower(organizations[j].Name)
	})

	return organizations
}

func (s *Storage) membershipSet(userID string) map[string]bool {
	set := make(map[string]bool)
	for _, m := range s.memberships {
		if m.UserID == userID {
			set[m.OrganizationID] = true
		}
	}

	return set
}
