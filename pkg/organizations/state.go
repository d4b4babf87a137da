// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"sync"

	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/result"
	"github.com/canonical/inventory-service/internal/types"
)

const msgNotAvailable = "The organization is not available to you."

// State is the current organization selection of one user session.
// Subscriber callbacks run outside the lock and may read the state back.
type State struct {
	requesterID string
	service     AvailabilityInterface

	mu          sync.Mutex
	initialized bool
	available   []*types.OrganizationSummary
	current     *types.OrganizationSummary
	subscribers map[int]func()
	nextID      int
}

func NewState(requesterID string, service AvailabilityInterface) *State {
	s := new(State)
	s.requesterID = requesterID
	s.service = service
	s.subscribers = make(map[int]func())

	return s
}

// Initialize loads the available organizations, keeps the current selection
// while it is still available and falls back to the first one otherwise.
// On failure the previous state is left untouched.
func (s *State) Initialize(ctx context.Context) error {
	available, err := s.service.GetAvailableOrganizations(ctx, s.requesterID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.initialized = true
	s.available = available

	var current *types.OrganizationSummary
	if s.current != nil {
		current = find(available, s.current.ID)
	}
	if current == nil && len(available) > 0 {
		current = available[0]
	}
	s.current = current
	s.mu.Unlock()

	s.notify()

	return nil
}

// Refresh re-validates the selection against fresh data.
func (s *State) Refresh(ctx context.Context) error {
	return s.Initialize(ctx)
}

func (s *State) SetOrganization(org *types.OrganizationSummary) {
	s.mu.Lock()
	s.current = org
	s.mu.Unlock()

	s.notify()
}

// Select sets the current organization by id, it must be one of the available ones.
func (s *State) Select(organizationID string) error {
	s.mu.Lock()
	org := find(s.available, organizationID)
	s.mu.Unlock()

	if org == nil {
		return result.NewNotFound(msgNotAvailable)
	}

	s.SetOrganization(org)

	return nil
}

func (s *State) Current() *types.OrganizationSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

func (s *State) Available() []*types.OrganizationSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*types.OrganizationSummary(nil), s.available...)
}

func (s *State) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.initialized
}

// Subscribe registers fn for change notifications, the returned func removes it.
func (s *State) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.subscribers, id)
	}
}

func (s *State) notify() {
	s.mu.Lock()
	subscribers := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn()
	}
}

func find(organizations []*types.OrganizationSummary, id string) *types.OrganizationSummary {
	for _, o := range organizations {
		if o.ID == id {
			return o
		}
	}

	return nil
}

// StateRegistry holds one State per requester.
type StateRegistry struct {
	service AvailabilityInterface
	logger  logging.LoggerInterface

	mu     sync.Mutex
	states map[string]*State
}

func NewStateRegistry(service AvailabilityInterface, logger logging.LoggerInterface) *StateRegistry {
	r := new(StateRegistry)
	r.service = service
	r.logger = logger
	r.states = make(map[string]*State)

	return r
}

// Open returns the loaded state of requesterID. The requester is verified on every
// call and a refused one loses its session. A state is registered only once it loaded.
func (r *StateRegistry) Open(ctx context.Context, requesterID string) (*State, error) {
	if err := r.service.VerifyRequester(ctx, requesterID); err != nil {
		r.Forget(requesterID)
		return nil, err
	}

	if s, ok := r.Lookup(requesterID); ok {
		return s, nil
	}

	s := NewState(requesterID, r.service)
	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.states[requesterID]; ok {
		return existing, nil
	}
	r.states[requesterID] = s

	return s, nil
}

// Lookup returns the registered state of requesterID, if any.
func (r *StateRegistry) Lookup(requesterID string) (*State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.states[requesterID]

	return s, ok
}

// Len is the number of open sessions.
func (r *StateRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.states)
}

// Forget ends the session of requesterID.
func (r *StateRegistry) Forget(requesterID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, requesterID)
}

// Notify refreshes every initialized session after an organization mutation.
// A session whose refresh fails keeps its previous selection, one whose requester
// is refused is dropped.
func (r *StateRegistry) Notify(ctx context.Context) {
	r.mu.Lock()
	states := make([]*State, 0, len(r.states))
	for _, s := range r.states {
		states = append(states, s)
	}
	r.mu.Unlock()

	for _, s := range states {
		if !s.Initialized() {
			continue
		}

		err := s.Refresh(ctx)
		switch {
		case result.IsKind(err, result.KindAccessDenied):
			r.Forget(s.requesterID)
		case err != nil:
			r.logger.Warnf("failed to refresh organization selection of %s: %v", s.requesterID, err)
		}
	}
}
