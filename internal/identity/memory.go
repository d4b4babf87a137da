// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/inventory-service/internal/types"
)

var _ ProviderInterface = (*MemoryProvider)(nil)

type memoryUser struct {
	identity      types.Identity
	passwordHash  []byte
	securityStamp string
	resetToken    string
}

// MemoryProvider is an in process user directory for local runs and tests.
type MemoryProvider struct {
	mu    sync.RWMutex
	users map[string]*memoryUser
	roles map[string]bool
}

func NewMemoryProvider() *MemoryProvider {
	p := new(MemoryProvider)
	p.users = make(map[string]*memoryUser)
	p.roles = map[string]bool{types.SystemAdministratorRole: true}

	return p
}

func (p *MemoryProvider) FindByID(_ context.Context, id string) (*types.Identity, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	u, ok := p.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	return copyIdentity(u.identity), nil
}

func (p *MemoryProvider) FindByEmail(_ context.Context, email string) (*types.Identity, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if u := p.byEmail(email); u != nil {
		return copyIdentity(u.identity), nil
	}

	return nil, ErrUserNotFound
}

func (p *MemoryProvider) ListUsers(_ context.Context) ([]*types.Identity, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	users := make([]*types.Identity, 0, len(p.users))
	for _, u := range p.users {
		users = append(users, copyIdentity(u.identity))
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })

	return users, nil
}

func (p *MemoryProvider) CreateUser(_ context.Context, email, password string) (*types.Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.byEmail(email) != nil {
		return nil, ErrDuplicateEmail
	}

	u := &memoryUser{
		identity:      types.Identity{ID: uuid.NewString(), Email: email, Roles: []string{}},
		passwordHash:  hash,
		securityStamp: uuid.NewString(),
	}
	p.users[u.identity.ID] = u

	return copyIdentity(u.identity), nil
}

func (p *MemoryProvider) SetLockout(_ context.Context, id string, locked bool) error {
	return p.update(id, func(u *memoryUser) error {
		u.identity.LockedOut = locked
		return nil
	})
}

func (p *MemoryProvider) AddToRole(_ context.Context, id, role string) error {
	return p.update(id, func(u *memoryUser) error {
		if !p.roles[role] {
			return ErrRoleNotFound
		}

		if !u.identity.HasRole(role) {
			u.identity.Roles = append(u.identity.Roles, role)
		}
		return nil
	})
}

func (p *MemoryProvider) RemoveFromRole(_ context.Context, id, role string) error {
	return p.update(id, func(u *memoryUser) error {
		if !p.roles[role] {
			return ErrRoleNotFound
		}

		roles := make([]string, 0, len(u.identity.Roles))
		for _, r := range u.identity.Roles {
			if r != role {
				roles = append(roles, r)
			}
		}
		u.identity.Roles = roles
		return nil
	})
}

func (p *MemoryProvider) RoleExists(_ context.Context, role string) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.roles[role], nil
}

func (p *MemoryProvider) ChangePassword(_ context.Context, id, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return p.update(id, func(u *memoryUser) error {
		u.passwordHash = hash
		u.resetToken = ""
		return nil
	})
}

func (p *MemoryProvider) GeneratePasswordResetToken(_ context.Context, id string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)

	err := p.update(id, func(u *memoryUser) error {
		u.resetToken = token
		return nil
	})

	return token, err
}

func (p *MemoryProvider) UpdateSecurityStamp(_ context.Context, id string) error {
	return p.update(id, func(u *memoryUser) error {
		u.securityStamp = uuid.NewString()
		return nil
	})
}

// CheckPassword reports whether password matches the stored hash of the user.
func (p *MemoryProvider) CheckPassword(_ context.Context, id, password string) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	u, ok := p.users[id]
	if !ok {
		return false, ErrUserNotFound
	}

	return bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) == nil, nil
}

// SecurityStamp returns the current stamp of the user, it changes on every privilege change.
func (p *MemoryProvider) SecurityStamp(_ context.Context, id string) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	u, ok := p.users[id]
	if !ok {
		return "", ErrUserNotFound
	}

	return u.securityStamp, nil
}

func (p *MemoryProvider) update(id string, fn func(*memoryUser) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, ok := p.users[id]
	if !ok {
		return ErrUserNotFound
	}

	return fn(u)
}

func (p *MemoryProvider) byEmail(email string) *memoryUser {
	for _, u := range p.users {
		if strings.EqualFold(u.identity.Email, email) {
			return u
		}
	}

	return nil
}

func copyIdentity(i types.Identity) *types.Identity {
	i.Roles = append([]string{}, i.Roles...)
	return &i
}
