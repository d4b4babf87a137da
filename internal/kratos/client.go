// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/inventory-service/internal/identity"
	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
	"github.com/canonical/inventory-service/internal/types"
)

const (
	stateActive   = "active"
	stateInactive = "inactive"

	rolesKey      = "roles"
	listPageSize  = 1000
	defaultSchema = "default"
)

var _ identity.ProviderInterface = (*Client)(nil)

// Client exposes the Kratos admin API as an identity provider.
// Roles are kept in metadata_admin, a locked out user is an inactive identity.
type Client struct {
	client               *ory.APIClient
	recoveryCodeLifetime string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL, recoveryCodeLifetime string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	conf.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	return &Client{
		client:               ory.NewAPIClient(conf),
		recoveryCodeLifetime: recoveryCodeLifetime,
		tracer:               tracer,
		monitor:              monitor,
		logger:               logger,
	}
}

func (c *Client) FindByID(ctx context.Context, id string) (*types.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.FindByID")
	defer span.End()

	i, err := c.getIdentity(ctx, id)
	if err != nil {
		return nil, err
	}

	return toIdentity(i), nil
}

func (c *Client) FindByEmail(ctx context.Context, email string) (*types.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.FindByEmail")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, identity.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return nil, identity.ErrUserNotFound
	}

	return toIdentity(&ids[0]), nil
}

func (c *Client) ListUsers(ctx context.Context) ([]*types.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.ListUsers")
	defer span.End()

	users := make([]*types.Identity, 0)
	token := ""
	for {
		req := c.client.IdentityAPI.ListIdentities(ctx).PageSize(listPageSize)
		if token != "" {
			req = req.PageToken(token)
		}

		ids, r, err := req.Execute()
		if err != nil {
			return nil, fmt.Errorf("failed to list identities: %w", err)
		}

		for i := range ids {
			users = append(users, toIdentity(&ids[i]))
		}

		next := nextPageToken(r)
		if next == "" || next == token {
			return users, nil
		}
		token = next
	}
}

// nextPageToken reads the page_token of the rel="next" entry of the Link header.
func nextPageToken(r *http.Response) string {
	if r == nil {
		return ""
	}

	for _, header := range r.Header.Values("Link") {
		for _, link := range strings.Split(header, ",") {
			target, params, ok := strings.Cut(link, ";")
			if !ok || !strings.Contains(params, `rel="next"`) {
				continue
			}

			u, err := url.Parse(strings.Trim(strings.TrimSpace(target), "<>"))
			if err != nil {
				continue
			}

			return u.Query().Get("page_token")
		}
	}

	return ""
}

func (c *Client) CreateUser(ctx context.Context, email, password string) (*types.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateUser")
	defer span.End()

	state := stateActive
	body := ory.CreateIdentityBody{
		SchemaId: defaultSchema,
		Traits:   map[string]interface{}{"email": email},
		State:    &state,
		Credentials: &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{Password: &password},
			},
		},
		MetadataAdmin: map[string]interface{}{rolesKey: []string{}},
	}

	i, r, err := c.client.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusConflict {
			return nil, identity.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	return toIdentity(i), nil
}

func (c *Client) SetLockout(ctx context.Context, id string, locked bool) error {
	ctx, span := c.tracer.Start(ctx, "kratos.SetLockout")
	defer span.End()

	state := stateActive
	if locked {
		state = stateInactive
	}

	return c.patch(ctx, id, ory.JsonPatch{Op: "replace", Path: "/state", Value: state})
}

func (c *Client) AddToRole(ctx context.Context, id, role string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.AddToRole")
	defer span.End()

	return c.updateRoles(ctx, id, role, func(roles []string) []string {
		if slices.Contains(roles, role) {
			return roles
		}
		return append(roles, role)
	})
}

func (c *Client) RemoveFromRole(ctx context.Context, id, role string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.RemoveFromRole")
	defer span.End()

	return c.updateRoles(ctx, id, role, func(roles []string) []string {
		return slices.DeleteFunc(roles, func(r string) bool { return r == role })
	})
}

// RoleExists only knows the system administrator role.
func (c *Client) RoleExists(_ context.Context, role string) (bool, error) {
	return role == types.SystemAdministratorRole, nil
}

func (c *Client) ChangePassword(ctx context.Context, id, password string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.ChangePassword")
	defer span.End()

	i, err := c.getIdentity(ctx, id)
	if err != nil {
		return err
	}

	traits, _ := i.GetTraits().(map[string]interface{})

	body := ory.UpdateIdentityBody{
		SchemaId:       i.SchemaId,
		State:          i.GetState(),
		Traits:         traits,
		MetadataAdmin:  i.MetadataAdmin,
		MetadataPublic: i.MetadataPublic,
		Credentials: &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{Password: &password},
			},
		},
	}

	if _, _, err := c.client.IdentityAPI.UpdateIdentity(ctx, id).UpdateIdentityBody(body).Execute(); err != nil {
		return fmt.Errorf("failed to update identity password: %w", err)
	}

	return nil
}

// GeneratePasswordResetToken issues a Kratos recovery code for the identity.
func (c *Client) GeneratePasswordResetToken(ctx context.Context, id string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GeneratePasswordResetToken")
	defer span.End()

	body := ory.CreateRecoveryCodeForIdentityBody{
		IdentityId: id,
		ExpiresIn:  &c.recoveryCodeLifetime,
	}

	code, r, err := c.client.IdentityAPI.CreateRecoveryCodeForIdentity(ctx).CreateRecoveryCodeForIdentityBody(body).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", identity.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to create recovery code: %w", err)
	}

	return code.RecoveryCode, nil
}

// UpdateSecurityStamp revokes every session of the identity.
func (c *Client) UpdateSecurityStamp(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.UpdateSecurityStamp")
	defer span.End()

	r, err := c.client.IdentityAPI.DeleteIdentitySessions(ctx, id).Execute()
	if err != nil {
		// kratos answers 404 when the identity has no session left
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("failed to revoke identity sessions: %w", err)
	}

	return nil
}

func (c *Client) getIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	i, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, identity.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return i, nil
}

func (c *Client) updateRoles(ctx context.Context, id, role string, change func([]string) []string) error {
	if role != types.SystemAdministratorRole {
		return identity.ErrRoleNotFound
	}

	i, err := c.getIdentity(ctx, id)
	if err != nil {
		return err
	}

	metadata := i.GetMetadataAdmin()
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	metadata[rolesKey] = change(rolesFromMetadata(i.GetMetadataAdmin()))

	return c.patch(ctx, id, ory.JsonPatch{Op: "add", Path: "/metadata_admin", Value: metadata})
}

func (c *Client) patch(ctx context.Context, id string, ops ...ory.JsonPatch) error {
	_, r, err := c.client.IdentityAPI.PatchIdentity(ctx, id).JsonPatch(ops).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return identity.ErrUserNotFound
		}
		return fmt.Errorf("failed to patch identity: %w", err)
	}

	return nil
}

func toIdentity(i *ory.Identity) *types.Identity {
	email := ""
	if traits, ok := i.GetTraits().(map[string]interface{}); ok {
		email, _ = traits["email"].(string)
	}

	return &types.Identity{
		ID:        i.Id,
		Email:     email,
		Roles:     rolesFromMetadata(i.GetMetadataAdmin()),
		LockedOut: i.GetState() == stateInactive,
	}
}

func rolesFromMetadata(metadata interface{}) []string {
	roles := make([]string, 0)

	m, ok := metadata.(map[string]interface{})
	if !ok {
		return roles
	}

	raw, ok := m[rolesKey].([]interface{})
	if !ok {
		return roles
	}

	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}

	return roles
}
