// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "fmt"

// Config describes how bearer tokens presented to the inventory API are checked.
type Config struct {
	Issuer string
	// JwksURL skips OIDC discovery when set.
	JwksURL string

	AllowedSubjects []string
	RequiredScope   string
}

func (c Config) validate() error {
	if c.Issuer == "" {
		return fmt.Errorf("issuer is required for JWT authentication")
	}

	return nil
}

func (c Config) policy() accessPolicy {
	return accessPolicy{allowedSubjects: c.AllowedSubjects, requiredScope: c.RequiredScope}
}
