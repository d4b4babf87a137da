// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	_ "embed"
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

//go:embed schema/v0.fga
var v0Model string

var models = map[string]string{
	"v0": v0Model,
}

// AuthorizationModelProvider serves the OpenFGA model matching the relationships the service writes.
type AuthorizationModelProvider struct {
	version string
}

// DSL returns the raw model source.
func (p *AuthorizationModelProvider) DSL() string {
	return models[p.version]
}

// GetModel converts the embedded DSL into the API representation, it panics on
// an unknown version or an invalid model since both are programming errors.
func (p *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	dsl, ok := models[p.version]
	if !ok {
		panic(fmt.Sprintf("unknown authorization model version %q", p.version))
	}

	raw, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		panic(fmt.Sprintf("invalid authorization model %s: %s", p.version, err))
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		panic(fmt.Sprintf("invalid authorization model %s: %s", p.version, err))
	}

	return model
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{version: version}
}
