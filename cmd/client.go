// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/inventory-service/internal/identity"
)

// getClient builds the API client from the persistent flags. A bearer token
// wins over the impersonation header when both are set.
func getClient() *apiClient {
	endpoint := httpEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	headers := make(http.Header)
	switch {
	case bearerToken != "":
		headers.Set("Authorization", "Bearer "+bearerToken)
	case userID != "":
		headers.Set(identity.HeaderName, userID)
	}

	return newAPIClient(
		strings.TrimSuffix(endpoint, "/"),
		headers,
		&http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
	)
}
