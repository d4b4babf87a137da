// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
	"github.com/canonical/inventory-service/internal/tracing"
)

type Client struct {
	c *client.OpenFgaClient

	modelID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ReadModel returns the configured model, or the latest one written to the store when no model id is set.
func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	if c.modelID == "" {
		res, err := c.c.ReadLatestAuthorizationModel(ctx).Execute()
		if err != nil {
			return nil, fmt.Errorf("failed to read latest authorization model: %w", err)
		}

		model := res.GetAuthorizationModel()
		return &model, nil
	}

	res, err := c.c.ReadAuthorizationModel(ctx).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to read authorization model: %w", err)
	}

	model := res.GetAuthorizationModel()
	return &model, nil
}

// CompareModel reports whether the deployed model has the same schema and types as model.
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	deployed, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}

	if deployed.SchemaVersion != model.SchemaVersion {
		c.logger.Errorf("invalid authorization model schema version %s, expected %s", deployed.SchemaVersion, model.SchemaVersion)
		return false, nil
	}

	if !reflect.DeepEqual(deployed.TypeDefinitions, model.TypeDefinitions) {
		c.logger.Error("invalid authorization model type definitions")
		return false, nil
	}

	return true, nil
}

func (c *Client) WriteModel(ctx context.Context, model *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	res, err := c.c.WriteAuthorizationModel(ctx).Body(*model).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to write authorization model: %w", err)
	}

	return res.GetAuthorizationModelId(), nil
}

func (c *Client) CreateStore(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	res, err := c.c.CreateStore(ctx).Body(client.ClientCreateStoreRequest{Name: name}).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create store: %w", err)
	}

	return res.GetId(), nil
}

func (c *Client) SetStoreID(ctx context.Context, storeID string) error {
	_, span := c.tracer.Start(ctx, "openfga.Client.SetStoreID")
	defer span.End()

	return c.c.SetStoreId(storeID)
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	return c.WriteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) WriteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuples")
	defer span.End()

	body := make(client.ClientWriteTuplesBody, 0, len(tuples))
	for _, t := range tuples {
		body = append(body, t.toWrite())
	}

	if _, err := c.c.WriteTuples(ctx).Body(body).Execute(); err != nil {
		c.logger.Errorf("issue when writing tuples %v: %s", tuples, err)
		return err
	}

	return nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	return c.DeleteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuples")
	defer span.End()

	body := make(client.ClientDeleteTuplesBody, 0, len(tuples))
	for _, t := range tuples {
		body = append(body, t.toDelete())
	}

	if _, err := c.c.DeleteTuples(ctx).Body(body).Execute(); err != nil {
		c.logger.Errorf("issue when deleting tuples %v: %s", tuples, err)
		return err
	}

	return nil
}

func NewClient(cfg *Config) *Client {
	c := new(Client)

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger
	c.modelID = cfg.AuthModelID

	fgaConfig := &client.ClientConfiguration{
		ApiUrl:               cfg.apiURL(),
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthModelID,
		Credentials: &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		},
		Debug:      cfg.Debug,
		HTTPClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}

	fgaClient, err := client.NewSdkClient(fgaConfig)
	if err != nil {
		c.logger.Fatalf("issue when setting up openfga client: %s", err)
	}

	c.c = fgaClient

	return c
}
