/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package gcd

import (
	"context"

	"cloud.google.com/go/datastore"
	"github.com/samber/lo"

	dsbackend "github.com/suparena/dsclient/datastore"
	"github.com/suparena/dsclient/errors"
	"github.com/suparena/dsclient/internal/env"
	"github.com/suparena/dsclient/internal/gcpauth"
	"github.com/suparena/dsclient/internal/logging"
)

// Backend is the registry name of the Google Cloud Datastore backend.
const Backend = "gcd"

const (
	// emulatorProjectID matches the project the client library uses against an emulator.
	emulatorProjectID  = "dummy-emulator-datastore-project"
	productionEndpoint = "datastore.googleapis.com:443"
	defaultDatabase    = "(default)"
)

// Configuration holds the settings needed to build a Datastore client.
type Configuration struct {
	ProjectID       string `json:"projectId,omitempty" yaml:"projectId,omitempty"`
	DatabaseID      string `json:"databaseId,omitempty" yaml:"databaseId,omitempty"`
	EmulatorHost    string `json:"emulatorHost,omitempty" yaml:"emulatorHost,omitempty"`
	CredentialsFile string `json:"credentialsFile,omitempty" yaml:"credentialsFile,omitempty"`
}

// Override returns c with every non-empty field of other applied on top.
func (c Configuration) Override(other Configuration) Configuration {
	return Configuration{
		ProjectID:       lo.CoalesceOrEmpty(other.ProjectID, c.ProjectID),
		DatabaseID:      lo.CoalesceOrEmpty(other.DatabaseID, c.DatabaseID),
		EmulatorHost:    lo.CoalesceOrEmpty(other.EmulatorHost, c.EmulatorHost),
		CredentialsFile: lo.CoalesceOrEmpty(other.CredentialsFile, c.CredentialsFile),
	}
}

// configurationFromEnv reads the variables the Datastore tooling documents.
func configurationFromEnv() Configuration {
	return Configuration{
		ProjectID:       env.First("DATASTORE_PROJECT_ID", "GOOGLE_CLOUD_PROJECT", "GCLOUD_PROJECT"),
		DatabaseID:      env.First("DATASTORE_DATABASE_ID"),
		EmulatorHost:    env.First("DATASTORE_EMULATOR_HOST"),
		CredentialsFile: env.First("GOOGLE_APPLICATION_CREDENTIALS"),
	}
}

// complete fills in the project id when the environment did not name one.
func complete(ctx context.Context, c Configuration) (Configuration, error) {
	if c.ProjectID != "" {
		return c, nil
	}
	if c.EmulatorHost != "" {
		c.ProjectID = emulatorProjectID
		return c, nil
	}
	project, err := gcpauth.ProjectFromCredentials(ctx, c.CredentialsFile, datastore.ScopeDatastore)
	if err != nil {
		return c, errors.NewConfigurationError(Backend, "project id", err)
	}
	c.ProjectID = project
	return c, nil
}

// ResolveDefaultConfiguration resolves the configuration a default client is
// built with. It fails with a ConfigurationError when no project id can be found.
func ResolveDefaultConfiguration(ctx context.Context) (Configuration, error) {
	return complete(ctx, configurationFromEnv())
}

// BuildClient constructs a Datastore client for c. The caller owns the client and must Close it.
func BuildClient(ctx context.Context, c Configuration, opts ...dsbackend.Option) (*datastore.Client, error) {
	options := dsbackend.ApplyOptions(opts...)
	loggers := logging.WithPrefix(options.Loggers, Backend)

	if c.ProjectID == "" {
		return nil, errors.NewConfigurationError(Backend, "project id", nil)
	}

	clientOpts := gcpauth.ClientOptions(c.EmulatorHost, c.CredentialsFile)
	var (
		client *datastore.Client
		err    error
	)
	if c.DatabaseID == "" {
		client, err = datastore.NewClient(ctx, c.ProjectID, clientOpts...)
	} else {
		client, err = datastore.NewClientWithDatabase(ctx, c.ProjectID, c.DatabaseID, clientOpts...)
	}
	if err != nil {
		return nil, errors.NewConfigurationError(Backend, "credentials", err)
	}

	loggers.Infof("Datastore client initialized for project %q, database %q", c.ProjectID, lo.CoalesceOrEmpty(c.DatabaseID, defaultDatabase))
	return client, nil
}

// NewClient builds a client from the environment defaults overlaid with overrides.
func NewClient(ctx context.Context, overrides Configuration, opts ...dsbackend.Option) (*datastore.Client, error) {
	c, err := complete(ctx, configurationFromEnv().Override(overrides))
	if err != nil {
		return nil, err
	}
	return BuildClient(ctx, c, opts...)
}

// DefaultClient returns a new Datastore client configured entirely from the
// ambient environment. Every call resolves the configuration again and returns
// a distinct client.
func DefaultClient() (*datastore.Client, error) {
	return NewClient(context.Background(), Configuration{})
}
