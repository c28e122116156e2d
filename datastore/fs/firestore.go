/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fs

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/samber/lo"

	dsbackend "github.com/suparena/dsclient/datastore"
	"github.com/suparena/dsclient/errors"
	"github.com/suparena/dsclient/internal/env"
	"github.com/suparena/dsclient/internal/gcpauth"
	"github.com/suparena/dsclient/internal/logging"
)

// Backend is the registry name of the Cloud Firestore backend.
const Backend = "fs"

const (
	emulatorProjectID  = "dummy-emulator-firestore-project"
	productionEndpoint = "firestore.googleapis.com:443"
	defaultDatabase    = "(default)"
	scopeDatastore     = "https://www.googleapis.com/auth/datastore"
)

// Configuration holds the settings needed to build a Firestore client.
type Configuration struct {
	ProjectID       string `json:"projectId,omitempty" yaml:"projectId,omitempty"`
	EmulatorHost    string `json:"emulatorHost,omitempty" yaml:"emulatorHost,omitempty"`
	CredentialsFile string `json:"credentialsFile,omitempty" yaml:"credentialsFile,omitempty"`
}

// Override returns c with every non-empty field of other applied on top.
func (c Configuration) Override(other Configuration) Configuration {
	return Configuration{
		ProjectID:       lo.CoalesceOrEmpty(other.ProjectID, c.ProjectID),
		EmulatorHost:    lo.CoalesceOrEmpty(other.EmulatorHost, c.EmulatorHost),
		CredentialsFile: lo.CoalesceOrEmpty(other.CredentialsFile, c.CredentialsFile),
	}
}

func configurationFromEnv() Configuration {
	return Configuration{
		ProjectID:       env.First("FIRESTORE_PROJECT_ID", "GOOGLE_CLOUD_PROJECT", "GCLOUD_PROJECT"),
		EmulatorHost:    env.First("FIRESTORE_EMULATOR_HOST"),
		CredentialsFile: env.First("GOOGLE_APPLICATION_CREDENTIALS"),
	}
}

func complete(ctx context.Context, c Configuration) (Configuration, error) {
	if c.ProjectID != "" {
		return c, nil
	}
	if c.EmulatorHost != "" {
		c.ProjectID = emulatorProjectID
		return c, nil
	}
	project, err := gcpauth.ProjectFromCredentials(ctx, c.CredentialsFile, scopeDatastore)
	if err != nil {
		return c, errors.NewConfigurationError(Backend, "project id", err)
	}
	c.ProjectID = project
	return c, nil
}

// ResolveDefaultConfiguration resolves the configuration a default client is built with.
func ResolveDefaultConfiguration(ctx context.Context) (Configuration, error) {
	return complete(ctx, configurationFromEnv())
}

// BuildClient constructs a Firestore client for c. The caller must Close it.
func BuildClient(ctx context.Context, c Configuration, opts ...dsbackend.Option) (*firestore.Client, error) {
	loggers := logging.WithPrefix(dsbackend.ApplyOptions(opts...).Loggers, Backend)

	if c.ProjectID == "" {
		return nil, errors.NewConfigurationError(Backend, "project id", nil)
	}

	client, err := firestore.NewClient(ctx, c.ProjectID, gcpauth.ClientOptions(c.EmulatorHost, c.CredentialsFile)...)
	if err != nil {
		return nil, errors.NewConfigurationError(Backend, "credentials", err)
	}

	loggers.Infof("Firestore client initialized for project %q", c.ProjectID)
	return client, nil
}

// NewClient builds a client from the environment defaults overlaid with overrides.
func NewClient(ctx context.Context, overrides Configuration, opts ...dsbackend.Option) (*firestore.Client, error) {
	c, err := complete(ctx, configurationFromEnv().Override(overrides))
	if err != nil {
		return nil, err
	}
	return BuildClient(ctx, c, opts...)
}

// DefaultClient returns a new Firestore client configured from the ambient environment.
func DefaultClient() (*firestore.Client, error) {
	return NewClient(context.Background(), Configuration{})
}

// Resolver implements datastore.Resolver for Cloud Firestore.
type Resolver struct {
	overrides Configuration
	opts      []dsbackend.Option
}

var _ dsbackend.Resolver = (*Resolver)(nil)

// NewResolver returns a Resolver that applies overrides on top of the environment.
func NewResolver(overrides Configuration, opts ...dsbackend.Option) *Resolver {
	return &Resolver{overrides: overrides, opts: opts}
}

func (r *Resolver) Backend() string {
	return Backend
}

func (r *Resolver) Resolve(ctx context.Context) (*dsbackend.Settings, error) {
	c, err := complete(ctx, configurationFromEnv().Override(r.overrides))
	if err != nil {
		return nil, err
	}

	s := dsbackend.NewSettings(Backend)
	s.Project = c.ProjectID
	s.Database = defaultDatabase
	s.Endpoint = lo.CoalesceOrEmpty(c.EmulatorHost, productionEndpoint)
	s.Emulator = c.EmulatorHost != ""
	s.CredentialSource = gcpauth.CredentialSource(c.EmulatorHost, c.CredentialsFile)
	return s, nil
}

func (r *Resolver) Probe(ctx context.Context) error {
	c, err := complete(ctx, configurationFromEnv().Override(r.overrides))
	if err != nil {
		return err
	}
	client, err := BuildClient(ctx, c, r.opts...)
	if err != nil {
		return err
	}
	dsbackend.ReleaseProbe(client, logging.WithPrefix(dsbackend.ApplyOptions(r.opts...).Loggers, Backend))
	return nil
}
