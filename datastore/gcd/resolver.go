/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package gcd

import (
	"context"

	"github.com/samber/lo"

	dsbackend "github.com/suparena/dsclient/datastore"
	"github.com/suparena/dsclient/internal/gcpauth"
	"github.com/suparena/dsclient/internal/logging"
)

// Resolver implements datastore.Resolver for Google Cloud Datastore.
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

func (r *Resolver) configuration(ctx context.Context) (Configuration, error) {
	return complete(ctx, configurationFromEnv().Override(r.overrides))
}

func (r *Resolver) Resolve(ctx context.Context) (*dsbackend.Settings, error) {
	c, err := r.configuration(ctx)
	if err != nil {
		return nil, err
	}

	s := dsbackend.NewSettings(Backend)
	s.Project = c.ProjectID
	s.Database = lo.CoalesceOrEmpty(c.DatabaseID, defaultDatabase)
	s.Endpoint = lo.CoalesceOrEmpty(c.EmulatorHost, productionEndpoint)
	s.Emulator = c.EmulatorHost != ""
	s.CredentialSource = gcpauth.CredentialSource(c.EmulatorHost, c.CredentialsFile)
	return s, nil
}

func (r *Resolver) Probe(ctx context.Context) error {
	c, err := r.configuration(ctx)
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
