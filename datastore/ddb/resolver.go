/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	dsbackend "github.com/suparena/dsclient/datastore"
)

// Resolver implements datastore.Resolver for DynamoDB.
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
	s.Region = c.Region
	s.Endpoint = c.Endpoint
	if s.Endpoint == "" {
		s.Endpoint = fmt.Sprintf("dynamodb.%s.amazonaws.com", c.Region)
	}
	s.Emulator = isLocalEndpoint(c.Endpoint)
	s.CredentialSource = credentialSource(c)
	return s, nil
}

// Probe builds a client; DynamoDB clients hold no connection to release.
func (r *Resolver) Probe(ctx context.Context) error {
	_, err := BuildClient(ctx, configurationFromEnv().Override(r.overrides), r.opts...)
	return err
}

func credentialSource(c Configuration) string {
	switch {
	case c.hasStaticCredentials():
		return "static"
	case c.Profile != "":
		return "profile " + c.Profile
	default:
		return "default chain"
	}
}

// isLocalEndpoint reports whether endpoint names this machine, where DynamoDB
// Local runs. VPC and FIPS endpoints are overrides but not emulators.
func isLocalEndpoint(endpoint string) bool {
	if endpoint == "" {
		return false
	}
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host == "localhost" || host == "host.docker.internal" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
