/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
	"time"

	"github.com/go-openapi/strfmt"
)

// Resolver resolves the ambient configuration of one datastore backend.
type Resolver interface {
	// Backend returns the registry name of the backend (for example "gcd").
	Backend() string

	// Resolve reports the configuration a client would be built with.
	Resolve(ctx context.Context) (*Settings, error)

	// Probe builds a client from the resolved configuration and releases it.
	Probe(ctx context.Context) error
}

// Settings is a secret-free description of a resolved backend configuration.
type Settings struct {
	Backend          string          `json:"backend" yaml:"backend"`
	Project          string          `json:"project,omitempty" yaml:"project,omitempty"`
	Database         string          `json:"database,omitempty" yaml:"database,omitempty"`
	Region           string          `json:"region,omitempty" yaml:"region,omitempty"`
	Endpoint         string          `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Emulator         bool            `json:"emulator" yaml:"emulator"`
	CredentialSource string          `json:"credentialSource" yaml:"credentialSource"`
	ResolvedAt       strfmt.DateTime `json:"resolvedAt" yaml:"resolvedAt"`
}

// NewSettings returns Settings for backend stamped with the current time.
func NewSettings(backend string) *Settings {
	return &Settings{
		Backend:    backend,
		ResolvedAt: strfmt.DateTime(time.Now().UTC()),
	}
}
