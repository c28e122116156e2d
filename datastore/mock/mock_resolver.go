/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the Resolver interface for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/dsclient/datastore"
)

// Resolver is a mock implementation of datastore.Resolver for testing
type Resolver struct {
	mu           sync.Mutex
	backend      string
	settings     datastore.Settings
	resolveError error
	probeError   error
	resolveCalls int
	probeCalls   int
}

var _ datastore.Resolver = (*Resolver)(nil)

// New creates a mock Resolver for backend that resolves successfully
func New(backend string) *Resolver {
	s := datastore.NewSettings(backend)
	s.CredentialSource = "mock"
	return &Resolver{
		backend:  backend,
		settings: *s,
	}
}

// WithSettings sets the Settings returned by Resolve; Backend is forced to the mock's backend
func (m *Resolver) WithSettings(s datastore.Settings) *Resolver {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.Backend = m.backend
	m.settings = s
	return m
}

// WithResolveError makes Resolve and Probe return err
func (m *Resolver) WithResolveError(err error) *Resolver {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolveError = err
	return m
}

// WithProbeError makes Probe return err after a successful resolve
func (m *Resolver) WithProbeError(err error) *Resolver {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.probeError = err
	return m
}

func (m *Resolver) Backend() string {
	return m.backend
}

// Resolve returns a copy of the configured Settings
func (m *Resolver) Resolve(ctx context.Context) (*datastore.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolveCalls++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.resolveError != nil {
		return nil, m.resolveError
	}
	s := m.settings
	return &s, nil
}

// Probe fails like Resolve would, then returns the probe error if any
func (m *Resolver) Probe(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.probeCalls++

	if err := ctx.Err(); err != nil {
		return err
	}
	if m.resolveError != nil {
		return m.resolveError
	}
	return m.probeError
}

// Helper methods for testing

// ResolveCalls returns how many times Resolve was called
func (m *Resolver) ResolveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolveCalls
}

// ProbeCalls returns how many times Probe was called
func (m *Resolver) ProbeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.probeCalls
}
