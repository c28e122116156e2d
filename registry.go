/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dsclient

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/suparena/dsclient/datastore"
	"github.com/suparena/dsclient/datastore/ddb"
	"github.com/suparena/dsclient/datastore/fs"
	"github.com/suparena/dsclient/datastore/gcd"
	"github.com/suparena/dsclient/errors"
)

// Registry is a thread-safe collection of backend resolvers keyed by backend name.
type Registry struct {
	mu        sync.RWMutex
	resolvers map[string]datastore.Resolver
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		resolvers: make(map[string]datastore.Resolver),
	}
}

// DefaultRegistry returns a Registry holding the gcd, fs and ddb resolvers
// with no configuration overrides.
func DefaultRegistry(opts ...datastore.Option) *Registry {
	r := NewRegistry()
	// Names are distinct constants; a failure here is a programming error.
	lo.Must0(r.Register(gcd.NewResolver(gcd.Configuration{}, opts...)))
	lo.Must0(r.Register(fs.NewResolver(fs.Configuration{}, opts...)))
	lo.Must0(r.Register(ddb.NewResolver(ddb.Configuration{}, opts...)))
	return r
}

// Register stores the resolver under its backend name.
func (r *Registry) Register(resolver datastore.Resolver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := resolver.Backend()
	if _, exists := r.resolvers[name]; exists {
		return errors.NewAlreadyExistsError("backend", name)
	}
	r.resolvers[name] = resolver
	return nil
}

// Get retrieves the resolver registered under name.
func (r *Registry) Get(name string) (datastore.Resolver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resolver, exists := r.resolvers[name]
	if !exists {
		return nil, errors.NewNotFoundError("backend", name)
	}
	return resolver, nil
}

// Remove deletes the resolver registered under name.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.resolvers[name]; !exists {
		return errors.NewNotFoundError("backend", name)
	}
	delete(r.resolvers, name)
	return nil
}

// List returns the registered backend names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.resolvers)
	sort.Strings(names)
	return names
}
