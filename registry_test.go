/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dsclient

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/dsclient/datastore/ddb"
	"github.com/suparena/dsclient/datastore/fs"
	"github.com/suparena/dsclient/datastore/gcd"
	"github.com/suparena/dsclient/datastore/mock"
	"github.com/suparena/dsclient/errors"
)

func TestRegistry(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		reg := NewRegistry()
		resolver := mock.New("gcd")

		require.NoError(t, reg.Register(resolver))

		got, err := reg.Get("gcd")
		require.NoError(t, err)
		assert.Same(t, resolver, got)

		require.NoError(t, reg.Remove("gcd"))
		_, err = reg.Get("gcd")
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Register(mock.New("ddb")))

		err := reg.Register(mock.New("ddb"))
		assert.True(t, errors.IsAlreadyExists(err))
	})

	t.Run("RemoveUnknown", func(t *testing.T) {
		assert.True(t, errors.IsNotFound(NewRegistry().Remove("spanner")))
	})

	t.Run("ListIsSorted", func(t *testing.T) {
		reg := NewRegistry()
		for _, name := range []string{"gcd", "ddb", "fs"} {
			require.NoError(t, reg.Register(mock.New(name)))
		}

		assert.Equal(t, []string{"ddb", "fs", "gcd"}, reg.List())
		assert.Empty(t, NewRegistry().List())
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		reg := NewRegistry()
		var wg sync.WaitGroup

		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_ = reg.Register(mock.New(fmt.Sprintf("backend-%d", i)))
				_, _ = reg.Get(fmt.Sprintf("backend-%d", i))
				_ = reg.List()
			}(i)
		}
		wg.Wait()

		assert.Len(t, reg.List(), 20)
	})
}

func TestDefaultRegistry(t *testing.T) {
	var reg *Registry
	require.NotPanics(t, func() { reg = DefaultRegistry() })

	assert.Equal(t, []string{ddb.Backend, fs.Backend, gcd.Backend}, reg.List())

	r, err := reg.Get(gcd.Backend)
	require.NoError(t, err)
	assert.IsType(t, &gcd.Resolver{}, r)
}
