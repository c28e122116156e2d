/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/dsclient/datastore/ddb"
	"github.com/suparena/dsclient/datastore/fs"
	"github.com/suparena/dsclient/datastore/gcd"
	"github.com/suparena/dsclient/errors"
)

const sampleConfig = `
logLevel: debug
datastore:
  projectId: file-project
  databaseId: tenant-a
firestore:
  emulatorHost: localhost:8080
dynamodb:
  region: eu-west-1
  endpoint: http://localhost:8000
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", f.LogLevel)
	assert.Equal(t, gcd.Configuration{ProjectID: "file-project", DatabaseID: "tenant-a"}, f.Datastore)
	assert.Equal(t, fs.Configuration{EmulatorHost: "localhost:8080"}, f.Firestore)
	assert.Equal(t, ddb.Configuration{Region: "eu-west-1", Endpoint: "http://localhost:8000"}, f.DynamoDB)
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, File{}, *f)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("datastore:\n  projectID: typo\n"))
	assert.Error(t, err)
}

func TestParseRejectsInvalidLogLevel(t *testing.T) {
	_, err := Parse([]byte("logLevel: loud\n"))

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "logLevel")
}

func TestLoadFile(t *testing.T) {
	t.Run("Existing", func(t *testing.T) {
		f, err := LoadFile(writeFile(t, "dsclient.yaml", sampleConfig))
		require.NoError(t, err)
		assert.Equal(t, "file-project", f.Datastore.ProjectID)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestResolvers(t *testing.T) {
	f, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	resolvers := f.Resolvers()

	require.Len(t, resolvers, 3)
	assert.Equal(t, gcd.Backend, resolvers[0].Backend())
	assert.Equal(t, fs.Backend, resolvers[1].Backend())
	assert.Equal(t, ddb.Backend, resolvers[2].Backend())
}

// Cannot use t.Parallel() because of t.Setenv.
func TestLoadDotEnv(t *testing.T) {
	t.Run("ExplicitFile", func(t *testing.T) {
		t.Setenv("DSCLIENT_TEST_PROJECT", "")
		require.NoError(t, os.Unsetenv("DSCLIENT_TEST_PROJECT"))
		path := writeFile(t, "test.env", "DSCLIENT_TEST_PROJECT=from-dotenv\n")

		require.NoError(t, LoadDotEnv(path))
		assert.Equal(t, "from-dotenv", os.Getenv("DSCLIENT_TEST_PROJECT"))
	})

	t.Run("ExistingVariablesWin", func(t *testing.T) {
		t.Setenv("DSCLIENT_TEST_PROJECT", "from-env")
		path := writeFile(t, "test.env", "DSCLIENT_TEST_PROJECT=from-dotenv\n")

		require.NoError(t, LoadDotEnv(path))
		assert.Equal(t, "from-env", os.Getenv("DSCLIENT_TEST_PROJECT"))
	})

	t.Run("MissingExplicitFile", func(t *testing.T) {
		assert.Error(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
	})

	t.Run("MissingDefaultFile", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		assert.NoError(t, LoadDotEnv())
	})
}
