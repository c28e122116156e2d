package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/suparena/dsclient"
	dsbackend "github.com/suparena/dsclient/datastore"
	"github.com/suparena/dsclient/config"
	"github.com/suparena/dsclient/datastore/mock"
	dserrors "github.com/suparena/dsclient/errors"
)

// mockBuilder returns a builder registering resolvers and recording what the
// root command passed to it.
func mockBuilder(gotFile **config.File, resolvers ...dsbackend.Resolver) RegistryBuilder {
	return func(file *config.File, _ ldlog.Loggers) (*dsclient.Registry, error) {
		if gotFile != nil {
			*gotFile = file
		}
		reg := dsclient.NewRegistry()
		for _, r := range resolvers {
			if err := reg.Register(r); err != nil {
				return nil, err
			}
		}
		return reg, nil
	}
}

func run(t *testing.T, build RegistryBuilder, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := MakeApp(build)
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(context.Background(), append([]string{"dsclient", "--log-level", "none"}, args...))
	return stdout.String(), err
}

func TestResolveCommand(t *testing.T) {
	gcd := mock.New("gcd").WithSettings(dsbackend.Settings{Project: "p1", Emulator: true})
	ddb := mock.New("ddb").WithSettings(dsbackend.Settings{Region: "eu-west-1"})

	t.Run("AllBackendsAsJSON", func(t *testing.T) {
		out, err := run(t, mockBuilder(nil, gcd, ddb), "resolve", "--format", "json")
		require.NoError(t, err)

		var settings []dsbackend.Settings
		require.NoError(t, json.Unmarshal([]byte(out), &settings))
		require.Len(t, settings, 2)
		// Registry order is sorted by name.
		assert.Equal(t, "ddb", settings[0].Backend)
		assert.Equal(t, "eu-west-1", settings[0].Region)
		assert.Equal(t, "gcd", settings[1].Backend)
		assert.Equal(t, "p1", settings[1].Project)
	})

	t.Run("SelectedBackendAsYAML", func(t *testing.T) {
		out, err := run(t, mockBuilder(nil, gcd, ddb), "resolve", "--backend", "gcd")
		require.NoError(t, err)

		var settings []map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &settings))
		require.Len(t, settings, 1)
		assert.Equal(t, "gcd", settings[0]["backend"])
		assert.Equal(t, "p1", settings[0]["project"])
		assert.Equal(t, true, settings[0]["emulator"])
	})

	t.Run("UnknownBackend", func(t *testing.T) {
		_, err := run(t, mockBuilder(nil, gcd), "resolve", "--backend", "spanner")
		assert.True(t, dserrors.IsNotFound(err))
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		_, err := run(t, mockBuilder(nil, gcd), "resolve", "--format", "xml")
		assert.ErrorContains(t, err, "unsupported format")
	})

	t.Run("ResolveError", func(t *testing.T) {
		cause := dserrors.NewConfigurationError("fs", "project id", nil)
		broken := mock.New("fs").WithResolveError(cause)

		_, err := run(t, mockBuilder(nil, gcd, broken), "resolve")
		assert.ErrorIs(t, err, cause)
	})
}

func TestCheckCommand(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	t.Run("AllOK", func(t *testing.T) {
		out, err := run(t, mockBuilder(nil, mock.New("gcd"), mock.New("fs")), "check")
		require.NoError(t, err)

		assert.Contains(t, out, "ok fs")
		assert.Contains(t, out, "ok gcd")
	})

	t.Run("Failure", func(t *testing.T) {
		failing := mock.New("ddb").WithProbeError(errors.New("no region"))
		healthy := mock.New("gcd")

		out, err := run(t, mockBuilder(nil, failing, healthy), "check")

		assert.ErrorContains(t, err, "1 of 2 backends failed")
		assert.Contains(t, out, "FAIL ddb: no region")
		assert.Contains(t, out, "ok gcd")
		assert.Equal(t, 1, failing.ProbeCalls())
		assert.Equal(t, 1, healthy.ProbeCalls())
	})
}

func TestGlobalFlags(t *testing.T) {
	t.Run("ConfigFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dsclient.yaml")
		require.NoError(t, os.WriteFile(path, []byte("datastore:\n  projectId: from-file\n"), 0o600))

		var got *config.File
		_, err := run(t, mockBuilder(&got, mock.New("gcd")), "--config", path, "check")
		require.NoError(t, err)

		require.NotNil(t, got)
		assert.Equal(t, "from-file", got.Datastore.ProjectID)
	})

	t.Run("NoConfigFile", func(t *testing.T) {
		got := &config.File{}
		_, err := run(t, mockBuilder(&got, mock.New("gcd")), "check")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		var stdout bytes.Buffer
		app := MakeApp(mockBuilder(nil, mock.New("gcd")))
		app.Writer = &stdout

		err := app.Run(context.Background(), []string{"dsclient", "--log-level", "loud", "check"})
		assert.ErrorContains(t, err, "unknown log level")
	})

	t.Run("MissingEnvFile", func(t *testing.T) {
		_, err := run(t, mockBuilder(nil, mock.New("gcd")), "--env-file", filepath.Join(t.TempDir(), "missing.env"), "check")
		assert.Error(t, err)
	})
}

func TestVersion(t *testing.T) {
	var stdout bytes.Buffer
	app := MakeApp(mockBuilder(nil))
	app.Writer = &stdout

	require.NoError(t, app.Run(context.Background(), []string{"dsclient", "--version"}))
	assert.Contains(t, stdout.String(), dsclient.Version)
}

func TestDefaultRegistryBuilder(t *testing.T) {
	t.Run("WithoutFile", func(t *testing.T) {
		reg, err := DefaultRegistryBuilder(nil, ldlog.NewDisabledLoggers())
		require.NoError(t, err)
		assert.Equal(t, []string{"ddb", "fs", "gcd"}, reg.List())
	})

	t.Run("WithFile", func(t *testing.T) {
		reg, err := DefaultRegistryBuilder(&config.File{}, ldlog.NewDisabledLoggers())
		require.NoError(t, err)
		assert.Equal(t, []string{"ddb", "fs", "gcd"}, reg.List())
	})
}
