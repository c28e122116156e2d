// Package cli provides the command-line interface for dsclient.
package cli

import (
	"context"
	"fmt"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/suparena/dsclient"
	dsbackend "github.com/suparena/dsclient/datastore"
	"github.com/suparena/dsclient/config"
	"github.com/suparena/dsclient/internal/logging"
)

// RegistryBuilder creates the registry the commands work on once global flags
// are parsed. file is nil when no configuration file was given.
type RegistryBuilder func(file *config.File, loggers ldlog.Loggers) (*dsclient.Registry, error)

// DefaultRegistryBuilder registers the gcd, fs and ddb resolvers, using the
// configuration file sections as overrides when present.
func DefaultRegistryBuilder(file *config.File, loggers ldlog.Loggers) (*dsclient.Registry, error) {
	opt := dsbackend.WithLoggers(loggers)
	if file == nil {
		return dsclient.DefaultRegistry(opt), nil
	}

	reg := dsclient.NewRegistry()
	for _, r := range file.Resolvers(opt) {
		if err := reg.Register(r); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// session holds what the root command prepares for its subcommands.
type session struct {
	build    RegistryBuilder
	registry *dsclient.Registry
}

func (s *session) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var envFiles []string
	if path := cmd.String("env-file"); path != "" {
		envFiles = append(envFiles, path)
	}
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return ctx, err
	}

	var file *config.File
	if path := cmd.String("config"); path != "" {
		f, err := config.LoadFile(path)
		if err != nil {
			return ctx, err
		}
		file = f
	}

	levelName := cmd.String("log-level")
	if file != nil {
		levelName = lo.CoalesceOrEmpty(levelName, file.LogLevel)
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return ctx, err
	}

	reg, err := s.build(file, logging.New(level))
	if err != nil {
		return ctx, err
	}
	s.registry = reg
	return ctx, nil
}

// MakeApp creates a new CLI application instance.
func MakeApp(build RegistryBuilder) *cli.Command {
	s := &session{build: build}
	info := dsclient.GetVersionInfo()

	return &cli.Command{
		Name:    "dsclient",
		Usage:   "Inspect and probe the default datastore client configuration",
		Version: fmt.Sprintf("%s (commit %s, built %s, %s)", info.Version, info.GitCommit, info.BuildDate, info.GoVersion),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file overriding environment defaults",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Load environment variables from `FILE` (default: .env if present)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error or none",
			},
		},
		Before: s.before,
		Commands: []*cli.Command{
			resolveCommand(s),
			checkCommand(s),
		},
		CommandNotFound: func(_ context.Context, cmd *cli.Command, command string) {
			_ = cli.ShowAppHelp(cmd)
			w := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
			_, _ = fmt.Fprintf(w, "\nCommand not found: %s\n", command)
		},
	}
}

// App is the main CLI application.
var App = MakeApp(DefaultRegistryBuilder)

// backendFlag returns a new --backend flag for each command.
func backendFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "backend",
		Aliases: []string{"b"},
		Usage:   "Backend to use (gcd, fs, ddb); repeatable, all when omitted",
	}
}

// selectResolvers returns the resolvers named by names, or every registered
// resolver when names is empty.
func selectResolvers(reg *dsclient.Registry, names []string) ([]dsbackend.Resolver, error) {
	if len(names) == 0 {
		names = reg.List()
	}

	resolvers := make([]dsbackend.Resolver, 0, len(names))
	for _, name := range lo.Uniq(names) {
		r, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		resolvers = append(resolvers, r)
	}
	return resolvers, nil
}
