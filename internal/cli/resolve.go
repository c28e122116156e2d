package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	dsbackend "github.com/suparena/dsclient/datastore"
)

// Output formats accepted by the resolve command.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ResolveRunner executes the resolve command.
type ResolveRunner struct {
	Resolvers []dsbackend.Resolver
	Stdout    io.Writer
}

func resolveCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "resolve",
		Usage: "Print the settings each backend's default client would use",
		Description: `Resolve the default configuration of the selected backends without
connecting to them. Secrets are never printed.

EXAMPLES:
  dsclient resolve                          All backends as YAML
  dsclient resolve -b gcd --format json     Datastore settings as JSON`,
		Flags: []cli.Flag{
			backendFlag(),
			&cli.StringFlag{
				Name:  "format",
				Value: FormatYAML,
				Usage: "Output format: yaml or json",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			resolvers, err := selectResolvers(s.registry, cmd.StringSlice("backend"))
			if err != nil {
				return err
			}

			r := &ResolveRunner{
				Resolvers: resolvers,
				Stdout:    cmd.Root().Writer,
			}
			return r.Run(ctx, cmd.String("format"))
		},
	}
}

// Run resolves every backend concurrently and writes the settings in order.
func (r *ResolveRunner) Run(ctx context.Context, format string) error {
	if format != FormatYAML && format != FormatJSON {
		return fmt.Errorf("unsupported format %q: use %s or %s", format, FormatYAML, FormatJSON)
	}

	settings := make([]*dsbackend.Settings, len(r.Resolvers))
	g, gctx := errgroup.WithContext(ctx)
	for i, resolver := range r.Resolvers {
		g.Go(func() error {
			s, err := resolver.Resolve(gctx)
			if err != nil {
				return err
			}
			settings[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if format == FormatJSON {
		enc := json.NewEncoder(r.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(settings)
	}

	enc := yaml.NewEncoder(r.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(settings); err != nil {
		return err
	}
	return enc.Close()
}
