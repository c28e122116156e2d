package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	dsbackend "github.com/suparena/dsclient/datastore"
)

// CheckRunner executes the check command.
type CheckRunner struct {
	Resolvers []dsbackend.Resolver
	Stdout    io.Writer
}

func checkCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Build a default client for each backend and report failures",
		Description: `Construct (and immediately release) a client for each selected backend.
A backend fails when its mandatory configuration cannot be resolved.

EXAMPLES:
  dsclient check                Probe all backends
  dsclient check -b ddb         Probe DynamoDB only`,
		Flags: []cli.Flag{
			backendFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			resolvers, err := selectResolvers(s.registry, cmd.StringSlice("backend"))
			if err != nil {
				return err
			}

			r := &CheckRunner{
				Resolvers: resolvers,
				Stdout:    cmd.Root().Writer,
			}
			return r.Run(ctx)
		},
	}
}

// Run probes every backend concurrently and prints one line per backend.
func (r *CheckRunner) Run(ctx context.Context) error {
	results := make([]error, len(r.Resolvers))

	var g errgroup.Group
	for i, resolver := range r.Resolvers {
		g.Go(func() error {
			results[i] = resolver.Probe(ctx)
			return nil // a failed probe must not cancel the others
		})
	}
	_ = g.Wait()

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	for i, resolver := range r.Resolvers {
		if err := results[i]; err != nil {
			_, _ = fmt.Fprintf(r.Stdout, "%s %s: %v\n", red("FAIL"), resolver.Backend(), err)
			continue
		}
		_, _ = fmt.Fprintf(r.Stdout, "%s %s\n", green("ok"), resolver.Backend())
	}

	failed := lo.CountBy(results, func(err error) bool { return err != nil })
	if failed > 0 {
		return fmt.Errorf("%d of %d backends failed", failed, len(results))
	}
	return nil
}
