package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/suparena/dsclient/internal/cli"
)

func main() {
	if err := cli.App.Run(context.Background(), os.Args); err != nil {
		red := color.New(color.FgRed).SprintFunc()
		_, _ = fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))
		os.Exit(1)
	}
}
