// Package logging builds the ldlog loggers shared by the backends and the CLI.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// ParseLevel maps a level name (debug, info, warn, error, none) to an ldlog level.
// An empty name means info.
func ParseLevel(name string) (ldlog.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return ldlog.Debug, nil
	case "", "info":
		return ldlog.Info, nil
	case "warn", "warning":
		return ldlog.Warn, nil
	case "error":
		return ldlog.Error, nil
	case "none", "off":
		return ldlog.None, nil
	}
	return ldlog.None, fmt.Errorf("unknown log level %q", name)
}

// Quiet is the level library calls log at unless given loggers: client
// construction stays silent and only warnings reach stderr.
const Quiet = ldlog.Warn

// New returns loggers writing to stderr at the given minimum level.
func New(level ldlog.LogLevel) ldlog.Loggers {
	return newLoggers(os.Stderr, level)
}

func newLoggers(w io.Writer, level ldlog.LogLevel) ldlog.Loggers {
	loggers := ldlog.NewDefaultLoggers()
	loggers.SetBaseLogger(log.New(w, "[dsclient] ", log.LstdFlags))
	loggers.SetMinLevel(level)
	return loggers
}

// WithPrefix returns a copy of loggers tagged with a component prefix.
func WithPrefix(loggers ldlog.Loggers, prefix string) ldlog.Loggers {
	loggers.SetPrefix(prefix + ":")
	return loggers
}
