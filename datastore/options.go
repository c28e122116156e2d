/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"io"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/suparena/dsclient/internal/logging"
)

// Options configures a backend factory
type Options struct {
	Loggers ldlog.Loggers // Loggers for factory events (default: stderr, Warn and above)
}

// Option is a functional option for configuring a backend factory
type Option func(*Options)

// DefaultOptions returns default factory options
func DefaultOptions() Options {
	return Options{
		Loggers: logging.New(logging.Quiet),
	}
}

// ApplyOptions returns DefaultOptions with opts applied in order
func ApplyOptions(opts ...Option) Options {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// WithLoggers sets the loggers used by the factory
func WithLoggers(loggers ldlog.Loggers) Option {
	return func(opts *Options) {
		opts.Loggers = loggers
	}
}

// ReleaseProbe closes a client that was built only to check it can be built.
// A close failure is logged at Warn and does not fail the probe.
func ReleaseProbe(client io.Closer, loggers ldlog.Loggers) {
	if err := client.Close(); err != nil {
		loggers.Warnf("Closing probe client: %v", err)
	}
}
