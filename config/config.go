/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	dsbackend "github.com/suparena/dsclient/datastore"
	"github.com/suparena/dsclient/datastore/ddb"
	"github.com/suparena/dsclient/datastore/fs"
	"github.com/suparena/dsclient/datastore/gcd"
	"github.com/suparena/dsclient/errors"
	"github.com/suparena/dsclient/internal/logging"
)

// LoadDotEnv loads KEY=value pairs into the process environment.
// Variables already present in the environment are left untouched.
// Without paths the default .env file is used and may be absent.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !stderrors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// File is the optional YAML configuration. Every value set here overrides the
// corresponding environment-derived default.
type File struct {
	LogLevel  string            `yaml:"logLevel,omitempty"`
	Datastore gcd.Configuration `yaml:"datastore,omitempty"`
	Firestore fs.Configuration  `yaml:"firestore,omitempty"`
	DynamoDB  ddb.Configuration `yaml:"dynamodb,omitempty"`
}

// LoadFile reads and validates the configuration file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML configuration. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the values that cannot be checked by the decoder.
func (f *File) Validate() error {
	if _, err := logging.ParseLevel(f.LogLevel); err != nil {
		return errors.NewValidationError("logLevel", err.Error())
	}
	return nil
}

// Resolvers returns one resolver per backend with the file's values as overrides.
func (f *File) Resolvers(opts ...dsbackend.Option) []dsbackend.Resolver {
	return []dsbackend.Resolver{
		gcd.NewResolver(f.Datastore, opts...),
		fs.NewResolver(f.Firestore, opts...),
		ddb.NewResolver(f.DynamoDB, opts...),
	}
}
