/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/samber/lo"

	dsbackend "github.com/suparena/dsclient/datastore"
	"github.com/suparena/dsclient/errors"
	"github.com/suparena/dsclient/internal/env"
	"github.com/suparena/dsclient/internal/logging"
)

// Backend is the registry name of the DynamoDB backend.
const Backend = "ddb"

// Configuration holds the settings needed to build a DynamoDB client.
// Fields left empty are resolved by the AWS SDK's default chain.
type Configuration struct {
	Region          string `json:"region,omitempty" yaml:"region,omitempty"`
	Profile         string `json:"profile,omitempty" yaml:"profile,omitempty"`
	Endpoint        string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	AccessKeyID     string `json:"accessKeyId,omitempty" yaml:"accessKeyId,omitempty"`
	SecretAccessKey string `json:"-" yaml:"secretAccessKey,omitempty"`
}

// Override returns c with every non-empty field of other applied on top.
func (c Configuration) Override(other Configuration) Configuration {
	return Configuration{
		Region:          lo.CoalesceOrEmpty(other.Region, c.Region),
		Profile:         lo.CoalesceOrEmpty(other.Profile, c.Profile),
		Endpoint:        lo.CoalesceOrEmpty(other.Endpoint, c.Endpoint),
		AccessKeyID:     lo.CoalesceOrEmpty(other.AccessKeyID, c.AccessKeyID),
		SecretAccessKey: lo.CoalesceOrEmpty(other.SecretAccessKey, c.SecretAccessKey),
	}
}

// hasStaticCredentials reports whether both halves of a static key pair are set.
func (c Configuration) hasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// configurationFromEnv only records what is worth reporting; credentials in
// the environment are read by the SDK itself.
func configurationFromEnv() Configuration {
	return Configuration{
		Region:   env.First("AWS_REGION", "AWS_DEFAULT_REGION"),
		Profile:  env.First("AWS_PROFILE", "AWS_DEFAULT_PROFILE"),
		Endpoint: env.First("AWS_ENDPOINT_URL_DYNAMODB", "AWS_ENDPOINT_URL"),
	}
}

// LoadAWSConfig runs the SDK's default configuration loading for c. A region
// and retrievable credentials are mandatory.
func LoadAWSConfig(ctx context.Context, c Configuration) (aws.Config, error) {
	var loadOpts []func(*config.LoadOptions) error
	if c.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(c.Region))
	}
	if c.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(c.Profile))
	}
	if c.hasStaticCredentials() {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, errors.NewConfigurationError(Backend, "AWS configuration", err)
	}
	if cfg.Region == "" {
		return aws.Config{}, errors.NewConfigurationError(Backend, "region", nil)
	}
	if cfg.Credentials == nil {
		return aws.Config{}, errors.NewConfigurationError(Backend, "credentials", nil)
	}
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return aws.Config{}, errors.NewConfigurationError(Backend, "credentials", err)
	}
	return cfg, nil
}

func complete(ctx context.Context, c Configuration) (Configuration, error) {
	cfg, err := LoadAWSConfig(ctx, c)
	if err != nil {
		return c, err
	}
	c.Region = cfg.Region
	return c, nil
}

// ResolveDefaultConfiguration resolves the configuration a default client is
// built with. A missing region, missing credentials or an unreadable shared
// profile is a ConfigurationError.
func ResolveDefaultConfiguration(ctx context.Context) (Configuration, error) {
	return complete(ctx, configurationFromEnv())
}

// BuildClient constructs a DynamoDB client for c.
func BuildClient(ctx context.Context, c Configuration, opts ...dsbackend.Option) (*sdk.Client, error) {
	loggers := logging.WithPrefix(dsbackend.ApplyOptions(opts...).Loggers, Backend)

	cfg, err := LoadAWSConfig(ctx, c)
	if err != nil {
		return nil, err
	}

	client := sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	})

	loggers.Infof("DynamoDB client initialized in region %q", cfg.Region)
	return client, nil
}

// NewClient builds a client from the environment defaults overlaid with overrides.
func NewClient(ctx context.Context, overrides Configuration, opts ...dsbackend.Option) (*sdk.Client, error) {
	return BuildClient(ctx, configurationFromEnv().Override(overrides), opts...)
}

// DefaultClient returns a new DynamoDB client configured from the ambient environment.
func DefaultClient() (*sdk.Client, error) {
	return NewClient(context.Background(), Configuration{})
}
