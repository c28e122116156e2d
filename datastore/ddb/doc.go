/*
Package ddb builds Amazon DynamoDB clients from ambient configuration.

Configuration is loaded with config.LoadDefaultConfig, so the usual AWS
sources apply: AWS_REGION / AWS_DEFAULT_REGION, AWS_PROFILE, the shared
config and credentials files, environment credentials and instance roles.

	client, err := ddb.DefaultClient()

A region and retrievable credentials are mandatory; without them the factory
fails with a ConfigurationError instead of returning a client that fails on
first use. Credentials are retrieved once at construction, so sources that
need the network (SSO, assume-role, instance roles) are contacted then.

Explicit settings override the environment:

	client, err := ddb.NewClient(ctx, ddb.Configuration{
	    Region:   "us-west-2",
	    Endpoint: "http://localhost:8000", // DynamoDB Local
	})

Static keys are used only when both AccessKeyID and SecretAccessKey are set.
*/
package ddb
