/*
Package datastore defines what every dsclient backend has in common.

Each backend package (gcd, fs, ddb) builds a client for one managed datastore
service from ambient configuration. The packages share a two-step contract:

	cfg, err := gcd.ResolveDefaultConfiguration(ctx) // environment → Configuration
	client, err := gcd.BuildClient(ctx, cfg)         // Configuration → client

and expose a Resolver so tools can inspect the resolved configuration without
depending on the concrete client types:

	type Resolver interface {
	    Backend() string
	    Resolve(ctx context.Context) (*Settings, error)
	    Probe(ctx context.Context) error
	}

Settings never carries secrets; it is safe to print or log.

Implementations:
  - gcd: Google Cloud Datastore
  - fs: Cloud Firestore
  - ddb: Amazon DynamoDB
  - mock: in-memory Resolver for tests
*/
package datastore
