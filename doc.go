/*
Package dsclient returns default-configured clients for managed cloud datastores.

The main entry point takes no arguments and mirrors the client libraries'
own "default instance" constructors:

	client, err := dsclient.DefaultClient() // *datastore.Client (Google Cloud Datastore)
	if err != nil {
	    return err
	}
	defer client.Close()

Project id, credentials and endpoint come from the ambient environment
(DATASTORE_PROJECT_ID, DATASTORE_EMULATOR_HOST, Application Default
Credentials, ...). When a mandatory setting is missing the call fails with an
*errors.ConfigurationError that wraps the client library's error. Nothing is
cached: every call resolves the environment again and returns a new client.

Backends:
  - datastore/gcd: Google Cloud Datastore
  - datastore/fs: Cloud Firestore
  - datastore/ddb: Amazon DynamoDB

Each backend also exposes NewClient(ctx, overrides) for explicit settings and a
datastore.Resolver for inspection. Registry collects resolvers by name:

	reg := dsclient.DefaultRegistry()
	r, _ := reg.Get("gcd")
	settings, err := r.Resolve(ctx)

The dsclient command (cmd/dsclient) prints resolved settings and probes client
construction for each backend.
*/
package dsclient
