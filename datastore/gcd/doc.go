/*
Package gcd builds Google Cloud Datastore clients from ambient configuration.

DefaultClient takes no arguments. It reads the environment, falls back to
Application Default Credentials for the project id, and returns a new
*datastore.Client:

	client, err := gcd.DefaultClient()
	if err != nil {
	    return err // *errors.ConfigurationError
	}
	defer client.Close()

Environment:

	DATASTORE_PROJECT_ID, GOOGLE_CLOUD_PROJECT, GCLOUD_PROJECT  project id, first set wins
	DATASTORE_DATABASE_ID                                       named database (default database when empty)
	DATASTORE_EMULATOR_HOST                                     emulator host:port, disables authentication
	GOOGLE_APPLICATION_CREDENTIALS                              service account key file

NewClient accepts a Configuration whose non-empty fields override the
environment. ResolveDefaultConfiguration and BuildClient expose the two steps
separately.
*/
package gcd
