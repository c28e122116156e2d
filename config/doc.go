/*
Package config loads the optional configuration sources layered on top of the
process environment.

Two sources are supported:
  - .env files, loaded into the environment with godotenv. Existing variables
    always win.
  - A YAML file whose sections override the per-backend defaults:

	logLevel: info
	datastore:
	  projectId: my-project
	  databaseId: tenant-a
	firestore:
	  emulatorHost: localhost:8080
	dynamodb:
	  region: eu-west-1
	  endpoint: http://localhost:8000

Unknown keys are rejected so that typos do not silently fall back to defaults.
*/
package config
