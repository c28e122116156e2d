/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dsclient

import (
	"cloud.google.com/go/datastore"

	"github.com/suparena/dsclient/datastore/gcd"
)

// DefaultClient returns a new Google Cloud Datastore client configured with
// the defaults resolved from the ambient environment (project id,
// credentials, endpoint). It fails with an *errors.ConfigurationError when a
// mandatory setting cannot be resolved.
//
// Each call resolves the configuration again and returns a distinct client,
// which the caller must Close.
func DefaultClient() (*datastore.Client, error) {
	return gcd.DefaultClient()
}
