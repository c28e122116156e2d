/*
Package errors provides semantic error types for dsclient.

The central type is ConfigurationError, returned by every backend factory when
a mandatory setting (project id, region, credentials) cannot be resolved from
the ambient environment:

	client, err := gcd.DefaultClient()
	if err != nil {
	    if errors.IsConfigurationError(err) {
	        // nothing to connect to; the wrapped cause is the library's error
	    }
	    return err
	}

ConfigurationError keeps the client library's error as its cause, so
errors.As against the library's own error types still works on the result.

The registry and configuration loader use NotFoundError, AlreadyExistsError
and ValidationError, each matching its sentinel through errors.Is.
*/
package errors
