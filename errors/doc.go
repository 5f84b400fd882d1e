/*
Package errors implements custom error interfaces for the vault.

Each error that crosses an operation boundary wraps one of the root errors
declared in this package (or registered by an extension with Register). A root
error carries a unique numeric code that can be returned to off-chain tooling,
while wrapping adds human readable context and a stack trace that is kept for
logging only.

Use Is to test an error against a root kind:

	if errors.ErrNotFound.Is(err) {
		// handle missing entity
	}

Never compare error messages. Only the root kind is part of the API.
*/
package errors
