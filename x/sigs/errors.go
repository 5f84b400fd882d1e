package sigs

import (
	"fmt"

	"github.com/keyper-labs/linera.dev/errors"
)

// sigs reserves 120 ~ 129.
var (
	// ErrInvalidSequence is returned when a transaction signature carries
	// a sequence different than the one stored for the signer.
	ErrInvalidSequence = errors.Register(120, "invalid sequence number")

	// ErrInvalidNonce is returned when the nonce of a signature authorized
	// operation is different than the expected one.
	ErrInvalidNonce = errors.Register(121, "invalid nonce")
)

// NonceError reports the exact nonce mismatch of a signature authorized
// operation.
type NonceError struct {
	Expected uint64
	Got      uint64
}

func (e *NonceError) Error() string {
	return fmt.Sprintf("expected nonce %d, got %d: %s", e.Expected, e.Got, ErrInvalidNonce.Error())
}

// Cause returns the registered root error.
func (e *NonceError) Cause() error {
	return ErrInvalidNonce
}
