package multisig

import (
	"fmt"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/x/sigs"
)

// multisig reserves 130 ~ 139.
var (
	ErrExpired                   = errors.Register(130, "proposal expired")
	ErrAlreadyExecuted           = errors.Register(131, "proposal already executed")
	ErrInsufficientConfirmations = errors.Register(132, "insufficient confirmations")
	ErrTimeDelayNotMet           = errors.Register(133, "time delay not met")
)

// IsStateErr returns true if the operation was refused because of the
// current state of the vault, as opposed to an invalid request.
func IsStateErr(err error) bool {
	return errors.ErrState.Is(err) ||
		ErrExpired.Is(err) ||
		ErrAlreadyExecuted.Is(err) ||
		ErrInsufficientConfirmations.Is(err) ||
		ErrTimeDelayNotMet.Is(err) ||
		sigs.ErrInvalidNonce.Is(err)
}

// ConfirmationsError is returned when a proposal is executed before it
// collected enough confirmations.
type ConfirmationsError struct {
	Required uint64
	Actual   uint64
}

func (e *ConfirmationsError) Error() string {
	return fmt.Sprintf("%d < %d (required): %s", e.Actual, e.Required, ErrInsufficientConfirmations.Error())
}

// Cause returns the registered root error.
func (e *ConfirmationsError) Cause() error {
	return ErrInsufficientConfirmations
}

// DelayError is returned when a proposal is executed before its time delay
// passed.
type DelayError struct {
	// Remaining is the number of seconds to wait, rounded up.
	Remaining       uint64
	ExecutableAfter linera.Timestamp
	Now             linera.Timestamp
}

func (e *DelayError) Error() string {
	return fmt.Sprintf("must wait %d more seconds: %s", e.Remaining, ErrTimeDelayNotMet.Error())
}

// Cause returns the registered root error.
func (e *DelayError) Cause() error {
	return ErrTimeDelayNotMet
}

// AsConfirmationsError returns the ConfirmationsError wrapped by err, if any.
func AsConfirmationsError(err error) (*ConfirmationsError, bool) {
	e, ok := errors.Find(err, func(e error) bool {
		_, ok := e.(*ConfirmationsError)
		return ok
	}).(*ConfirmationsError)
	return e, ok
}

// AsDelayError returns the DelayError wrapped by err, if any.
func AsDelayError(err error) (*DelayError, bool) {
	e, ok := errors.Find(err, func(e error) bool {
		_, ok := e.(*DelayError)
		return ok
	}).(*DelayError)
	return e, ok
}
