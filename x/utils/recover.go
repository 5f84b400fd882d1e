package utils

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
)

// Recovery is a decorator to recover from panics in operations, so that a
// coding error aborts only the current operation and never the whole process.
type Recovery struct{}

var _ linera.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (Recovery) Check(ctx linera.Context, store linera.KVStore, tx linera.Tx, next linera.Checker) (_ *linera.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (Recovery) Deliver(ctx linera.Context, store linera.KVStore, tx linera.Tx, next linera.Deliverer) (_ *linera.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
