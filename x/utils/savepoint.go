package utils

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
)

// Savepoint isolates all data written by the wrapped handler.
//
// Deliver commits the written data only if the handler succeeded, so that a
// failed operation has no observable effect. Check always rolls back, so that
// validating an operation never changes the state.
type Savepoint struct{}

var _ linera.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// Check runs the handler on a scratch-pad that is always discarded.
func (Savepoint) Check(ctx linera.Context, store linera.KVStore, tx linera.Tx, next linera.Checker) (*linera.CheckResult, error) {
	cache, err := cacheWrap(store)
	if err != nil {
		return nil, err
	}
	defer cache.Discard()
	return next.Check(ctx, cache, tx)
}

// Deliver runs the handler on a scratch-pad that is written to the store
// only on success.
func (Savepoint) Deliver(ctx linera.Context, store linera.KVStore, tx linera.Tx, next linera.Deliverer) (*linera.DeliverResult, error) {
	cache, err := cacheWrap(store)
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}

func cacheWrap(store linera.KVStore) (linera.KVCacheWrap, error) {
	cstore, ok := store.(linera.CacheableKVStore)
	if !ok {
		return nil, errors.Wrapf(errors.ErrHuman, "%T store cannot be cache wrapped", store)
	}
	return cstore.CacheWrap(), nil
}
