package app

import (
	"context"
	"testing"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/store"
	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
)

// recorder is a decorator appending its name to a shared list.
type recorder struct {
	name  string
	calls *[]string
}

func (r *recorder) Check(ctx linera.Context, db linera.KVStore, tx linera.Tx, next linera.Checker) (*linera.CheckResult, error) {
	*r.calls = append(*r.calls, r.name)
	return next.Check(ctx, db, tx)
}

func (r *recorder) Deliver(ctx linera.Context, db linera.KVStore, tx linera.Tx, next linera.Deliverer) (*linera.DeliverResult, error) {
	*r.calls = append(*r.calls, r.name)
	return next.Deliver(ctx, db, tx)
}

func TestChainOrder(t *testing.T) {
	var calls []string
	var missing *recorder

	h := &vaulttest.Handler{}
	stack := ChainDecorators(
		&recorder{name: "a", calls: &calls},
		missing,
		nil,
	).Chain(
		&recorder{name: "b", calls: &calls},
	).WithHandler(h)

	tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "vault/op"}}
	_, err := stack.Deliver(context.Background(), store.MemStore(), tx)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Equal(t, 1, h.DeliverCallCount())

	_, err = stack.Check(context.Background(), store.MemStore(), tx)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a", "b", "a", "b"}, calls)
	assert.Equal(t, 1, h.CheckCallCount())
}
