package app

import (
	"context"
	"testing"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/store"
	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	h := &vaulttest.Handler{DeliverResult: linera.DeliverResult{Data: []byte("ok")}}
	r.Handle("vault/op", h)

	ctx := context.Background()
	db := store.MemStore()

	_, err := r.Check(ctx, db, &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "vault/op"}})
	assert.Nil(t, err)
	res, err := r.Deliver(ctx, db, &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "vault/op"}})
	assert.Nil(t, err)
	assert.Equal(t, []byte("ok"), res.Data)
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())

	_, err = r.Deliver(ctx, db, &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "vault/other"}})
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = r.Check(ctx, db, &vaulttest.Tx{})
	assert.IsErr(t, errors.ErrEmpty, err)

	_, err = r.Check(ctx, db, &vaulttest.Tx{Err: errors.ErrInput})
	assert.IsErr(t, errors.ErrInput, err)
}

func TestRouterRegistration(t *testing.T) {
	cases := map[string]struct {
		paths     []string
		wantPanic bool
	}{
		"distinct paths": {
			paths: []string{"multisig/submit", "multisig/confirm"},
		},
		"duplicated path": {
			paths:     []string{"multisig/submit", "multisig/submit"},
			wantPanic: true,
		},
		"missing extension": {
			paths:     []string{"submit"},
			wantPanic: true,
		},
		"upper case": {
			paths:     []string{"Multisig/Submit"},
			wantPanic: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			register := func() {
				r := NewRouter()
				for _, p := range tc.paths {
					r.Handle(p, &vaulttest.Handler{})
				}
			}
			if tc.wantPanic {
				assert.Panics(t, register)
			} else {
				register()
			}
		})
	}
}
