package utils

import (
	"context"
	"testing"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/store"
	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

func TestSavepoint(t *testing.T) {
	// always written before calling functions
	ok, ov := []byte("demo"), []byte("data")
	// key, value to try to write in the handler
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}

	cases := map[string]struct {
		handler linera.Handler
		check   bool
		wantErr *errors.Error
		written [][]byte
		missing [][]byte
	}{
		"deliver success is written": {
			handler: vaulttest.WriteHandler{Key: nk, Value: nv},
			written: [][]byte{ok, nk},
		},
		"deliver failure is rolled back": {
			handler: vaulttest.WriteHandler{Key: nk, Value: nv, Err: errors.ErrState},
			wantErr: errors.ErrState,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"check success is rolled back": {
			handler: vaulttest.WriteHandler{Key: nk, Value: nv},
			check:   true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"check failure is rolled back": {
			handler: vaulttest.WriteHandler{Key: nk, Value: nv, Err: errors.ErrNotFound},
			check:   true,
			wantErr: errors.ErrNotFound,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore().CacheWrap()
			assert.Nil(t, db.Set(ok, ov))

			h := vaulttest.Decorate(tc.handler, NewSavepoint())
			ctx := context.Background()
			tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/savepoint"}}
			var err error
			if tc.check {
				_, err = h.Check(ctx, db, tx)
			} else {
				_, err = h.Deliver(ctx, db, tx)
			}
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
			} else {
				assert.Nil(t, err)
			}

			for _, k := range tc.written {
				has, err := db.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, true, has)
			}
			for _, k := range tc.missing {
				has, err := db.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, false, has)
			}
		})
	}
}

func TestSavepointRequiresCacheableStore(t *testing.T) {
	h := vaulttest.Decorate(&vaulttest.Handler{}, NewSavepoint())
	_, err := h.Deliver(context.Background(), store.EmptyKVStore{}, &vaulttest.Tx{})
	assert.IsErr(t, errors.ErrHuman, err)
}

func TestRecovery(t *testing.T) {
	h := vaulttest.Decorate(vaulttest.PanicHandler{Msg: "boom"}, NewRecovery())
	ctx := context.Background()
	db := store.MemStore()
	tx := &vaulttest.Tx{}

	_, err := h.Check(ctx, db, tx)
	assert.IsErr(t, errors.ErrPanic, err)
	_, err = h.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrPanic, err)
}

func TestLogging(t *testing.T) {
	ctx := linera.WithLogger(context.Background(), log.NewNopLogger())
	db := store.MemStore()
	tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/logging"}}

	h := vaulttest.Decorate(&vaulttest.Handler{
		DeliverResult: linera.DeliverResult{Log: "done"},
	}, NewLogging())
	res, err := h.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, "done", res.Log)

	h = vaulttest.Decorate(&vaulttest.Handler{CheckErr: errors.ErrUnauthorized}, NewLogging())
	_, err = h.Check(ctx, db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestActionTagger(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "multisig/submit"}}

	h := vaulttest.Decorate(&vaulttest.Handler{}, NewActionTagger())
	res, err := h.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, []common.KVPair{
		{Key: []byte(ActionKey), Value: []byte("multisig/submit")},
	}, res.Tags)

	failing := vaulttest.Decorate(&vaulttest.Handler{DeliverErr: errors.ErrState}, NewActionTagger())
	_, err = failing.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrState, err)
}
