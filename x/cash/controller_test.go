package cash

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/store"
	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
)

func TestMoveCoins(t *testing.T) {
	alice := vaulttest.NewCondition().Address()
	bob := vaulttest.NewCondition().Address()

	cases := map[string]struct {
		initial   uint64
		src, dest linera.Address
		amount    uint64
		wantErr   *errors.Error
		wantSrc   uint64
		wantDest  uint64
	}{
		"move part of the balance": {
			initial: 100, src: alice, dest: bob, amount: 40,
			wantSrc: 60, wantDest: 40,
		},
		"move the whole balance": {
			initial: 100, src: alice, dest: bob, amount: 100,
			wantSrc: 0, wantDest: 100,
		},
		"insufficient balance": {
			initial: 100, src: alice, dest: bob, amount: 101,
			wantErr: errors.ErrInsufficientAmount,
			wantSrc: 100, wantDest: 0,
		},
		"zero amount": {
			initial: 100, src: alice, dest: bob, amount: 0,
			wantErr: errors.ErrAmount,
			wantSrc: 100, wantDest: 0,
		},
		"invalid destination": {
			initial: 100, src: alice, dest: linera.Address("short"), amount: 1,
			wantErr: errors.ErrInput,
			wantSrc: 100,
		},
		"transfer to self": {
			initial: 100, src: alice, dest: alice, amount: 30,
			wantSrc: 100, wantDest: 100,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			assert.Nil(t, ctrl.IssueCoins(db, tc.src, tc.initial))

			err := ctrl.MoveCoins(db, tc.src, tc.dest, tc.amount)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
			} else {
				assert.Nil(t, err)
			}

			got, err := ctrl.Balance(db, tc.src)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantSrc, got)
			if tc.dest.Validate() == nil {
				got, err = ctrl.Balance(db, tc.dest)
				assert.Nil(t, err)
				assert.Equal(t, tc.wantDest, got)
			}
		})
	}
}

func TestIssueCoinsOverflow(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	addr := vaulttest.NewCondition().Address()

	assert.Nil(t, ctrl.IssueCoins(db, addr, math.MaxUint64))
	assert.IsErr(t, errors.ErrOverflow, ctrl.IssueCoins(db, addr, 1))

	got, err := ctrl.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)
}

func TestGenesis(t *testing.T) {
	const genesis = `{
		"cash": [
			{"address": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", "amount": 500},
			{"address": "5AE2C58796B0AD48FFE7602EAC3353488C859A2B", "amount": 7}
		]
	}`
	var opts linera.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))

	addr, err := linera.ParseAddress("E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0")
	assert.Nil(t, err)
	got, err := NewController().Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(500), got)
}

func TestGenesisInvalidAddress(t *testing.T) {
	opts := linera.Options{"cash": json.RawMessage(`[{"address": "ABCD", "amount": 1}]`)}
	err := Initializer{}.FromGenesis(opts, store.MemStore())
	assert.IsErr(t, errors.ErrInput, err)
}
