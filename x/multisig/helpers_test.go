package multisig

import (
	"context"
	"testing"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/store"
	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
	"github.com/keyper-labs/linera.dev/x/cash"
)

// t0 is the time all test scenarios start at.
const t0 = linera.Timestamp(1600000000000000)

func seconds(n int64) linera.Timestamp {
	return linera.Timestamp(n * 1000000)
}

type fixture struct {
	db     linera.CacheableKVStore
	ctrl   *Controller
	cash   cash.Controller
	owners []linera.Address
	// conds are the signing conditions of the owners, in the same order.
	conds []linera.Condition
}

// newFixture returns an initialized vault with n owners, given threshold
// and configuration. The vault holds given funds.
func newFixture(t testing.TB, n int, threshold uint64, conf *Configuration, funds uint64) *fixture {
	t.Helper()

	db := store.MemStore()
	owners := make([]linera.Address, n)
	conds := make([]linera.Condition, n)
	for i := range owners {
		conds[i] = vaulttest.NewCondition()
		owners[i] = conds[i].Address()
	}
	assert.Nil(t, NewRegistryBucket().Save(db, &Registry{Owners: owners, Threshold: threshold}))
	if conf != nil {
		assert.Nil(t, SaveConfig(db, conf))
	}
	cashCtrl := cash.NewController()
	if funds > 0 {
		assert.Nil(t, cashCtrl.IssueCoins(db, VaultAddress, funds))
	}
	return &fixture{
		db:     db,
		ctrl:   NewController(cashCtrl),
		cash:   cashCtrl,
		owners: owners,
		conds:  conds,
	}
}

// at returns an operation context at given time.
func at(ts linera.Timestamp) linera.Context {
	return linera.WithBlockTime(context.Background(), ts.Time())
}

// run executes fn atomically: all changes are written on success and
// discarded on failure.
func (f *fixture) run(fn func(db linera.KVStore) error) error {
	cache := f.db.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	return cache.Write()
}

func (f *fixture) submit(ts linera.Timestamp, caller linera.Address, a Action) (*Proposal, error) {
	kind, err := NewProposalKind(a)
	if err != nil {
		return nil, err
	}
	var p *Proposal
	err = f.run(func(db linera.KVStore) error {
		var err error
		p, err = f.ctrl.Submit(at(ts), db, caller, kind)
		return err
	})
	return p, err
}

func (f *fixture) confirm(ts linera.Timestamp, caller linera.Address, id uint64) (uint64, error) {
	var count uint64
	err := f.run(func(db linera.KVStore) error {
		var err error
		count, err = f.ctrl.Confirm(at(ts), db, caller, id)
		return err
	})
	return count, err
}

func (f *fixture) revoke(ts linera.Timestamp, caller linera.Address, id uint64) error {
	return f.run(func(db linera.KVStore) error {
		return f.ctrl.Revoke(at(ts), db, caller, id)
	})
}

func (f *fixture) execute(ts linera.Timestamp, caller linera.Address, id uint64) (*Effect, error) {
	var effect *Effect
	err := f.run(func(db linera.KVStore) error {
		var err error
		effect, err = f.ctrl.Execute(at(ts), db, caller, id)
		return err
	})
	return effect, err
}

func (f *fixture) executeSigned(ts linera.Timestamp, nonce uint64, msg, sig []byte, a Action) (*Effect, error) {
	kind, err := NewProposalKind(a)
	if err != nil {
		return nil, err
	}
	var effect *Effect
	err = f.run(func(db linera.KVStore) error {
		var err error
		effect, err = f.ctrl.ExecuteWithSignature(at(ts), db, nonce, msg, sig, kind)
		return err
	})
	return effect, err
}

func (f *fixture) balance(t testing.TB, addr linera.Address) uint64 {
	t.Helper()
	b, err := f.cash.Balance(f.db, addr)
	assert.Nil(t, err)
	return b
}

func (f *fixture) pending(t testing.TB, id uint64) *Proposal {
	t.Helper()
	p, err := f.ctrl.Pending(f.db, id)
	assert.Nil(t, err)
	return p
}

func (f *fixture) registry(t testing.TB) *Registry {
	t.Helper()
	reg, err := f.ctrl.Registry(f.db)
	assert.Nil(t, err)
	return reg
}
