package multisig

import (
	"testing"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/store"
	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
)

func TestRegistryValidate(t *testing.T) {
	a := vaulttest.NewCondition().Address()
	b := vaulttest.NewCondition().Address()

	tooMany := make([]linera.Address, MaxOwners+1)
	for i := range tooMany {
		tooMany[i] = vaulttest.NewCondition().Address()
	}

	cases := map[string]struct {
		reg     Registry
		wantErr *errors.Error
	}{
		"valid": {
			reg:     Registry{Owners: []linera.Address{a, b}, Threshold: 2},
			wantErr: nil,
		},
		"no owners": {
			reg:     Registry{Threshold: 1},
			wantErr: errors.ErrEmpty,
		},
		"too many owners": {
			reg:     Registry{Owners: tooMany, Threshold: 1},
			wantErr: errors.ErrInput,
		},
		"duplicated owner": {
			reg:     Registry{Owners: []linera.Address{a, b, a}, Threshold: 1},
			wantErr: errors.ErrDuplicate,
		},
		"invalid owner": {
			reg:     Registry{Owners: []linera.Address{a, linera.Address("short")}, Threshold: 1},
			wantErr: errors.ErrInput,
		},
		"zero threshold": {
			reg:     Registry{Owners: []linera.Address{a}, Threshold: 0},
			wantErr: errors.ErrInput,
		},
		"threshold above owners": {
			reg:     Registry{Owners: []linera.Address{a, b}, Threshold: 3},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.reg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}

func TestRegistryMutations(t *testing.T) {
	a := vaulttest.NewCondition().Address()
	b := vaulttest.NewCondition().Address()
	c := vaulttest.NewCondition().Address()
	d := vaulttest.NewCondition().Address()

	reg := &Registry{Owners: []linera.Address{a, b, c}, Threshold: 2}
	clone := reg.Clone()

	clone.remove(b)
	assert.Equal(t, []linera.Address{a, c}, clone.Owners)

	clone.add(d)
	clone.add(d)
	assert.Equal(t, []linera.Address{a, c, d}, clone.Owners)

	clone.replace(a, b)
	assert.Equal(t, []linera.Address{b, c, d}, clone.Owners)
	assert.Equal(t, false, clone.Has(a))

	// the original is not affected
	assert.Equal(t, []linera.Address{a, b, c}, reg.Owners)
}

func TestRegistryBucket(t *testing.T) {
	db := store.MemStore()
	b := NewRegistryBucket()

	_, err := b.Load(db)
	assert.IsErr(t, errors.ErrNotFound, err)

	// invalid registries are never stored
	err = b.Save(db, &Registry{Threshold: 1})
	assert.IsErr(t, errors.ErrEmpty, err)

	want := &Registry{
		Owners:    []linera.Address{vaulttest.NewCondition().Address()},
		Threshold: 1,
	}
	assert.Nil(t, b.Save(db, want))
	got, err := b.Load(db)
	assert.Nil(t, err)
	assert.Equal(t, want, got)
}
