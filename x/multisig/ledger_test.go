package multisig

import (
	"testing"

	"github.com/keyper-labs/linera.dev/store"
	"github.com/keyper-labs/linera.dev/vaulttest"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
)

func TestConfirmationLedger(t *testing.T) {
	db := store.MemStore()
	l := NewConfirmationLedger()
	owner := vaulttest.NewCondition().Address()

	ids, err := l.IDs(db, owner)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(ids))

	for _, id := range []uint64{5, 1, 3} {
		added, err := l.Confirm(db, owner, id)
		assert.Nil(t, err)
		assert.Equal(t, true, added)
	}
	added, err := l.Confirm(db, owner, 3)
	assert.Nil(t, err)
	assert.Equal(t, false, added)

	ids, err = l.IDs(db, owner)
	assert.Nil(t, err)
	assert.Equal(t, []uint64{1, 3, 5}, ids)

	ok, err := l.HasConfirmed(db, owner, 3)
	assert.Nil(t, err)
	assert.Equal(t, true, ok)
	ok, err = l.HasConfirmed(db, owner, 4)
	assert.Nil(t, err)
	assert.Equal(t, false, ok)

	// other owners are independent
	ok, err = l.HasConfirmed(db, vaulttest.NewCondition().Address(), 3)
	assert.Nil(t, err)
	assert.Equal(t, false, ok)

	removed, err := l.Revoke(db, owner, 4)
	assert.Nil(t, err)
	assert.Equal(t, false, removed)

	for _, id := range []uint64{3, 1, 5} {
		removed, err := l.Revoke(db, owner, id)
		assert.Nil(t, err)
		assert.Equal(t, true, removed)
	}

	// an empty record is deleted
	exists, err := l.bucket.Has(db, owner)
	assert.Nil(t, err)
	assert.Equal(t, false, exists)
}

func TestConfirmationRecordValidate(t *testing.T) {
	cases := map[string]struct {
		ids     []uint64
		wantErr bool
	}{
		"empty":    {ids: nil},
		"sorted":   {ids: []uint64{0, 2, 9}},
		"unsorted": {ids: []uint64{2, 1}, wantErr: true},
		"repeated": {ids: []uint64{1, 1}, wantErr: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := (&ConfirmationRecord{ProposalIDs: tc.ids}).Validate()
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}
