package multisig

import (
	"sort"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/orm"
)

const ledgerBucketName = "msig_conf"

// Validate ensures the IDs are sorted and unique.
func (m *ConfirmationRecord) Validate() error {
	for i := 1; i < len(m.ProposalIDs); i++ {
		if m.ProposalIDs[i-1] >= m.ProposalIDs[i] {
			return errors.Field("ProposalIDs", errors.ErrModel, "not sorted or not unique")
		}
	}
	return nil
}

func (m *ConfirmationRecord) has(id uint64) (int, bool) {
	i := sort.Search(len(m.ProposalIDs), func(i int) bool { return m.ProposalIDs[i] >= id })
	return i, i < len(m.ProposalIDs) && m.ProposalIDs[i] == id
}

// ConfirmationLedger records, for each owner, the proposals it confirmed.
// Confirm and Revoke are idempotent.
type ConfirmationLedger struct {
	bucket orm.ModelBucket
}

// NewConfirmationLedger returns a ledger using the default bucket.
func NewConfirmationLedger() ConfirmationLedger {
	return ConfirmationLedger{
		bucket: orm.NewModelBucket(ledgerBucketName, &ConfirmationRecord{}),
	}
}

func (l ConfirmationLedger) load(db linera.ReadOnlyKVStore, owner linera.Address) (*ConfirmationRecord, error) {
	var rec ConfirmationRecord
	switch err := l.bucket.One(db, owner, &rec); {
	case err == nil:
		return &rec, nil
	case errors.ErrNotFound.Is(err):
		return &ConfirmationRecord{}, nil
	default:
		return nil, errors.Wrap(err, "confirmation record")
	}
}

// IDs returns the sorted IDs of all proposals the owner confirmed and did
// not revoke.
func (l ConfirmationLedger) IDs(db linera.ReadOnlyKVStore, owner linera.Address) ([]uint64, error) {
	rec, err := l.load(db, owner)
	if err != nil {
		return nil, err
	}
	return rec.ProposalIDs, nil
}

// HasConfirmed returns true if the owner confirmed the proposal.
func (l ConfirmationLedger) HasConfirmed(db linera.ReadOnlyKVStore, owner linera.Address, id uint64) (bool, error) {
	rec, err := l.load(db, owner)
	if err != nil {
		return false, err
	}
	_, ok := rec.has(id)
	return ok, nil
}

// Confirm records the confirmation. It returns false if the owner already
// confirmed the proposal, in which case nothing is written.
func (l ConfirmationLedger) Confirm(db linera.KVStore, owner linera.Address, id uint64) (bool, error) {
	rec, err := l.load(db, owner)
	if err != nil {
		return false, err
	}
	i, ok := rec.has(id)
	if ok {
		return false, nil
	}
	ids := make([]uint64, 0, len(rec.ProposalIDs)+1)
	ids = append(ids, rec.ProposalIDs[:i]...)
	ids = append(ids, id)
	rec.ProposalIDs = append(ids, rec.ProposalIDs[i:]...)
	if err := l.bucket.Put(db, owner, rec); err != nil {
		return false, err
	}
	return true, nil
}

// Revoke removes the confirmation. It returns false if the owner never
// confirmed the proposal, in which case nothing is written.
func (l ConfirmationLedger) Revoke(db linera.KVStore, owner linera.Address, id uint64) (bool, error) {
	rec, err := l.load(db, owner)
	if err != nil {
		return false, err
	}
	i, ok := rec.has(id)
	if !ok {
		return false, nil
	}
	rec.ProposalIDs = append(rec.ProposalIDs[:i], rec.ProposalIDs[i+1:]...)
	if len(rec.ProposalIDs) == 0 {
		return true, l.bucket.Delete(db, owner)
	}
	if err := l.bucket.Put(db, owner, rec); err != nil {
		return false, err
	}
	return true, nil
}

// Forget deletes all confirmations of the owner and returns the IDs of the
// proposals it had confirmed.
func (l ConfirmationLedger) Forget(db linera.KVStore, owner linera.Address) ([]uint64, error) {
	rec, err := l.load(db, owner)
	if err != nil {
		return nil, err
	}
	if len(rec.ProposalIDs) == 0 {
		return nil, nil
	}
	if err := l.bucket.Delete(db, owner); err != nil {
		return nil, err
	}
	return rec.ProposalIDs, nil
}
