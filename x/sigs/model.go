package sigs

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/crypto"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/orm"
)

// BucketName is where we store the accounts
const BucketName = "sigs"

// Validate requires the public key, as only a signer has a state.
func (m *UserData) Validate() error {
	if m.Pubkey == nil || len(m.Pubkey.Ed25519) == 0 {
		return errors.Field("Pubkey", errors.ErrEmpty, "required")
	}
	return nil
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (m *UserData) CheckAndIncrementSequence(expected uint64) error {
	if m.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", m.Sequence, expected)
	}
	// The greatest sequence a JavaScript client can represent is 2^53 - 1.
	const maxSequenceValue = (1 << 53) - 1
	if m.Sequence >= maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	m.Sequence++
	return nil
}

// Bucket stores signer states keyed by the signer address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket creates the proper bucket for this extension
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &UserData{}),
	}
}

// GetOrCreate returns the state of the owner of given public key,
// initializing a new one if none exist.
func (b Bucket) GetOrCreate(db linera.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	var user UserData
	switch err := b.One(db, pubkey.Address(), &user); {
	case err == nil:
		return &user, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{Pubkey: pubkey}, nil
	default:
		return nil, err
	}
}
