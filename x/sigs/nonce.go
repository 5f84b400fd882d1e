package sigs

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/keyper-labs/linera.dev/orm"
)

// nonceSeq counts signature authorized operations. It is independent from
// any proposal counter and from per signer sequences.
var nonceSeq = orm.NewSequence(BucketName, "nonce")

// CurrentNonce returns the nonce the next signature authorized operation
// must carry.
func CurrentNonce(db linera.ReadOnlyKVStore) (uint64, error) {
	return nonceSeq.Current(db)
}

// CheckNonce returns an error unless got is exactly the expected nonce. It
// does not modify the state.
func CheckNonce(db linera.ReadOnlyKVStore, got uint64) error {
	expected, err := CurrentNonce(db)
	if err != nil {
		return err
	}
	if got != expected {
		return errors.Wrap(&NonceError{Expected: expected, Got: got}, "signature nonce")
	}
	return nil
}

// IncrementNonce advances the nonce. Call it only once the signature
// authorized operation succeeded.
func IncrementNonce(db linera.KVStore) (uint64, error) {
	if _, err := nonceSeq.NextInt(db); err != nil {
		return 0, err
	}
	return CurrentNonce(db)
}
