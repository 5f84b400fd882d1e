package vaulttest

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/crypto"
	"github.com/keyper-labs/linera.dev/orm"
)

// NewKey returns a new random private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a new random key.
func NewCondition() linera.Condition {
	return NewKey().PublicKey().Condition()
}

// SequenceID returns the key under which the n-th entity created with an
// orm.Sequence is stored.
func SequenceID(n uint64) []byte {
	return orm.EncodeSequence(n)
}
