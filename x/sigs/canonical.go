package sigs

import (
	"encoding/binary"

	"github.com/keyper-labs/linera.dev/crypto"
)

// AggregateKeySize is the length of an aggregate public key.
const AggregateKeySize = 32

// CanonicalMessage returns the message an aggregated signature must be made
// over in order to authorize an operation.
//
//   nonce              | operation type | len(data)          | data
//   uint64 (bigendian) | ascii string   | uint64 (bigendian) | raw bytes
//
// Binding the nonce prevents replay and binding the operation type and data
// prevents a signature over one operation from authorizing another.
func CanonicalMessage(nonce uint64, opType string, data []byte) []byte {
	out := make([]byte, 0, 8+len(opType)+8+len(data))
	var num [8]byte
	binary.BigEndian.PutUint64(num[:], nonce)
	out = append(out, num[:]...)
	out = append(out, opType...)
	binary.BigEndian.PutUint64(num[:], uint64(len(data)))
	out = append(out, num[:]...)
	out = append(out, data...)
	return out
}

// Verify checks an aggregated signature of message against the aggregate
// public key. Verification is pure and every failure, including malformed
// key or signature, is reported as false.
func Verify(aggregateKey, message, signature []byte) bool {
	if len(aggregateKey) != AggregateKeySize {
		return false
	}
	return crypto.Verify(aggregateKey, message, signature)
}
