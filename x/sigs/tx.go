package sigs

import (
	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
)

// SignedTx represents a transaction that contains signatures,
// which can be verified by the Decorator.
type SignedTx interface {
	linera.Tx

	// GetSignBytes returns the canonical byte representation of the Msg.
	// Equivalent to Marshal() of the transaction without signatures.
	GetSignBytes() ([]byte, error)

	// GetSignatures returns the signatures on the tx.
	GetSignatures() []*StdSignature
}

// Validate ensures the StdSignature meets basic standards
func (m *StdSignature) Validate() error {
	if m.Pubkey == nil || len(m.Pubkey.Ed25519) == 0 {
		return errors.Wrap(errors.ErrEmpty, "public key")
	}
	if m.Signature == nil || len(m.Signature.Ed25519) == 0 {
		return errors.Wrap(errors.ErrSignature, "missing signature")
	}
	return nil
}
