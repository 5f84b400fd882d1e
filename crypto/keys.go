package crypto

import (
	"github.com/keyper-labs/linera.dev"
)

// ExtensionName is used for the conditions we get from signatures
const ExtensionName = "sigs"

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() linera.Condition
}

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// Address is a helper to return the address of the condition derived from
// this public key.
func (p *PublicKey) Address() linera.Address {
	c := p.Condition()
	if c == nil {
		return nil
	}
	return c.Address()
}
