/*
Package x contains the interfaces shared by all extensions. Extensions never
look at signatures directly, they ask an Authenticator which conditions the
current operation was authorized by.
*/
package x

import (
	"github.com/keyper-labs/linera.dev"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding x/sigs for all extensions.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled,
	// you may want GetAddresses helper
	GetConditions(linera.Context) []linera.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(linera.Context, linera.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators
func (m MultiAuth) GetConditions(ctx linera.Context) []linera.Condition {
	var res []linera.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx linera.Context, addr linera.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator
func GetAddresses(ctx linera.Context, auth Authenticator) []linera.Address {
	conds := auth.GetConditions(ctx)
	addrs := make([]linera.Address, len(conds))
	for i, c := range conds {
		addrs[i] = c.Address()
	}
	return addrs
}

// MainSigner returns the first condition if any, otherwise nil
func MainSigner(ctx linera.Context, auth Authenticator) linera.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// MainSignerAddress returns the address of the main signer, or nil if the
// operation was not signed.
func MainSignerAddress(ctx linera.Context, auth Authenticator) linera.Address {
	if signer := MainSigner(ctx, auth); signer != nil {
		return signer.Address()
	}
	return nil
}
