package sigs

import (
	"context"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/x"
)

type contextKey int // local to the sigs module

const (
	contextKeySigners contextKey = iota
)

// withSigners is a private method, as only this module
// can add a signer
func withSigners(ctx linera.Context, signers []linera.Condition) linera.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate resolves the authenticated caller of an operation from the
// transaction signatures verified by the Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns who signed the current Context.
// May be empty
func (a Authenticate) GetConditions(ctx linera.Context) []linera.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigners).([]linera.Condition)
	return val
}

// HasAddress returns true if the given address signed the current Context.
func (a Authenticate) HasAddress(ctx linera.Context, addr linera.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
