package vaulttest

import (
	"context"
	"fmt"

	"github.com/keyper-labs/linera.dev"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
// You can use either Signer or Signers (or both) attributes to reference
// conditions. Signer, if set, is always reported first.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer linera.Condition

	// Signers represents an authentication of multiple signers.
	Signers []linera.Condition
}

func (a *Auth) GetConditions(linera.Context) []linera.Condition {
	if a.Signer != nil {
		return append([]linera.Condition{a.Signer}, a.Signers...)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx linera.Context, addr linera.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve conditions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetConditions(ctx linera.Context, conds ...linera.Condition) linera.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx linera.Context) []linera.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]linera.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []linera.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx linera.Context, addr linera.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
