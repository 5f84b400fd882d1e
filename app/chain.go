package app

import (
	"reflect"

	"github.com/keyper-labs/linera.dev"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []linera.Decorator
}

/*
ChainDecorators takes a chain of decorators, and upon adding a final
Handler (often a Router), returns a Handler that will execute this whole
stack.

  app.ChainDecorators(
    utils.NewRecovery(),
    utils.NewLogging(),
    utils.NewSavepoint(),
    sigs.NewDecorator(),
  ).WithHandler(
    app.NewRouter(),
  )
*/
func ChainDecorators(chain ...linera.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain allows us to keep adding more Decorators to the chain
func (d Decorators) Chain(chain ...linera.Decorator) Decorators {
	newChain := make([]linera.Decorator, 0, len(d.chain)+len(chain))
	newChain = append(newChain, d.chain...)
	for _, dc := range chain {
		if !isNil(dc) {
			newChain = append(newChain, dc)
		}
	}
	return Decorators{newChain}
}

func isNil(d linera.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain of decorators before calling
// the final Handler.
func (d Decorators) WithHandler(h linera.Handler) linera.Handler {
	// the first decorator of the chain is the outermost one
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step captures one step executing a decorator around a specific Handler.
type step struct {
	d    linera.Decorator
	next linera.Handler
}

var _ linera.Handler = step{}

// Check passes the handler into the decorator, implements Handler
func (s step) Check(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.CheckResult, error) {
	return s.d.Check(ctx, db, tx, s.next)
}

// Deliver passes the handler into the decorator, implements Handler
func (s step) Deliver(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.DeliverResult, error) {
	return s.d.Deliver(ctx, db, tx, s.next)
}
