package app

import (
	"fmt"
	"regexp"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-z0-9_]+/[a-z0-9_]+$`).MatchString

// Router allows us to register many handlers with different paths and then
// direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]linera.Handler
}

var _ linera.Registry = (*Router)(nil)
var _ linera.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]linera.Handler),
	}
}

// Handle adds a new Handler for the given path. This function panics if a
// handler for given path is already registered or the path is malformed.
func (r *Router) Handle(path string, h linera.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path. If no path is
// found, it returns a handler failing with ErrNotFound.
func (r *Router) handler(tx linera.Tx) linera.Handler {
	msg, err := tx.GetMsg()
	if err != nil {
		return failingHandler{errors.Wrap(err, "cannot load message")}
	}
	if msg == nil {
		return failingHandler{errors.Wrap(errors.ErrEmpty, "transaction message")}
	}
	if h, ok := r.routes[msg.Path()]; ok {
		return h
	}
	return failingHandler{errors.Wrapf(errors.ErrNotFound, "no handler for path %q", msg.Path())}
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.CheckResult, error) {
	return r.handler(tx).Check(ctx, db, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.DeliverResult, error) {
	return r.handler(tx).Deliver(ctx, db, tx)
}

// failingHandler always returns the wrapped error.
type failingHandler struct {
	err error
}

func (h failingHandler) Check(linera.Context, linera.KVStore, linera.Tx) (*linera.CheckResult, error) {
	return nil, h.err
}

func (h failingHandler) Deliver(linera.Context, linera.KVStore, linera.Tx) (*linera.DeliverResult, error) {
	return nil, h.err
}
