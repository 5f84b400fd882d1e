package vaulttest

import "github.com/keyper-labs/linera.dev"

// Handler is a mock implementation of the linera.Handler interface, returning
// configured results and counting calls.
type Handler struct {
	checkCall   int
	CheckResult linera.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult linera.DeliverResult
	DeliverErr    error
}

var _ linera.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

// WriteHandler writes Key and Value to the store on every call and returns
// Err afterwards.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ linera.Handler = WriteHandler{}

func (h WriteHandler) Check(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &linera.CheckResult{}, nil
}

func (h WriteHandler) Deliver(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &linera.DeliverResult{}, nil
}

// PanicHandler panics on every call.
type PanicHandler struct {
	Msg string
}

var _ linera.Handler = PanicHandler{}

func (h PanicHandler) Check(linera.Context, linera.KVStore, linera.Tx) (*linera.CheckResult, error) {
	panic(h.Msg)
}

func (h PanicHandler) Deliver(linera.Context, linera.KVStore, linera.Tx) (*linera.DeliverResult, error) {
	panic(h.Msg)
}

// Decorate wraps given handler with a decorator.
func Decorate(h linera.Handler, d linera.Decorator) linera.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn linera.Handler
	dc linera.Decorator
}

var _ linera.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx linera.Context, db linera.KVStore, tx linera.Tx) (*linera.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
