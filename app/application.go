package app

import (
	"context"
	"time"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Application processes vault transactions one at a time, each at a time
// supplied by the caller, on top of a committed store.
//
// Delivered transactions are kept in a cache until Commit is called. Check
// works on its own cache, so that checking never changes the delivered
// state.
type Application struct {
	name        string
	logger      log.Logger
	store       *CommitStore
	handler     linera.Handler
	decoder     linera.TxDecoder
	initializer linera.Initializer
	chainID     string
	debug       bool
}

// NewApplication loads the latest committed state of db. The chain ID is
// read back from the store if the vault was already initialized.
func NewApplication(name string, db linera.CommitKVStore, logger log.Logger) (*Application, error) {
	cs, err := NewCommitStore(db)
	if err != nil {
		return nil, err
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Application{
		name:        name,
		logger:      logger,
		store:       cs,
		handler:     Stack(),
		decoder:     DecodeTx,
		initializer: Initializers(),
		chainID:     chainID,
	}, nil
}

// WithDebug makes error results carry the full error description.
func (a *Application) WithDebug(debug bool) *Application {
	a.debug = debug
	return a
}

// ChainID returns the chain ID, empty until InitChain is called.
func (a *Application) ChainID() string {
	return a.chainID
}

// Logger returns the application base logger
func (a *Application) Logger() log.Logger {
	return a.logger
}

// InitChain stores the chain ID and runs all extension initializers. It can
// be called only once in the lifetime of a store.
func (a *Application) InitChain(gen *Genesis) error {
	if a.chainID != "" {
		return errors.Wrapf(errors.ErrState, "already initialized for chain %s", a.chainID)
	}
	cache := a.store.DeliverStore().CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if err := a.initializer.FromGenesis(gen.AppState, cache); err != nil {
		cache.Discard()
		return errors.Wrap(err, "genesis")
	}
	if err := cache.Write(); err != nil {
		return err
	}
	// Genesis is committed with the first block, until then checks must
	// run on top of the deliver state.
	a.store.resetCheck()
	a.chainID = gen.ChainID
	a.logger.Info("Genesis loaded", "chain_id", a.chainID)
	return nil
}

// txContext returns the operation context for a transaction processed at
// given time.
func (a *Application) txContext(now time.Time, call string, tx linera.Tx) linera.Context {
	ctx := linera.WithLogger(context.Background(), a.logger)
	ctx = linera.WithLogInfo(ctx, "call", call, "path", linera.GetPath(tx))
	ctx = linera.WithBlockTime(ctx, now)
	if a.chainID != "" {
		ctx = linera.WithChainID(ctx, a.chainID)
	}
	return ctx
}

// CheckTx validates the transaction without changing the delivered state.
func (a *Application) CheckTx(now time.Time, raw []byte) (*linera.CheckResult, error) {
	tx, err := a.loadTx(raw)
	if err != nil {
		return nil, err
	}
	return a.handler.Check(a.txContext(now, "check_tx", tx), a.store.CheckStore(), tx)
}

// DeliverTx executes the transaction. A failed transaction leaves no trace.
func (a *Application) DeliverTx(now time.Time, raw []byte) (*linera.DeliverResult, error) {
	tx, err := a.loadTx(raw)
	if err != nil {
		return nil, err
	}
	if a.chainID == "" {
		return nil, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	return a.handler.Deliver(a.txContext(now, "deliver_tx", tx), a.store.DeliverStore(), tx)
}

// DeliverABCI is DeliverTx with the result in the form tendermint clients
// consume.
func (a *Application) DeliverABCI(now time.Time, raw []byte) (code uint32, data []byte, logMsg string) {
	res, err := a.DeliverTx(now, raw)
	r := linera.DeliverOrError(res, err, a.debug)
	return r.Code, r.Data, r.Log
}

// Commit persists all delivered transactions.
func (a *Application) Commit() (linera.CommitID, error) {
	id, err := a.store.Commit()
	if err != nil {
		return id, err
	}
	a.logger.Info("Commit synced", "version", id.Version, "hash", id.Hash)
	return id, nil
}

// CommitInfo returns the latest committed version.
func (a *Application) CommitInfo() (linera.CommitID, error) {
	return a.store.CommitInfo()
}

// DeliverStore gives read access to the delivered, not yet committed state.
func (a *Application) DeliverStore() linera.ReadOnlyKVStore {
	return a.store.DeliverStore()
}

// loadTx calls the decoder, and capture any panics
func (a *Application) loadTx(raw []byte) (tx linera.Tx, err error) {
	defer errors.Recover(&err)
	return a.decoder(raw)
}
