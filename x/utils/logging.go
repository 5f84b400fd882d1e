package utils

import (
	"time"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
)

// Logging is a decorator to log operations as they pass through.
type Logging struct{}

var _ linera.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (Logging) Check(ctx linera.Context, store linera.KVStore, tx linera.Tx, next linera.Checker) (*linera.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (Logging) Deliver(ctx linera.Context, store linera.KVStore, tx linera.Tx, next linera.Deliverer) (*linera.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx linera.Context, tx linera.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := linera.GetLogger(ctx).With(
		"path", linera.GetPath(tx),
		"duration", delta/time.Microsecond,
	)

	// Message can be empty, the entry is still relevant.
	switch {
	case err != nil:
		logger.Error(msg, "code", errors.Code(err), "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
