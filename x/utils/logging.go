package utils

import (
	"time"

	"github.com/vested-one/vested"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ vested.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> info, success -> debug
func (r Logging) Check(ctx vested.Context, store vested.KVStore, tx vested.Tx, next vested.Checker) (*vested.CheckResult, error) {
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
func (r Logging) Deliver(ctx vested.Context, store vested.KVStore, tx vested.Tx, next vested.Deliverer) (*vested.DeliverResult, error) {
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
func logDuration(ctx vested.Context, tx vested.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := vested.GetLogger(ctx).With("duration", delta/time.Microsecond)
	if tx != nil {
		if m, merr := tx.GetMsg(); merr == nil && m != nil {
			logger = logger.With("path", m.Path())
		}
	}

	if err != nil {
		logger = logger.With("err", err)
		logger.Error(msg)
		return
	}

	// the message may be empty, but duration and path still matter
	if lowPrio {
		logger.Debug(msg)
	} else {
		logger.Info(msg)
	}
}
