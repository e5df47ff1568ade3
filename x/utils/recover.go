package utils

import (
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ vested.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx vested.Context, store vested.KVStore, tx vested.Tx, next vested.Checker) (_ *vested.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx vested.Context, store vested.KVStore, tx vested.Tx, next vested.Deliverer) (_ *vested.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
