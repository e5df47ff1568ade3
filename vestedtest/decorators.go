package vestedtest

import "github.com/vested-one/vested"

// Decorator is a mock implementation of the vested.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then the wrapped handler method is called
// and its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ vested.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx, next vested.Checker) (*vested.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx, next vested.Deliverer) (*vested.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate wraps a handler with a decorator so it can be used where a plain
// handler is expected.
func Decorate(h vested.Handler, d vested.Decorator) vested.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn vested.Handler
	dc vested.Decorator
}

var _ vested.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
