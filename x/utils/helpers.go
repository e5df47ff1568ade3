package utils

import "github.com/vested-one/vested"

// TestHelpers returns helper objects for tests,
// encapsulated in one object to be easily imported in other packages
type TestHelpers struct{}

// WriteHandler will write the given key/value pair to the KVStore,
// and return the error (use nil for success)
func (TestHelpers) WriteHandler(key, value []byte, err error) vested.Handler {
	return writeHandler{
		key:   key,
		value: value,
		err:   err,
	}
}

// WriteDecorator will write the given key/value pair to the KVStore,
// either before or after calling down the stack.
// Returns (res, err) from child handler untouched
func (TestHelpers) WriteDecorator(key, value []byte, after bool) vested.Decorator {
	return writeDecorator{
		key:   key,
		value: value,
		after: after,
	}
}

// PanicHandler always panics with the given error when called
func (TestHelpers) PanicHandler(err error) vested.Handler {
	return panicHandler{err}
}

type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ vested.Handler = writeHandler{}

func (h writeHandler) Check(ctx vested.Context, store vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &vested.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx vested.Context, store vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &vested.DeliverResult{}, h.err
}

type writeDecorator struct {
	key   []byte
	value []byte
	after bool
}

var _ vested.Decorator = writeDecorator{}

func (d writeDecorator) Check(ctx vested.Context, store vested.KVStore, tx vested.Tx, next vested.Checker) (*vested.CheckResult, error) {
	if !d.after {
		if err := store.Set(d.key, d.value); err != nil {
			return nil, err
		}
	}
	res, err := next.Check(ctx, store, tx)
	if d.after && err == nil {
		if serr := store.Set(d.key, d.value); serr != nil {
			return nil, serr
		}
	}
	return res, err
}

func (d writeDecorator) Deliver(ctx vested.Context, store vested.KVStore, tx vested.Tx, next vested.Deliverer) (*vested.DeliverResult, error) {
	if !d.after {
		if err := store.Set(d.key, d.value); err != nil {
			return nil, err
		}
	}
	res, err := next.Deliver(ctx, store, tx)
	if d.after && err == nil {
		if serr := store.Set(d.key, d.value); serr != nil {
			return nil, serr
		}
	}
	return res, err
}

type panicHandler struct {
	err error
}

var _ vested.Handler = panicHandler{}

func (h panicHandler) Check(ctx vested.Context, store vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	panic(h.err)
}

func (h panicHandler) Deliver(ctx vested.Context, store vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	panic(h.err)
}
