package app

import (
	"context"
	"testing"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/store"
	"github.com/vested-one/vested/vestedtest"
	"github.com/vested-one/vested/vestedtest/assert"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	good := &vestedtest.Handler{}
	other := &vestedtest.Handler{}
	r.Handle(&vestedtest.Msg{RoutePath: "test/good"}, good)
	r.Handle(&vestedtest.Msg{RoutePath: "test/other"}, other)

	ctx := context.Background()
	db := store.MemStore()

	tx := &vestedtest.Tx{Msg: &vestedtest.Msg{RoutePath: "test/good"}}
	_, err := r.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	_, err = r.Check(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 2, good.CallCount())
	assert.Equal(t, 0, other.CallCount())
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()
	ctx := context.Background()
	db := store.MemStore()

	tx := &vestedtest.Tx{Msg: &vestedtest.Msg{RoutePath: "test/missing"}}
	_, err := r.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestRouterRejectsBadPaths(t *testing.T) {
	r := NewRouter()
	h := &vestedtest.Handler{}

	assert.Panics(t, func() {
		r.Handle(&vestedtest.Msg{RoutePath: "no spaces allowed"}, h)
	})
	r.Handle(&vestedtest.Msg{RoutePath: "test/dup"}, h)
	assert.Panics(t, func() {
		r.Handle(&vestedtest.Msg{RoutePath: "test/dup"}, h)
	})
}

func TestChainDecorators(t *testing.T) {
	var calls []string
	record := func(name string) vested.Decorator {
		return recordingDecorator{name: name, calls: &calls}
	}

	h := &vestedtest.Handler{}
	stack := ChainDecorators(
		record("outer"),
		nil, // nils are dropped from the chain
		record("inner"),
	).Chain(record("last")).WithHandler(h)

	_, err := stack.Deliver(context.Background(), store.MemStore(), &vestedtest.Tx{})
	assert.Nil(t, err)
	assert.Equal(t, []string{"outer", "inner", "last"}, calls)
	assert.Equal(t, 1, h.DeliverCallCount())
}

type recordingDecorator struct {
	name  string
	calls *[]string
}

var _ vested.Decorator = recordingDecorator{}

func (d recordingDecorator) Check(ctx vested.Context, store vested.KVStore, tx vested.Tx, next vested.Checker) (*vested.CheckResult, error) {
	*d.calls = append(*d.calls, d.name)
	return next.Check(ctx, store, tx)
}

func (d recordingDecorator) Deliver(ctx vested.Context, store vested.KVStore, tx vested.Tx, next vested.Deliverer) (*vested.DeliverResult, error) {
	*d.calls = append(*d.calls, d.name)
	return next.Deliver(ctx, store, tx)
}
