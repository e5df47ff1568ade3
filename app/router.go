package app

import (
	"fmt"
	"regexp"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
)

// isPath validates message paths like "vesting/claim".
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_]+(/[a-zA-Z0-9_]+)*$`).MatchString

// Router maps message paths to handlers. It implements both the
// vested.Registry interface used by packages to register their handlers
// and the vested.Handler interface used by the application to dispatch.
type Router struct {
	handlers map[string]vested.Handler
}

var _ vested.Registry = (*Router)(nil)
var _ vested.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]vested.Handler),
	}
}

// Handle registers the handler for the message's path. Registering two
// handlers for the same path or using an invalid path is a programmer
// error and panics.
func (r *Router) Handle(msg vested.Msg, h vested.Handler) {
	path := msg.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid message path: %q", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.handlers[path] = h
}

// handler returns the registered handler, or a notFoundHandler that
// errors on any call.
func (r *Router) handler(path string) vested.Handler {
	if h, ok := r.handlers[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches the transaction to the handler registered for its
// message path.
func (r *Router) Check(ctx vested.Context, store vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg.Path()).Check(ctx, store, tx)
}

// Deliver dispatches the transaction to the handler registered for its
// message path.
func (r *Router) Deliver(ctx vested.Context, store vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg.Path()).Deliver(ctx, store, tx)
}

type notFoundHandler string

var _ vested.Handler = notFoundHandler("")

func (path notFoundHandler) Check(ctx vested.Context, store vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", string(path))
}

func (path notFoundHandler) Deliver(ctx vested.Context, store vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", string(path))
}
