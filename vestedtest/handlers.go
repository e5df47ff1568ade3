package vestedtest

import "github.com/vested-one/vested"

// Handler is a mock implementation of the vested.Handler interface.
// Each method call is counted and a configured result returned.
type Handler struct {
	checkCall   int
	CheckResult vested.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult vested.DeliverResult
	DeliverErr    error
}

var _ vested.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
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

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
