package timelock

import (
	"fmt"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/x"
)

const (
	proposeCost int64 = 100
	applyCost   int64 = 100
)

// Rule binds a governed parameter to its validation and its effect on
// live state. The rule table defines the full set of recognized
// parameters; anything outside of it cannot be governed.
type Rule struct {
	// Validate rejects values outside the allowed range. Nil means any
	// value passes.
	Validate func(value uint64) error

	// Apply writes the value to live state. Called only after the delay
	// passed and validation succeeded.
	Apply func(db vested.KVStore, value uint64) error
}

// Authority resolves the single identity allowed to govern parameters.
// It is looked up per call so owner changes take effect immediately.
type Authority interface {
	Authority(db vested.ReadOnlyKVStore) (vested.Address, error)
}

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r vested.Registry, auth x.Authenticator, authority Authority, rules map[string]Rule) {
	gov := NewGovernor()
	r.Handle(&ProposeChangeMsg{}, ProposeHandler{auth: auth, authority: authority, rules: rules, gov: gov})
	r.Handle(&ApplyChangeMsg{}, ApplyHandler{auth: auth, authority: authority, rules: rules, gov: gov})
}

// ProposeHandler schedules a parameter change.
type ProposeHandler struct {
	auth      x.Authenticator
	authority Authority
	rules     map[string]Rule
	gov       Governor
}

var _ vested.Handler = ProposeHandler{}

func (h ProposeHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: proposeCost}, nil
}

func (h ProposeHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	now, err := vested.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	eligible, err := h.gov.Propose(db, msg.Key, msg.Value, msg.Delay, vested.AsUnixTime(now))
	if err != nil {
		return nil, err
	}

	return &vested.DeliverResult{
		Log: fmt.Sprintf("%s=%d eligible at %d", msg.Key, msg.Value, eligible),
	}, nil
}

func (h ProposeHandler) validate(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*ProposeChangeMsg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	proposeMsg, ok := msg.(*ProposeChangeMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, msg)
	}
	if err := proposeMsg.Validate(); err != nil {
		return nil, err
	}
	if _, ok := h.rules[proposeMsg.Key]; !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "parameter %s", proposeMsg.Key)
	}
	if err := checkAuthority(ctx, db, h.auth, h.authority); err != nil {
		return nil, err
	}
	return proposeMsg, nil
}

// ApplyHandler applies a matured parameter change.
type ApplyHandler struct {
	auth      x.Authenticator
	authority Authority
	rules     map[string]Rule
	gov       Governor
}

var _ vested.Handler = ApplyHandler{}

func (h ApplyHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: applyCost}, nil
}

func (h ApplyHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	rule := h.rules[msg.Key]

	now, err := vested.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	value, err := h.gov.Apply(db, msg.Key, vested.AsUnixTime(now), rule.Validate)
	if err != nil {
		return nil, err
	}
	if rule.Apply != nil {
		if err := rule.Apply(db, value); err != nil {
			return nil, err
		}
	}

	return &vested.DeliverResult{
		Log: fmt.Sprintf("%s=%d applied", msg.Key, value),
	}, nil
}

func (h ApplyHandler) validate(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*ApplyChangeMsg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	applyMsg, ok := msg.(*ApplyChangeMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, msg)
	}
	if err := applyMsg.Validate(); err != nil {
		return nil, err
	}
	if _, ok := h.rules[applyMsg.Key]; !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "parameter %s", applyMsg.Key)
	}
	if err := checkAuthority(ctx, db, h.auth, h.authority); err != nil {
		return nil, err
	}
	return applyMsg, nil
}

func checkAuthority(ctx vested.Context, db vested.ReadOnlyKVStore, auth x.Authenticator, authority Authority) error {
	addr, err := authority.Authority(db)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, addr) {
		return errors.Wrap(errors.ErrUnauthorized, "not the authority")
	}
	return nil
}
