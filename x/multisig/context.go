package multisig

import (
	"context"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/x"
)

type contextKey int // local to the multisig module

const (
	contextKeyMultisig contextKey = iota
)

// withMultisig is a private method, as only this module
// can authorize a contract
func withMultisig(ctx vested.Context, id []byte) vested.Context {
	return context.WithValue(ctx, contextKeyMultisig, MultiSigCondition(id))
}

// Authenticate gets the multisig permission from the context.
type Authenticate struct {
}

var _ x.Authenticator = Authenticate{}

// GetConditions returns permissions previously set on this context
func (a Authenticate) GetConditions(ctx vested.Context) []vested.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeyMultisig).(vested.Condition)
	if val == nil {
		return nil
	}
	return []vested.Condition{val}
}

// HasAddress returns true iff this address is in GetConditions
func (a Authenticate) HasAddress(ctx vested.Context, addr vested.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
