package vested

import (
	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult captures any non-error abci result
// to make sure people use error for error cases
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// RequiredFee can set an custom fee under which the paying
	// transaction is rejected. Not used by this engine yet.
	RequiredFee int64
	// GasAllocated is the maximum units of work we allow this tx to
	// perform
	GasAllocated int64
	// GasPayment is the total fees for this tx (or other source of
	// payment)
	GasPayment int64
}

// DeliverResult captures any non-error abci result
// to make sure people use error for error cases
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// Tags is the observability record attached to the operation: the
	// operation name, actor and affected amounts end up here.
	Tags []common.KVPair
	// GasUsed is the units of work performed by this transaction
	GasUsed int64
}

// Pair is a helper to build a tag entry.
func Pair(key, value string) common.KVPair {
	return common.KVPair{
		Key:   []byte(key),
		Value: []byte(value),
	}
}
