package batch

import (
	"strings"

	"github.com/tendermint/go-amino"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/vested-one/vested"
)

// Decorator iterates through batch transaction messages and passes them
// down the stack. Non-batch transactions pass through untouched.
type Decorator struct {
}

var _ vested.Decorator = Decorator{}

// NewDecorator returns a batch transaction decorator
func NewDecorator() Decorator {
	return Decorator{}
}

// BatchTx wraps the outer transaction while swapping the message, so the
// inner handlers still see the original authentication envelope.
type BatchTx struct {
	vested.Tx
	Msg vested.Msg
}

func (tx *BatchTx) GetMsg() (vested.Msg, error) {
	return tx.Msg, nil
}

// Check iterates through messages in a batch transaction and passes them
// down the stack
func (d Decorator) Check(ctx vested.Context, store vested.KVStore, tx vested.Tx, next vested.Checker) (*vested.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}

	batchMsg, ok := msg.(*ExecuteBatchMsg)
	if !ok {
		return next.Check(ctx, store, tx)
	}
	if err := batchMsg.Validate(); err != nil {
		return nil, err
	}

	checks := make([]*vested.CheckResult, len(batchMsg.Messages))
	for i, inner := range batchMsg.Messages {
		checks[i], err = next.Check(ctx, store, &BatchTx{Tx: tx, Msg: inner})
		if err != nil {
			return nil, err
		}
	}
	return combineChecks(checks), nil
}

// Deliver iterates through messages in a batch transaction and passes them
// down the stack
func (d Decorator) Deliver(ctx vested.Context, store vested.KVStore, tx vested.Tx, next vested.Deliverer) (*vested.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}

	batchMsg, ok := msg.(*ExecuteBatchMsg)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}
	if err := batchMsg.Validate(); err != nil {
		return nil, err
	}

	delivers := make([]*vested.DeliverResult, len(batchMsg.Messages))
	for i, inner := range batchMsg.Messages {
		delivers[i], err = next.Deliver(ctx, store, &BatchTx{Tx: tx, Msg: inner})
		if err != nil {
			return nil, err
		}
	}
	return combineDelivers(delivers), nil
}

// combineChecks merges all data bytes as a go-amino array and joins all
// log messages with a newline.
func combineChecks(checks []*vested.CheckResult) *vested.CheckResult {
	datas := make([][]byte, len(checks))
	logs := make([]string, len(checks))
	var allocated, payments int64
	for i, r := range checks {
		datas[i] = r.Data
		logs[i] = r.Log
		allocated += r.GasAllocated
		payments += r.GasPayment
	}
	return &vested.CheckResult{
		Data:         amino.MustMarshalBinaryBare(datas),
		Log:          strings.Join(logs, "\n"),
		GasAllocated: allocated,
		GasPayment:   payments,
	}
}

// combineDelivers merges all data bytes as a go-amino array, joins the
// logs and concatenates the tags.
func combineDelivers(delivers []*vested.DeliverResult) *vested.DeliverResult {
	datas := make([][]byte, len(delivers))
	logs := make([]string, len(delivers))
	var used int64
	var tags []common.KVPair
	for i, r := range delivers {
		datas[i] = r.Data
		logs[i] = r.Log
		used += r.GasUsed
		if len(r.Tags) > 0 {
			tags = append(tags, r.Tags...)
		}
	}
	return &vested.DeliverResult{
		Data:    amino.MustMarshalBinaryBare(datas),
		Log:     strings.Join(logs, "\n"),
		GasUsed: used,
		Tags:    tags,
	}
}
