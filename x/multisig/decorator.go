package multisig

import (
	"crypto/sha256"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
)

// Decorator checks the multisig quorum if the transaction requests one.
// The operation hash is the hash of the serialized message, so an owner
// signature authorizes exactly one concrete operation.
type Decorator struct {
	gate Gate
}

var _ vested.Decorator = Decorator{}

// NewDecorator returns a default multisig decorator
func NewDecorator() Decorator {
	return Decorator{gate: NewGate()}
}

// Check verifies the quorum before calling down the stack. The hash is
// consumed in the check store as well, which keeps a checked operation
// from being replayed through the mempool.
func (d Decorator) Check(ctx vested.Context, store vested.KVStore, tx vested.Tx, next vested.Checker) (*vested.CheckResult, error) {
	mtx, ok := tx.(MultiSigTx)
	if !ok || mtx.GetMultisig() == nil {
		return next.Check(ctx, store, tx)
	}

	ctx, err := d.authorize(ctx, store, tx, mtx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver verifies the quorum before calling down the stack.
func (d Decorator) Deliver(ctx vested.Context, store vested.KVStore, tx vested.Tx, next vested.Deliverer) (*vested.DeliverResult, error) {
	mtx, ok := tx.(MultiSigTx)
	if !ok || mtx.GetMultisig() == nil {
		return next.Deliver(ctx, store, tx)
	}

	ctx, err := d.authorize(ctx, store, tx, mtx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d Decorator) authorize(ctx vested.Context, store vested.KVStore, tx vested.Tx, mtx MultiSigTx) (vested.Context, error) {
	opHash, err := OperationHash(tx)
	if err != nil {
		return ctx, err
	}

	id := mtx.GetMultisig()
	if _, err := d.gate.Execute(ctx, store, id, opHash, mtx.GetOperationSignatures()); err != nil {
		return ctx, errors.Wrap(err, "multisig")
	}
	return withMultisig(ctx, id), nil
}

// OperationHash maps a transaction to the 32 byte identifier its quorum
// signs. Two transactions carrying the same message authorize the same
// operation.
func OperationHash(tx vested.Tx) ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	bz, err := msg.Marshal()
	if err != nil {
		return nil, err
	}
	hash := sha256.Sum256(bz)
	return hash[:], nil
}
