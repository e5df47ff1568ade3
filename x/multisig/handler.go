package multisig

import (
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r vested.Registry, auth x.Authenticator) {
	r.Handle(&CreateContractMsg{}, CreateContractMsgHandler{auth, NewContractBucket()})
}

type CreateContractMsgHandler struct {
	auth   x.Authenticator
	bucket ContractBucket
}

var _ vested.Handler = CreateContractMsgHandler{}

func (h CreateContractMsgHandler) Check(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vested.CheckResult{GasAllocated: creationCost}, nil
}

func (h CreateContractMsgHandler) Deliver(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*vested.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	contract := &Contract{
		Owners:    msg.Owners,
		Threshold: msg.Threshold,
	}
	id, err := h.bucket.Create(db, contract)
	if err != nil {
		return nil, err
	}

	return &vested.DeliverResult{Data: id}, nil
}

// validate does all common pre-processing between Check and Deliver
func (h CreateContractMsgHandler) validate(ctx vested.Context, db vested.KVStore, tx vested.Tx) (*CreateContractMsg, error) {
	// contract creation must be requested by an authenticated party
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	createMsg, ok := msg.(*CreateContractMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, msg)
	}
	if err := createMsg.Validate(); err != nil {
		return nil, err
	}
	return createMsg, nil
}
