package sigs

import (
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/vestedtest"
)

//----- mock objects for testing...

type StdTx struct {
	vested.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ vested.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	msg := &vestedtest.Msg{RoutePath: "mock", Serialized: payload}
	return &StdTx{Tx: &vestedtest.Tx{Msg: msg}}
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx StdTx) GetSignBytes() ([]byte, error) {
	// marshal self w/o sigs
	s := tx.Signatures
	tx.Signatures = nil
	defer func() { tx.Signatures = s }()

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}
