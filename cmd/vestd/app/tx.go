package app

import (
	"github.com/tendermint/go-amino"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/x/batch"
	"github.com/vested-one/vested/x/multisig"
	"github.com/vested-one/vested/x/sigs"
	"github.com/vested-one/vested/x/timelock"
	"github.com/vested-one/vested/x/vesting"
)

// codec knows every concrete message that can travel in a transaction.
var codec = amino.NewCodec()

func init() {
	codec.RegisterInterface((*vested.Msg)(nil), nil)
	for _, m := range []struct {
		msg  vested.Msg
		name string
	}{
		{&vesting.CreateGrantMsg{}, "vestd/vesting/create"},
		{&vesting.ClaimMsg{}, "vestd/vesting/claim"},
		{&vesting.ClaimOneMsg{}, "vestd/vesting/claim_one"},
		{&vesting.RedeemMsg{}, "vestd/vesting/redeem"},
		{&vesting.MarkExpiredMsg{}, "vestd/vesting/mark_expired"},
		{&vesting.RecoverExpiredMsg{}, "vestd/vesting/recover_expired"},
		{&vesting.FundPoolMsg{}, "vestd/vesting/fund_pool"},
		{&vesting.RecoverSurplusMsg{}, "vestd/vesting/recover_surplus"},
		{&vesting.UpdateConfigurationMsg{}, "vestd/vesting/update_conf"},
		{&vesting.SetPausedMsg{}, "vestd/vesting/set_paused"},
		{&vesting.SetBlacklistMsg{}, "vestd/vesting/set_blacklist"},
		{&timelock.ProposeChangeMsg{}, "vestd/timelock/propose"},
		{&timelock.ApplyChangeMsg{}, "vestd/timelock/apply"},
		{&multisig.CreateContractMsg{}, "vestd/multisig/create"},
		{&batch.ExecuteBatchMsg{}, "vestd/batch/execute"},
	} {
		codec.RegisterConcrete(m.msg, m.name, nil)
		batch.RegisterMessage(m.msg, m.name)
	}
}

// Tx is the transaction envelope. It carries one message together with
// the authentication data the middleware stack consumes.
type Tx struct {
	Msg vested.Msg

	// Signatures authenticate the envelope sender.
	Signatures []*sigs.StdSignature

	// MultisigID, if set, requests execution under a multisig contract.
	// OpSignatures are the owner signatures over the operation hash.
	MultisigID   []byte
	OpSignatures [][]byte
}

var _ vested.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)
var _ multisig.MultiSigTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (vested.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// Marshal implements the persistence interface.
func (tx *Tx) Marshal() ([]byte, error) {
	return codec.MarshalBinaryBare(tx)
}

// Unmarshal implements the persistence interface.
func (tx *Tx) Unmarshal(raw []byte) error {
	return codec.UnmarshalBinaryBare(raw, tx)
}

// GetMsg returns the action to be processed.
func (tx *Tx) GetMsg() (vested.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "transaction without message")
	}
	return tx.Msg, nil
}

// GetSignBytes returns the canonical bytes signed by the sender.
// The signatures authorize the rest of the envelope, so they are
// excluded from the digest.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	signatures := tx.Signatures
	tx.Signatures = nil
	bz, err := tx.Marshal()
	tx.Signatures = signatures
	return bz, err
}

// GetSignatures returns the signatures of signers who signed the Msg.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetMultisig returns the contract id of the requested quorum, if any.
func (tx *Tx) GetMultisig() []byte {
	return tx.MultisigID
}

// GetOperationSignatures returns the owner signatures over the
// operation hash.
func (tx *Tx) GetOperationSignatures() [][]byte {
	return tx.OpSignatures
}
