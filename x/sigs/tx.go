package sigs

import (
	"github.com/tendermint/go-amino"
	"github.com/vested-one/vested/crypto"
	"github.com/vested-one/vested/errors"
)

// SignedTx represents a transaction that contains signatures,
// which can be verified by the sigs.Decorator
type SignedTx interface {
	// GetSignBytes returns the canonical byte representation of the Msg.
	//
	// Helpful to store original, unparsed bytes here, just in case.
	GetSignBytes() ([]byte, error)

	// GetSignatures returns the signatures of signers who signed the Msg.
	GetSignatures() []*StdSignature
}

// StdSignature represents one signature on a transaction: the public key
// used, the nonce it was issued under, and the raw signature bytes.
type StdSignature struct {
	Sequence  int64
	Pubkey    *crypto.PublicKey
	Signature *crypto.Signature
}

// Marshal implements the persistence interface.
func (s *StdSignature) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(s)
}

// Unmarshal implements the persistence interface.
func (s *StdSignature) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, s)
}

// Validate ensures the StdSignature meets basic standards
func (s *StdSignature) Validate() error {
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if s.Pubkey == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if s.Signature == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}
