package crypto

import (
	"github.com/vested-one/vested"
)

// ExtensionName is used for the Conditions we get from signatures
const ExtensionName = "sigs"

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() vested.Condition
}

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// Signature is a raw signature produced by one of the supported schemes.
type Signature struct {
	Sig []byte
}

// Marshal implements the persistence interface.
func (s *Signature) Marshal() ([]byte, error) {
	return append([]byte(nil), s.Sig...), nil
}

// Unmarshal implements the persistence interface.
func (s *Signature) Unmarshal(raw []byte) error {
	s.Sig = append([]byte(nil), raw...)
	return nil
}
