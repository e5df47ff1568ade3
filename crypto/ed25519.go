package crypto

import (
	"github.com/tendermint/go-amino"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"golang.org/x/crypto/ed25519"
)

// PublicKey is a public key we use for tx authentication.
// Only the ed25519 scheme is supported on this path; redemption
// attestations and multisig authorizations use the recoverable secp256k1
// scheme instead (see secp256k1.go).
type PublicKey struct {
	Ed25519 []byte
}

var _ PubKey = (*PublicKey)(nil)

// Verify verifies the signature was created with this message and public key
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	if len(p.Ed25519) != ed25519.PublicKeySize || sig == nil {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig.Sig)
}

// Condition encodes the public key into a permission
func (p *PublicKey) Condition() vested.Condition {
	return vested.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address is a convenience accessor for the condition address.
func (p *PublicKey) Address() vested.Address {
	return p.Condition().Address()
}

// Validate returns an error if the key size does not match the scheme.
func (p *PublicKey) Validate() error {
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return errors.Wrapf(errors.ErrInput, "invalid key size %d", len(p.Ed25519))
	}
	return nil
}

// Marshal implements the persistence interface.
func (p *PublicKey) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(p)
}

// Unmarshal implements the persistence interface.
func (p *PublicKey) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, p)
}

// PrivateKey is a private key we use for signing transactions.
type PrivateKey struct {
	Ed25519 []byte
}

var _ Signer = (*PrivateKey)(nil)

// Sign returns a matching signature for this private key
func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInput, "invalid key size %d", len(p.Ed25519))
	}
	bz := ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message)
	return &Signature{Sig: bz}, nil
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() *PublicKey {
	priv := ed25519.PrivateKey(p.Ed25519)
	pub := priv.Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	priv := ed25519.NewKeyFromSeed(seed)
	return &PrivateKey{Ed25519: priv}
}
