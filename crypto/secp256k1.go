package crypto

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
)

// The recoverable secp256k1 scheme binds a signature to the signer identity
// without shipping the public key alongside: the key is recovered from the
// (digest, signature) pair. This is the scheme used for burn-redemption
// attestations and multisig operation authorizations, where the verifier
// knows only a whitelist of identities.

// RecoverableSignatureLength is the compact signature size: 1 byte recovery
// id, 32 bytes R, 32 bytes S.
const RecoverableSignatureLength = 65

// RecoverSigner maps a message digest and a compact signature to the
// condition of the identity that produced it. It fails if the signature is
// malformed or does not recover to a valid public key.
func RecoverSigner(digest []byte, sig []byte) (vested.Condition, error) {
	if len(sig) != RecoverableSignatureLength {
		return nil, errors.Wrapf(errors.ErrInput, "signature length %d", len(sig))
	}
	pub, _, err := btcec.RecoverCompact(btcec.S256(), sig, digest)
	if err != nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "cannot recover signer")
	}
	return SignerCondition(pub), nil
}

// SignerCondition encodes a secp256k1 public key into a permission.
func SignerCondition(pub *btcec.PublicKey) vested.Condition {
	return vested.NewCondition(ExtensionName, "secp", pub.SerializeCompressed())
}

// SignRecoverable produces a compact, recoverable signature over the given
// digest.
func SignRecoverable(priv *btcec.PrivateKey, digest []byte) ([]byte, error) {
	sig, err := btcec.SignCompact(btcec.S256(), priv, digest, true)
	if err != nil {
		return nil, errors.Wrap(err, "cannot sign")
	}
	return sig, nil
}

// GenPrivKeySecp256k1 returns a random new recoverable-scheme private key.
func GenPrivKeySecp256k1() *btcec.PrivateKey {
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		panic(err)
	}
	return priv
}
