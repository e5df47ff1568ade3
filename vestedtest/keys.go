package vestedtest

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stellar/go/exp/crypto/derivation"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/crypto"
)

// NewKey returns a random ed25519 signer for transaction signing tests.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a freshly generated key.
func NewCondition() vested.Condition {
	return NewKey().PublicKey().Condition()
}

// NewSecpKey returns a random secp256k1 key for recovery scheme tests.
func NewSecpKey() *btcec.PrivateKey {
	return crypto.GenPrivKeySecp256k1()
}

// DeriveKey produces a deterministic ed25519 signer from a hex seed and a
// SLIP-0010 derivation path. Tests that need stable, reproducible identities
// across runs (for example genesis fixtures) should use this instead of
// NewKey.
func DeriveKey(t testing.TB, hexSeed, path string) crypto.Signer {
	t.Helper()

	seed, err := hex.DecodeString(hexSeed)
	if err != nil {
		t.Fatalf("cannot decode seed: %s", err)
	}
	k, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		t.Fatalf("cannot derive key for path %q: %s", path, err)
	}
	return crypto.PrivKeyEd25519FromSeed(k.Key)
}
