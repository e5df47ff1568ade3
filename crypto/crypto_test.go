package crypto

import (
	"crypto/sha256"
	"testing"
)

func TestEd25519SignVerify(t *testing.T) {
	priv := GenPrivKeyEd25519()
	pub := priv.PublicKey()

	msg := []byte("claim 400 units")
	sig, err := priv.Sign(msg)
	if err != nil {
		t.Fatalf("cannot sign: %s", err)
	}
	if !pub.Verify(msg, sig) {
		t.Fatal("signature must verify")
	}
	if pub.Verify([]byte("claim 500 units"), sig) {
		t.Fatal("signature must not verify another message")
	}

	other := GenPrivKeyEd25519().PublicKey()
	if other.Verify(msg, sig) {
		t.Fatal("signature must not verify under another key")
	}
}

func TestEd25519Deterministic(t *testing.T) {
	seed := make([]byte, 32)
	copy(seed, "determinism is a feature")

	a := PrivKeyEd25519FromSeed(seed)
	b := PrivKeyEd25519FromSeed(seed)
	if !a.PublicKey().Condition().Equals(b.PublicKey().Condition()) {
		t.Fatal("same seed must produce the same key")
	}
}

func TestRecoverSigner(t *testing.T) {
	priv := GenPrivKeySecp256k1()
	digest := sha256.Sum256([]byte("burn proof"))

	sig, err := SignRecoverable(priv, digest[:])
	if err != nil {
		t.Fatalf("cannot sign: %s", err)
	}

	cond, err := RecoverSigner(digest[:], sig)
	if err != nil {
		t.Fatalf("cannot recover: %s", err)
	}
	want := SignerCondition(priv.PubKey())
	if !cond.Equals(want) {
		t.Fatalf("recovered %q, want %q", cond, want)
	}

	// a different digest recovers a different identity, never the signer
	other := sha256.Sum256([]byte("other payload"))
	cond, err = RecoverSigner(other[:], sig)
	if err == nil && cond.Equals(want) {
		t.Fatal("signature must not bind to another digest")
	}
}

func TestRecoverSignerMalformed(t *testing.T) {
	digest := sha256.Sum256([]byte("payload"))

	cases := map[string][]byte{
		"empty":     {},
		"too short": make([]byte, 64),
		"too long":  make([]byte, 66),
	}
	for testName, sig := range cases {
		t.Run(testName, func(t *testing.T) {
			if _, err := RecoverSigner(digest[:], sig); err == nil {
				t.Fatal("malformed signature must be rejected")
			}
		})
	}
}
