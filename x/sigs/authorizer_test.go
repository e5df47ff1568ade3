package sigs

import (
	"crypto/sha256"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/crypto"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/vestedtest"
	"github.com/vested-one/vested/vestedtest/assert"
)

func TestBuildDigest(t *testing.T) {
	domain := []byte("chain-123")
	payload := sha256.Sum256([]byte("payload"))

	d1 := BuildDigest(domain, payload[:])
	d2 := BuildDigest(domain, payload[:])
	assert.Equal(t, d1, d2)

	// any domain change must produce a different digest
	d3 := BuildDigest([]byte("chain-124"), payload[:])
	if string(d1) == string(d3) {
		t.Fatal("digest must be domain bound")
	}

	// the digest must not be a plain hash of the payload
	plain := sha256.Sum256(payload[:])
	if string(d1) == string(plain[:]) {
		t.Fatal("digest must be prefixed")
	}
}

func TestVerifyWhitelisted(t *testing.T) {
	signer := vestedtest.NewSecpKey()
	stranger := vestedtest.NewSecpKey()
	digest := BuildDigest([]byte("chain-123"), []byte("claim"))

	sig, err := crypto.SignRecoverable(signer, digest)
	assert.Nil(t, err)

	expected := crypto.SignerCondition(signer.PubKey())

	if err := VerifyWhitelisted(digest, sig, expected); err != nil {
		t.Fatalf("valid attestation rejected: %+v", err)
	}

	// a signature from anyone else must not pass
	badSig, err := crypto.SignRecoverable(stranger, digest)
	assert.Nil(t, err)
	assert.IsErr(t, errors.ErrUnauthorized, VerifyWhitelisted(digest, badSig, expected))

	// a valid signature over a different digest recovers a different key
	other := BuildDigest([]byte("chain-123"), []byte("other"))
	assert.IsErr(t, errors.ErrUnauthorized, VerifyWhitelisted(other, sig, expected))

	// malformed signatures are rejected before recovery
	assert.IsErr(t, errors.ErrInput, VerifyWhitelisted(digest, sig[:10], expected))
}

func TestVerifyQuorum(t *testing.T) {
	keys := make([]*btcec.PrivateKey, 3)
	owners := make([]vested.Condition, 3)
	for i := range keys {
		k := vestedtest.NewSecpKey()
		keys[i] = k
		owners[i] = crypto.SignerCondition(k.PubKey())
	}
	outsider := vestedtest.NewSecpKey()
	digest := BuildDigest([]byte("chain-123"), []byte("set rate"))

	sign := func(k *btcec.PrivateKey) []byte {
		sig, err := crypto.SignRecoverable(k, digest)
		assert.Nil(t, err)
		return sig
	}

	cases := map[string]struct {
		sigs      [][]byte
		threshold int
		wantErr   *errors.Error
		want      []vested.Condition
	}{
		"two distinct owners meet a 2 of 3 quorum": {
			sigs:      [][]byte{sign(keys[0]), sign(keys[2])},
			threshold: 2,
			want:      []vested.Condition{owners[0], owners[2]},
		},
		"all owners": {
			sigs:      [][]byte{sign(keys[0]), sign(keys[1]), sign(keys[2])},
			threshold: 3,
			want:      owners,
		},
		"duplicate signer rejected even above threshold": {
			sigs:      [][]byte{sign(keys[0]), sign(keys[1]), sign(keys[1])},
			threshold: 2,
			wantErr:   ErrDuplicateSigner,
		},
		"signer outside the owner set": {
			sigs:      [][]byte{sign(keys[0]), sign(outsider)},
			threshold: 2,
			wantErr:   ErrUnauthorizedSigner,
		},
		"too few signatures": {
			sigs:      [][]byte{sign(keys[1])},
			threshold: 2,
			wantErr:   ErrQuorumNotMet,
		},
		"no signatures": {
			sigs:      nil,
			threshold: 1,
			wantErr:   ErrQuorumNotMet,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := VerifyQuorum(digest, tc.sigs, owners, tc.threshold)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
