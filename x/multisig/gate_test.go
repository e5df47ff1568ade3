package multisig

import (
	"context"
	"crypto/sha256"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/crypto"
	"github.com/vested-one/vested/store"
	"github.com/vested-one/vested/vestedtest"
	"github.com/vested-one/vested/vestedtest/assert"
	"github.com/vested-one/vested/x/sigs"
)

const gateChainID = "gate-chain-1"

type gateFixture struct {
	ctx    vested.Context
	db     vested.CacheableKVStore
	gate   Gate
	id     []byte
	keys   []*btcec.PrivateKey
	owners []vested.Condition
}

func newGateFixture(t testing.TB, threshold int32) *gateFixture {
	t.Helper()

	keys := make([]*btcec.PrivateKey, DefaultOwnerCount)
	owners := make([]vested.Condition, DefaultOwnerCount)
	for i := range keys {
		keys[i] = vestedtest.NewSecpKey()
		owners[i] = crypto.SignerCondition(keys[i].PubKey())
	}

	db := store.MemStore()
	id, err := NewContractBucket().Create(db, &Contract{Owners: owners, Threshold: threshold})
	assert.Nil(t, err)

	return &gateFixture{
		ctx:    vested.WithChainID(context.Background(), gateChainID),
		db:     db,
		gate:   NewGate(),
		id:     id,
		keys:   keys,
		owners: owners,
	}
}

func (f *gateFixture) sign(t testing.TB, opHash []byte, signers ...int) [][]byte {
	t.Helper()
	digest := sigs.BuildDigest([]byte(gateChainID), opHash)
	out := make([][]byte, len(signers))
	for i, idx := range signers {
		sig, err := crypto.SignRecoverable(f.keys[idx], digest)
		assert.Nil(t, err)
		out[i] = sig
	}
	return out
}

func TestGateExecuteQuorum(t *testing.T) {
	f := newGateFixture(t, 2)
	opHash := sha256.Sum256([]byte("set signer to X"))

	// one signature is below the threshold
	_, err := f.gate.Execute(f.ctx, f.db, f.id, opHash[:], f.sign(t, opHash[:], 0))
	assert.IsErr(t, sigs.ErrQuorumNotMet, err)

	// a failed attempt must not consume the hash
	approvers, err := f.gate.Execute(f.ctx, f.db, f.id, opHash[:], f.sign(t, opHash[:], 0, 2))
	assert.Nil(t, err)
	assert.Equal(t, []vested.Condition{f.owners[0], f.owners[2]}, approvers)
}

func TestGateExecuteOnce(t *testing.T) {
	f := newGateFixture(t, 2)
	opHash := sha256.Sum256([]byte("pause claims"))

	_, err := f.gate.Execute(f.ctx, f.db, f.id, opHash[:], f.sign(t, opHash[:], 0, 1))
	assert.Nil(t, err)

	// a fresh quorum from different owners still cannot re-execute
	_, err = f.gate.Execute(f.ctx, f.db, f.id, opHash[:], f.sign(t, opHash[:], 1, 2))
	assert.IsErr(t, ErrAlreadyExecuted, err)

	// a different operation is unaffected
	other := sha256.Sum256([]byte("unpause claims"))
	_, err = f.gate.Execute(f.ctx, f.db, f.id, other[:], f.sign(t, other[:], 1, 2))
	assert.Nil(t, err)
}

func TestGateExecuteDuplicateSigner(t *testing.T) {
	f := newGateFixture(t, 2)
	opHash := sha256.Sum256([]byte("rotate signer"))

	// two valid signatures plus a duplicate: rejected outright
	sigset := f.sign(t, opHash[:], 0, 1, 1)
	_, err := f.gate.Execute(f.ctx, f.db, f.id, opHash[:], sigset)
	assert.IsErr(t, sigs.ErrDuplicateSigner, err)

	// the hash survives for a clean quorum
	_, err = f.gate.Execute(f.ctx, f.db, f.id, opHash[:], f.sign(t, opHash[:], 0, 1))
	assert.Nil(t, err)
}

func TestGateExecuteWrongChain(t *testing.T) {
	f := newGateFixture(t, 2)
	opHash := sha256.Sum256([]byte("fund pool"))

	// signatures built for another chain recover to strangers
	otherDigest := sigs.BuildDigest([]byte("gate-chain-2"), opHash[:])
	sig0, err := crypto.SignRecoverable(f.keys[0], otherDigest)
	assert.Nil(t, err)
	sig1, err := crypto.SignRecoverable(f.keys[1], otherDigest)
	assert.Nil(t, err)

	_, err = f.gate.Execute(f.ctx, f.db, f.id, opHash[:], [][]byte{sig0, sig1})
	assert.IsErr(t, sigs.ErrUnauthorizedSigner, err)
}

func TestGateIsOwner(t *testing.T) {
	f := newGateFixture(t, 2)

	ok, err := f.gate.IsOwner(f.db, f.id, f.owners[1])
	assert.Nil(t, err)
	assert.Equal(t, true, ok)

	stranger := crypto.SignerCondition(vestedtest.NewSecpKey().PubKey())
	ok, err = f.gate.IsOwner(f.db, f.id, stranger)
	assert.Nil(t, err)
	assert.Equal(t, false, ok)
}
