package multisig

import (
	"context"
	"testing"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/crypto"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/store"
	"github.com/vested-one/vested/vestedtest"
	"github.com/vested-one/vested/vestedtest/assert"
)

func TestCreateContractHandler(t *testing.T) {
	db := store.MemStore()
	signer := vestedtest.NewCondition()
	auth := &vestedtest.Auth{Signer: signer}
	h := CreateContractMsgHandler{auth, NewContractBucket()}

	owners := []vested.Condition{
		crypto.SignerCondition(vestedtest.NewSecpKey().PubKey()),
		crypto.SignerCondition(vestedtest.NewSecpKey().PubKey()),
		crypto.SignerCondition(vestedtest.NewSecpKey().PubKey()),
	}
	ctx := context.Background()

	tx := &vestedtest.Tx{Msg: &CreateContractMsg{Owners: owners, Threshold: 2}}
	cres, err := h.Check(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, creationCost, cres.GasAllocated)

	res, err := h.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	contract, err := h.bucket.GetContract(db, res.Data)
	assert.Nil(t, err)
	assert.Equal(t, owners, contract.Owners)
	assert.Equal(t, int32(2), contract.Threshold)

	// invalid threshold never reaches the store
	bad := &vestedtest.Tx{Msg: &CreateContractMsg{Owners: owners, Threshold: 9}}
	_, err = h.Deliver(ctx, db, bad)
	assert.IsErr(t, ErrInvalidThreshold, err)

	// an unauthenticated request is rejected
	anon := CreateContractMsgHandler{&vestedtest.Auth{}, NewContractBucket()}
	_, err = anon.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}
