package multisig

import (
	"testing"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/crypto"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/store"
	"github.com/vested-one/vested/vestedtest"
	"github.com/vested-one/vested/vestedtest/assert"
)

func TestContractValidate(t *testing.T) {
	owners := make([]vested.Condition, 3)
	for i := range owners {
		owners[i] = crypto.SignerCondition(vestedtest.NewSecpKey().PubKey())
	}

	cases := map[string]struct {
		contract Contract
		wantErr  *errors.Error
	}{
		"default three owner contract": {
			contract: Contract{Owners: owners, Threshold: 2},
		},
		"single owner": {
			contract: Contract{Owners: owners[:1], Threshold: 1},
		},
		"no owners": {
			contract: Contract{Threshold: 1},
			wantErr:  errors.ErrModel,
		},
		"threshold zero": {
			contract: Contract{Owners: owners, Threshold: 0},
			wantErr:  ErrInvalidThreshold,
		},
		"threshold above owner count": {
			contract: Contract{Owners: owners, Threshold: 4},
			wantErr:  ErrInvalidThreshold,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.contract.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}
		})
	}
}

func TestContractBucketRoundTrip(t *testing.T) {
	db := store.MemStore()
	b := NewContractBucket()

	contract := &Contract{
		Owners: []vested.Condition{
			crypto.SignerCondition(vestedtest.NewSecpKey().PubKey()),
			crypto.SignerCondition(vestedtest.NewSecpKey().PubKey()),
		},
		Threshold: 2,
	}
	id, err := b.Create(db, contract)
	assert.Nil(t, err)
	if len(id) == 0 {
		t.Fatal("empty contract id")
	}

	got, err := b.GetContract(db, id)
	assert.Nil(t, err)
	assert.Equal(t, contract.Threshold, got.Threshold)
	assert.Equal(t, contract.Owners, got.Owners)

	assert.Equal(t, true, got.IsOwner(contract.Owners[0]))
	stranger := crypto.SignerCondition(vestedtest.NewSecpKey().PubKey())
	assert.Equal(t, false, got.IsOwner(stranger))

	_, err = b.GetContract(db, []byte("missing"))
	assert.IsErr(t, errors.ErrNotFound, err)
}
