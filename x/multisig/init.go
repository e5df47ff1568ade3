package multisig

import (
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ vested.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial contracts from genesis and save them in
// the database.
func (*Initializer) FromGenesis(opts vested.Options, params vested.GenesisParams, kv vested.KVStore) error {
	var contracts []struct {
		Owners    []vested.Condition `json:"owners"`
		Threshold int32              `json:"threshold"`
	}
	if err := opts.ReadOptions("multisig", &contracts); err != nil {
		return err
	}

	bucket := NewContractBucket()
	for i, c := range contracts {
		contract := &Contract{
			Owners:    c.Owners,
			Threshold: c.Threshold,
		}
		if _, err := bucket.Create(kv, contract); err != nil {
			return errors.Wrapf(err, "cannot save #%d contract", i)
		}
	}
	return nil
}
