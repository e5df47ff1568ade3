package vesting

import (
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/gconf"
	"github.com/vested-one/vested/x/cash"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ vested.Initializer = (*Initializer)(nil)

// FromGenesis loads the configuration singleton, seeds the pool budget
// and funds the pool account with the same amount.
func (*Initializer) FromGenesis(opts vested.Options, params vested.GenesisParams, kv vested.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, pkgName, &conf); err != nil {
		return errors.Wrap(err, "init configuration")
	}

	var vesting struct {
		PoolBudget uint64 `json:"pool_budget"`
	}
	if err := opts.ReadOptions("vesting", &vesting); err != nil {
		return errors.Wrap(err, "read vesting options")
	}
	if conf.MinBudget != 0 && vesting.PoolBudget < conf.MinBudget {
		return errors.Wrapf(errors.ErrInput, "pool budget below configured minimum %d", conf.MinBudget)
	}

	pool := PoolState{Remaining: vesting.PoolBudget}
	if err := savePool(kv, pool); err != nil {
		return errors.Wrap(err, "save pool state")
	}

	// back the budget with actual funds on the pool account
	if vesting.PoolBudget > 0 {
		control := cash.NewController()
		if err := control.IssueCoins(kv, PoolAddress(), vesting.PoolBudget); err != nil {
			return errors.Wrap(err, "fund pool account")
		}
	}
	return nil
}
