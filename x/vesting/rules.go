package vesting

import (
	"math"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/x/timelock"
)

// Governed parameter keys recognized by the timelock rule table.
const (
	ParamRate      = "rate"
	ParamCooldown  = "cooldown"
	ParamBatch     = "batch"
	ParamMinBudget = "minbudget"
)

// TimelockRules is the full set of numeric parameters that can only be
// changed through the timelock queue.
func TimelockRules() map[string]timelock.Rule {
	return map[string]timelock.Rule{
		ParamRate: {
			Validate: func(v uint64) error {
				if v == 0 {
					return errors.Wrap(errors.ErrInput, "rate must be positive")
				}
				return nil
			},
			Apply: func(db vested.KVStore, v uint64) error {
				return patchConf(db, func(c *Configuration) {
					c.Rate = v
				})
			},
		},
		ParamCooldown: {
			Validate: func(v uint64) error {
				if v > math.MaxInt32 {
					return errors.Wrap(errors.ErrInput, "cooldown out of range")
				}
				return nil
			},
			Apply: func(db vested.KVStore, v uint64) error {
				return patchConf(db, func(c *Configuration) {
					c.Cooldown = vested.UnixDuration(v)
				})
			},
		},
		ParamBatch: {
			Validate: func(v uint64) error {
				if v < 1 || v > MaxTranchesPerRecipient {
					return errors.Wrapf(errors.ErrInput, "batch must be in [1, %d]", MaxTranchesPerRecipient)
				}
				return nil
			},
			Apply: func(db vested.KVStore, v uint64) error {
				return patchConf(db, func(c *Configuration) {
					c.ClaimBatch = uint32(v)
				})
			},
		},
		ParamMinBudget: {
			Validate: func(v uint64) error {
				if v != 0 && v < MinBudgetFloor {
					return errors.Wrapf(errors.ErrInput, "min budget below floor %d", MinBudgetFloor)
				}
				return nil
			},
			Apply: func(db vested.KVStore, v uint64) error {
				return patchConf(db, func(c *Configuration) {
					c.MinBudget = v
				})
			},
		},
	}
}

func patchConf(db vested.KVStore, fn func(*Configuration)) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	fn(&conf)
	if err := conf.Validate(); err != nil {
		return err
	}
	return saveConf(db, conf)
}
