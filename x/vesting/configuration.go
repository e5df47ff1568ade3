package vesting

import (
	"github.com/tendermint/go-amino"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/gconf"
)

const (
	// pkgName keys the gconf singletons of this package.
	pkgName     = "vesting"
	poolPkgName = "vesting_pool"

	// MinBudgetFloor is the smallest non-zero value the compute budget
	// parameter may take.
	MinBudgetFloor = 1000
)

// Configuration is the live parameter set of the entitlement service.
// It is written at genesis and afterwards changed only through the
// owner gated update message or a matured timelock proposal.
type Configuration struct {
	// Owner may update this configuration and run privileged recoveries.
	Owner vested.Address `json:"owner"`
	// Signer is the whitelisted identity vouching for burn redemptions.
	Signer vested.Condition `json:"signer"`
	// DAO receives recovered expired funds.
	DAO vested.Address `json:"dao"`
	// Rate converts burned units into vested units.
	Rate uint64 `json:"rate"`
	// Cooldown is the minimum gap between two full claims of a
	// recipient, in seconds.
	Cooldown vested.UnixDuration `json:"cooldown"`
	// ClaimBatch caps tranches processed per claim call.
	ClaimBatch uint32 `json:"claim_batch"`
	// MinBudget is the compute budget floor; zero disables the check.
	MinBudget uint64 `json:"min_budget"`
	// ClaimPaused switches the claim paths off.
	ClaimPaused bool `json:"claim_paused"`
	// VestingPaused switches tranche creation off.
	VestingPaused bool `json:"vesting_paused"`
}

var _ gconf.Configuration = (*Configuration)(nil)

// Marshal implements the persistence interface.
func (c *Configuration) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(c)
}

// Unmarshal implements the persistence interface.
func (c *Configuration) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, c)
}

func (c *Configuration) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := c.Signer.Validate(); err != nil {
		return errors.Wrap(err, "signer")
	}
	if err := c.DAO.Validate(); err != nil {
		return errors.Wrap(err, "dao")
	}
	if c.Rate == 0 {
		return errors.Wrap(errors.ErrState, "zero rate")
	}
	if c.Cooldown < 0 {
		return errors.Wrap(errors.ErrState, "negative cooldown")
	}
	if c.ClaimBatch < 1 || c.ClaimBatch > MaxTranchesPerRecipient {
		return errors.Wrapf(errors.ErrState, "claim batch outside [1,%d]", MaxTranchesPerRecipient)
	}
	if c.MinBudget != 0 && c.MinBudget < MinBudgetFloor {
		return errors.Wrapf(errors.ErrState, "min budget below %d", MinBudgetFloor)
	}
	return nil
}

// patch returns a copy of the configuration with every non-zero field of
// the patch applied. Pause flags are not part of the patch; they have
// their own message.
func (c Configuration) patch(p Configuration) Configuration {
	if len(p.Owner) != 0 {
		c.Owner = p.Owner
	}
	if len(p.Signer) != 0 {
		c.Signer = p.Signer
	}
	if len(p.DAO) != 0 {
		c.DAO = p.DAO
	}
	if p.Rate != 0 {
		c.Rate = p.Rate
	}
	if p.Cooldown != 0 {
		c.Cooldown = p.Cooldown
	}
	if p.ClaimBatch != 0 {
		c.ClaimBatch = p.ClaimBatch
	}
	if p.MinBudget != 0 {
		c.MinBudget = p.MinBudget
	}
	return c
}

// loadConf returns the configuration singleton.
func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, pkgName, &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}

func saveConf(db gconf.Store, conf Configuration) error {
	return gconf.Save(db, pkgName, &conf)
}

// loadPool returns the pool accounting singleton.
func loadPool(db gconf.ReadStore) (PoolState, error) {
	var pool PoolState
	if err := gconf.Load(db, poolPkgName, &pool); err != nil {
		return pool, errors.Wrap(err, "load pool")
	}
	return pool, nil
}

func savePool(db gconf.Store, pool PoolState) error {
	return gconf.Save(db, poolPkgName, &pool)
}

// Authority resolves the timelock authority to the configured owner.
type Authority struct{}

// Authority implements the timelock authority lookup.
func (Authority) Authority(db vested.ReadOnlyKVStore) (vested.Address, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	return conf.Owner, nil
}
