package vesting

import (
	"math"
	"math/big"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
)

// Controller owns the tranche collections and the pool accounting. It
// performs no authorization and no ledger transfers; handlers do.
type Controller struct {
	grants GrantBucket
}

// NewController returns a controller over the default buckets.
func NewController() Controller {
	return Controller{grants: NewGrantBucket()}
}

// Releasable computes what the tranche can release at the given time.
// Expiry is a hard cutoff checked before the cliff and the linear math:
// a matured but unclaimed tranche forfeits its remainder at expiry.
func Releasable(t *Tranche, now vested.UnixTime) uint64 {
	if t.Expired {
		return 0
	}
	if now >= t.Expiry {
		return 0
	}
	if now < t.Start.Add(t.Cliff.Duration()) {
		return 0
	}
	vestedAmount := linearVested(t, now)
	if vestedAmount <= t.Claimed {
		return 0
	}
	return vestedAmount - t.Claimed
}

// linearVested returns amount * (elapsed - cliff) / duration with the
// product carried in big integers so it cannot overflow. The ramp starts
// after the cliff but keeps the full duration as denominator, so the
// last portion unlocks at maturity together with any remainder the
// integer division truncated: at elapsed >= duration the result is the
// full amount.
func linearVested(t *Tranche, now vested.UnixTime) uint64 {
	elapsed := int64(now) - int64(t.Start)
	if elapsed >= int64(t.Duration) {
		return t.Amount
	}
	ramp := elapsed - int64(t.Cliff)
	if ramp <= 0 {
		return 0
	}
	product := new(big.Int).Mul(
		new(big.Int).SetUint64(t.Amount),
		big.NewInt(ramp),
	)
	product.Quo(product, big.NewInt(int64(t.Duration)))
	return product.Uint64()
}

// Create appends a tranche to the recipient's grant and reserves its
// amount from the pool. It returns the index of the new tranche.
func (c Controller) Create(db vested.KVStore, recipient vested.Address, t *Tranche) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	if t.Claimed != 0 {
		return 0, errors.Wrap(errors.ErrInput, "new tranche cannot be claimed")
	}

	obj, err := c.grants.GetOrCreate(db, recipient)
	if err != nil {
		return 0, err
	}
	grant := AsGrant(obj)
	if len(grant.Tranches) >= MaxTranchesPerRecipient {
		return 0, errors.Wrapf(ErrCapacityExceeded, "%d tranches", len(grant.Tranches))
	}

	pool, err := loadPool(db)
	if err != nil {
		return 0, err
	}
	if t.Amount > pool.Remaining {
		return 0, errors.Wrapf(ErrPoolExhausted, "%d remaining, %d requested", pool.Remaining, t.Amount)
	}
	pool.Remaining -= t.Amount
	pool.Allocated += t.Amount

	grant.Tranches = append(grant.Tranches, t)
	if err := c.grants.Save(db, obj); err != nil {
		return 0, err
	}
	if err := savePool(db, pool); err != nil {
		return 0, err
	}
	return len(grant.Tranches) - 1, nil
}

// ClaimAll advances the claim state of up to maxTranches tranches and
// returns the total released. A zero total is not an error here; the
// handler decides whether that is worth reporting. The recipient's
// cooldown stamp is advanced, which is why the single tranche path does
// not go through this method.
func (c Controller) ClaimAll(db vested.KVStore, recipient vested.Address, now vested.UnixTime, maxTranches int) (uint64, error) {
	obj, err := c.grants.GetOrCreate(db, recipient)
	if err != nil {
		return 0, err
	}
	grant := AsGrant(obj)

	var total uint64
	n := len(grant.Tranches)
	if maxTranches > 0 && maxTranches < n {
		n = maxTranches
	}
	for _, t := range grant.Tranches[:n] {
		due := Releasable(t, now)
		if due == 0 {
			continue
		}
		if total > math.MaxUint64-due {
			return 0, errors.Wrap(errors.ErrOverflow, "claim total")
		}
		t.Claimed += due
		total += due
	}
	if total == 0 {
		return 0, nil
	}

	grant.TotalClaimed += total
	grant.LastClaim = now
	if err := c.grants.Save(db, obj); err != nil {
		return 0, err
	}
	return total, c.addClaimed(db, total)
}

// ClaimOne releases a single tranche by its index.
func (c Controller) ClaimOne(db vested.KVStore, recipient vested.Address, index int, now vested.UnixTime) (uint64, error) {
	obj, err := c.grants.GetOrCreate(db, recipient)
	if err != nil {
		return 0, err
	}
	grant := AsGrant(obj)
	if index < 0 || index >= len(grant.Tranches) {
		return 0, errors.Wrapf(errors.ErrInput, "index %d of %d tranches", index, len(grant.Tranches))
	}

	t := grant.Tranches[index]
	due := Releasable(t, now)
	if due == 0 {
		return 0, nil
	}
	t.Claimed += due
	grant.TotalClaimed += due
	if err := c.grants.Save(db, obj); err != nil {
		return 0, err
	}
	return due, c.addClaimed(db, due)
}

// MarkExpired sweeps the recipient's tranches and terminates every one
// past its expiry that still holds an unclaimed remainder, crediting that
// remainder to the expired accounting. Already terminal tranches are
// skipped, so the sweep is idempotent. Returns the count of tranches
// newly marked.
func (c Controller) MarkExpired(db vested.KVStore, recipient vested.Address, now vested.UnixTime) (int, error) {
	obj, err := c.grants.GetOrCreate(db, recipient)
	if err != nil {
		return 0, err
	}
	grant := AsGrant(obj)

	var marked int
	var forfeited uint64
	for _, t := range grant.Tranches {
		if t.Expired || now < t.Expiry || t.Claimed >= t.Amount {
			continue
		}
		t.Expired = true
		forfeited += t.Amount - t.Claimed
		marked++
	}
	if marked == 0 {
		return 0, nil
	}

	if err := c.grants.Save(db, obj); err != nil {
		return 0, err
	}
	pool, err := loadPool(db)
	if err != nil {
		return 0, err
	}
	pool.Expired += forfeited
	return marked, savePool(db, pool)
}

// RecoverExpired draws from funds already accounted as expired. It only
// moves accounting; the handler transfers the matching value to the DAO.
func (c Controller) RecoverExpired(db vested.KVStore, amount uint64) error {
	pool, err := loadPool(db)
	if err != nil {
		return err
	}
	if available := pool.expiredAvailable(); amount > available {
		return errors.Wrapf(ErrInsufficientExpired, "%d available, %d requested", available, amount)
	}
	pool.Recovered += amount
	return savePool(db, pool)
}

// FundPool raises the pool's remaining budget. The handler moves the
// matching value onto the pool account.
func (c Controller) FundPool(db vested.KVStore, amount uint64) error {
	pool, err := loadPool(db)
	if err != nil {
		return err
	}
	if pool.Remaining > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "pool remaining")
	}
	pool.Remaining += amount
	return savePool(db, pool)
}

// Grant returns the recipient's grant, or nil if none exists.
func (c Controller) Grant(db vested.ReadOnlyKVStore, recipient vested.Address) (*Grant, error) {
	obj, err := c.grants.Get(db, recipient)
	if err != nil {
		return nil, err
	}
	return AsGrant(obj), nil
}

// Pool returns the pool accounting singleton.
func (c Controller) Pool(db vested.ReadOnlyKVStore) (PoolState, error) {
	return loadPool(db)
}

func (c Controller) addClaimed(db vested.KVStore, amount uint64) error {
	pool, err := loadPool(db)
	if err != nil {
		return err
	}
	pool.Claimed += amount
	return savePool(db, pool)
}
