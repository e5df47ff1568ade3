package vesting

import (
	"github.com/tendermint/go-amino"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/orm"
)

const (
	// GrantBucketName is where we store per recipient grants
	GrantBucketName = "grants"
	// BlacklistBucketName is where we store excluded addresses
	BlacklistBucketName = "blist"

	// MaxTranchesPerRecipient bounds the work a single claim or expiry
	// sweep can require.
	MaxTranchesPerRecipient = 100
)

// Tranche is a single scheduled release of value. Claimed only grows;
// once Expired is set the tranche is terminal and releases nothing.
type Tranche struct {
	Amount   uint64
	Start    vested.UnixTime
	Duration vested.UnixDuration
	Cliff    vested.UnixDuration
	Expiry   vested.UnixTime
	Claimed  uint64
	Booster  uint32
	Proof    []byte
	Expired  bool
}

// Validate checks the schedule invariants enforced at creation time.
func (t *Tranche) Validate() error {
	if t.Amount == 0 {
		return errors.Wrap(ErrInvalidSchedule, "zero amount")
	}
	if t.Duration <= 0 {
		return errors.Wrap(ErrInvalidSchedule, "non-positive duration")
	}
	if t.Cliff < 0 || t.Cliff > t.Duration {
		return errors.Wrap(ErrInvalidSchedule, "cliff outside duration")
	}
	if t.Expiry < t.Start.Add(t.Duration.Duration()) {
		return errors.Wrap(ErrInvalidSchedule, "expiry before maturity")
	}
	if t.Claimed > t.Amount {
		return errors.Wrap(errors.ErrModel, "claimed above amount")
	}
	return nil
}

func (t *Tranche) clone() *Tranche {
	c := *t
	c.Proof = append([]byte(nil), t.Proof...)
	return &c
}

// Grant is the per recipient account: the ordered tranche list plus claim
// bookkeeping. Tranche order is insertion order and indexes single claims.
type Grant struct {
	Tranches     []*Tranche
	TotalClaimed uint64
	LastClaim    vested.UnixTime
}

var _ orm.CloneableData = (*Grant)(nil)

// Marshal implements the persistence interface.
func (g *Grant) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(g)
}

// Unmarshal implements the persistence interface.
func (g *Grant) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, g)
}

func (g *Grant) Validate() error {
	if len(g.Tranches) > MaxTranchesPerRecipient {
		return errors.Wrap(ErrCapacityExceeded, "too many tranches")
	}
	for i, t := range g.Tranches {
		if err := t.Validate(); err != nil {
			return errors.Wrapf(err, "tranche %d", i)
		}
	}
	return nil
}

func (g *Grant) Copy() orm.CloneableData {
	tranches := make([]*Tranche, len(g.Tranches))
	for i, t := range g.Tranches {
		tranches[i] = t.clone()
	}
	return &Grant{
		Tranches:     tranches,
		TotalClaimed: g.TotalClaimed,
		LastClaim:    g.LastClaim,
	}
}

// AsGrant safely extracts a Grant value from any object
func AsGrant(obj orm.Object) *Grant {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Grant)
}

// GrantBucket stores grants keyed by recipient address.
type GrantBucket struct {
	orm.Bucket
}

// NewGrantBucket initializes a GrantBucket
func NewGrantBucket() GrantBucket {
	return GrantBucket{
		Bucket: orm.NewBucket(GrantBucketName, orm.NewSimpleObj(nil, new(Grant))),
	}
}

// GetOrCreate returns the grant of the recipient, creating an empty one
// if none exists yet.
func (b GrantBucket) GetOrCreate(db vested.KVStore, recipient vested.Address) (orm.Object, error) {
	if err := recipient.Validate(); err != nil {
		return nil, errors.Wrap(err, "recipient")
	}
	obj, err := b.Get(db, recipient)
	if err == nil && obj == nil {
		obj = orm.NewSimpleObj(recipient, new(Grant))
	}
	return obj, err
}

// PoolState is the singleton accounting record of the vesting pool.
// Remaining never goes negative; the other counters only grow.
type PoolState struct {
	Remaining uint64
	Allocated uint64
	Expired   uint64
	Recovered uint64
	Claimed   uint64
}

// expiredAvailable is what RecoverExpired may still draw.
func (p *PoolState) expiredAvailable() uint64 {
	return p.Expired - p.Recovered
}

// outstanding is the value the pool account must keep to back the
// remaining budget and every unclaimed schedule.
func (p *PoolState) outstanding() uint64 {
	return p.Remaining + p.Allocated - p.Claimed - p.Recovered
}

func (p *PoolState) Validate() error {
	if p.Recovered > p.Expired {
		return errors.Wrap(errors.ErrState, "recovered above expired")
	}
	return nil
}

// Marshal implements the persistence interface.
func (p *PoolState) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(p)
}

// Unmarshal implements the persistence interface.
func (p *PoolState) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, p)
}

// Blacklisted reports whether the address is excluded from claims.
func Blacklisted(db vested.ReadOnlyKVStore, addr vested.Address) (bool, error) {
	return db.Has(blacklistKey(addr))
}

// SetBlacklisted flips the exclusion flag of the address.
func SetBlacklisted(db vested.KVStore, addr vested.Address, blocked bool) error {
	if blocked {
		return db.Set(blacklistKey(addr), []byte{1})
	}
	return db.Delete(blacklistKey(addr))
}

func blacklistKey(addr vested.Address) []byte {
	return append([]byte(BlacklistBucketName+":"), addr...)
}
