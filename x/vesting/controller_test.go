package vesting

import (
	"testing"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/store"
	"github.com/vested-one/vested/vestedtest"
	"github.com/vested-one/vested/vestedtest/assert"
)

func poolStore(t testing.TB, budget uint64) vested.KVStore {
	t.Helper()
	db := store.MemStore()
	if err := savePool(db, PoolState{Remaining: budget}); err != nil {
		t.Fatalf("seed pool: %s", err)
	}
	return db
}

func standardTranche() *Tranche {
	return &Tranche{
		Amount:   1000,
		Start:    0,
		Duration: 1000,
		Cliff:    100,
		Expiry:   2000,
	}
}

func TestReleasableSchedule(t *testing.T) {
	cases := map[string]struct {
		now  vested.UnixTime
		want uint64
	}{
		"before cliff":         {now: 50, want: 0},
		"cliff boundary":       {now: 100, want: 0},
		"mid ramp":             {now: 500, want: 400},
		"just before maturity": {now: 999, want: 899},
		"maturity":             {now: 1000, want: 1000},
		"after maturity":       {now: 1500, want: 1000},
		"expiry boundary":      {now: 2000, want: 0},
		"after expiry":         {now: 2500, want: 0},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Releasable(standardTranche(), tc.now))
		})
	}
}

func TestReleasableMonotonicUntilExpiry(t *testing.T) {
	tr := standardTranche()
	prev := uint64(0)
	for now := vested.UnixTime(0); now < tr.Expiry; now += 7 {
		got := Releasable(tr, now)
		if got < prev {
			t.Fatalf("releasable dropped from %d to %d at %d", prev, got, now)
		}
		prev = got
	}
}

func TestReleasableAfterPartialClaim(t *testing.T) {
	tr := standardTranche()
	tr.Claimed = 400
	assert.Equal(t, uint64(0), Releasable(tr, 500))
	assert.Equal(t, uint64(100), Releasable(tr, 600))
	// truncation is recovered at maturity
	assert.Equal(t, uint64(600), Releasable(tr, 1000))
}

func TestReleasableTerminalEntry(t *testing.T) {
	tr := standardTranche()
	tr.Expired = true
	assert.Equal(t, uint64(0), Releasable(tr, 500))
}

func TestCreateReservesPool(t *testing.T) {
	db := poolStore(t, 1000)
	ctrl := NewController()
	alice := vestedtest.NewCondition().Address()

	idx, err := ctrl.Create(db, alice, standardTranche())
	assert.Nil(t, err)
	assert.Equal(t, 0, idx)

	pool, err := ctrl.Pool(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), pool.Remaining)
	assert.Equal(t, uint64(1000), pool.Allocated)
}

func TestCreatePoolExhausted(t *testing.T) {
	db := poolStore(t, 999)
	ctrl := NewController()
	alice := vestedtest.NewCondition().Address()

	// a 1000 tranche does not fit a 999 budget
	_, err := ctrl.Create(db, alice, standardTranche())
	assert.IsErr(t, ErrPoolExhausted, err)

	pool, err := ctrl.Pool(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(999), pool.Remaining)
	assert.Equal(t, uint64(0), pool.Allocated)
}

func TestCreateInvalidSchedule(t *testing.T) {
	db := poolStore(t, 10000)
	ctrl := NewController()
	alice := vestedtest.NewCondition().Address()

	cases := map[string]*Tranche{
		"zero amount": {Amount: 0, Duration: 100, Expiry: 200},
		"cliff beyond duration": {
			Amount: 10, Duration: 100, Cliff: 150, Expiry: 200,
		},
		"expiry before maturity": {
			Amount: 10, Start: 0, Duration: 100, Expiry: 50,
		},
	}
	for name, tr := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ctrl.Create(db, alice, tr)
			if err == nil {
				t.Fatal("invalid schedule accepted")
			}
		})
	}
}

func TestClaimAllStampsCooldown(t *testing.T) {
	db := poolStore(t, 5000)
	ctrl := NewController()
	alice := vestedtest.NewCondition().Address()

	_, err := ctrl.Create(db, alice, standardTranche())
	assert.Nil(t, err)

	total, err := ctrl.ClaimAll(db, alice, 500, 10)
	assert.Nil(t, err)
	assert.Equal(t, uint64(400), total)

	grant, err := ctrl.Grant(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, vested.UnixTime(500), grant.LastClaim)
	assert.Equal(t, uint64(400), grant.TotalClaimed)
	assert.Equal(t, uint64(400), grant.Tranches[0].Claimed)

	pool, err := ctrl.Pool(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(400), pool.Claimed)

	// nothing new releasable yet, but no error and no fresh stamp change
	total, err = ctrl.ClaimAll(db, alice, 500, 10)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), total)
}

func TestClaimAllBoundedByMaxTranches(t *testing.T) {
	db := poolStore(t, 5000)
	ctrl := NewController()
	alice := vestedtest.NewCondition().Address()

	for i := 0; i < 3; i++ {
		_, err := ctrl.Create(db, alice, standardTranche())
		assert.Nil(t, err)
	}

	total, err := ctrl.ClaimAll(db, alice, 1000, 2)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2000), total)

	grant, err := ctrl.Grant(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), grant.Tranches[2].Claimed)
}

func TestClaimOneSkipsCooldownStamp(t *testing.T) {
	db := poolStore(t, 5000)
	ctrl := NewController()
	alice := vestedtest.NewCondition().Address()

	_, err := ctrl.Create(db, alice, standardTranche())
	assert.Nil(t, err)

	amount, err := ctrl.ClaimOne(db, alice, 0, 500)
	assert.Nil(t, err)
	assert.Equal(t, uint64(400), amount)

	grant, err := ctrl.Grant(db, alice)
	assert.Nil(t, err)
	// the single tranche path does not refresh the cooldown clock
	assert.Equal(t, vested.UnixTime(0), grant.LastClaim)
	assert.Equal(t, uint64(400), grant.TotalClaimed)
}

func TestClaimOneBadIndex(t *testing.T) {
	db := poolStore(t, 5000)
	ctrl := NewController()
	alice := vestedtest.NewCondition().Address()

	_, err := ctrl.Create(db, alice, standardTranche())
	assert.Nil(t, err)

	if _, err := ctrl.ClaimOne(db, alice, 4, 500); err == nil {
		t.Fatal("out of range index accepted")
	}
}

func TestMarkExpiredForfeitsRemainder(t *testing.T) {
	db := poolStore(t, 5000)
	ctrl := NewController()
	alice := vestedtest.NewCondition().Address()

	_, err := ctrl.Create(db, alice, standardTranche())
	assert.Nil(t, err)

	// claim part of it, let the rest expire
	_, err = ctrl.ClaimAll(db, alice, 500, 10)
	assert.Nil(t, err)

	marked, err := ctrl.MarkExpired(db, alice, 2500)
	assert.Nil(t, err)
	assert.Equal(t, 1, marked)

	grant, err := ctrl.Grant(db, alice)
	assert.Nil(t, err)
	if !grant.Tranches[0].Expired {
		t.Fatal("tranche not marked terminal")
	}
	assert.Equal(t, uint64(0), Releasable(grant.Tranches[0], 2500))

	pool, err := ctrl.Pool(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(600), pool.Expired)

	// idempotent
	marked, err = ctrl.MarkExpired(db, alice, 2600)
	assert.Nil(t, err)
	assert.Equal(t, 0, marked)

	pool, err = ctrl.Pool(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(600), pool.Expired)
}

func TestMarkExpiredSkipsLiveEntries(t *testing.T) {
	db := poolStore(t, 5000)
	ctrl := NewController()
	alice := vestedtest.NewCondition().Address()

	_, err := ctrl.Create(db, alice, standardTranche())
	assert.Nil(t, err)

	marked, err := ctrl.MarkExpired(db, alice, 1500)
	assert.Nil(t, err)
	assert.Equal(t, 0, marked)
}

func TestRecoverExpiredBounded(t *testing.T) {
	db := poolStore(t, 5000)
	ctrl := NewController()
	alice := vestedtest.NewCondition().Address()

	_, err := ctrl.Create(db, alice, standardTranche())
	assert.Nil(t, err)
	_, err = ctrl.MarkExpired(db, alice, 2500)
	assert.Nil(t, err)

	// only 1000 was forfeited on this grant
	assert.IsErr(t, ErrInsufficientExpired, ctrl.RecoverExpired(db, 1001))
	assert.Nil(t, ctrl.RecoverExpired(db, 600))

	pool, err := ctrl.Pool(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(600), pool.Recovered)

	// the remainder is still recoverable, nothing more
	assert.Nil(t, ctrl.RecoverExpired(db, 400))
	assert.IsErr(t, ErrInsufficientExpired, ctrl.RecoverExpired(db, 1))
}

func TestFundPoolRaisesBudget(t *testing.T) {
	db := poolStore(t, 100)
	ctrl := NewController()

	assert.Nil(t, ctrl.FundPool(db, 900))
	pool, err := ctrl.Pool(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1000), pool.Remaining)
}

func TestClaimedNeverExceedsAmount(t *testing.T) {
	db := poolStore(t, 5000)
	ctrl := NewController()
	alice := vestedtest.NewCondition().Address()

	_, err := ctrl.Create(db, alice, standardTranche())
	assert.Nil(t, err)

	for _, now := range []vested.UnixTime{300, 700, 1000, 1500, 1999} {
		if _, err := ctrl.ClaimAll(db, alice, now, 10); err != nil {
			t.Fatalf("claim at %d: %s", now, err)
		}
	}
	grant, err := ctrl.Grant(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1000), grant.Tranches[0].Claimed)
	assert.Equal(t, uint64(1000), grant.TotalClaimed)
}
