package timelock

import (
	"testing"
	"time"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/store"
	"github.com/vested-one/vested/vestedtest/assert"
)

func TestProposeApplyBoundary(t *testing.T) {
	db := store.MemStore()
	gov := NewGovernor()

	const day = vested.UnixDuration(24 * 60 * 60)
	start := vested.UnixTime(1500000000)

	eligible, err := gov.Propose(db, "rate", 500, 3*day, start)
	assert.Nil(t, err)
	assert.Equal(t, start.Add((3 * day).Duration()), eligible)

	// one second early is still locked
	_, err = gov.Apply(db, "rate", eligible-1, nil)
	assert.IsErr(t, ErrTimelockActive, err)

	// exactly at the eligible time the value is released
	value, err := gov.Apply(db, "rate", eligible, nil)
	assert.Nil(t, err)
	assert.Equal(t, uint64(500), value)

	// the pending entry is cleared by a successful apply
	_, err = gov.Apply(db, "rate", eligible, nil)
	assert.IsErr(t, ErrNoPendingChange, err)
}

func TestProposeOverwrites(t *testing.T) {
	db := store.MemStore()
	gov := NewGovernor()

	now := vested.UnixTime(1000)
	_, err := gov.Propose(db, "cooldown", 100, 50, now)
	assert.Nil(t, err)

	// last proposal wins, including its fresh delay
	eligible, err := gov.Propose(db, "cooldown", 200, 500, now)
	assert.Nil(t, err)

	_, err = gov.Apply(db, "cooldown", now.Add(50 * time.Second), nil)
	assert.IsErr(t, ErrTimelockActive, err)

	value, err := gov.Apply(db, "cooldown", eligible, nil)
	assert.Nil(t, err)
	assert.Equal(t, uint64(200), value)
}

func TestApplyValidatesValue(t *testing.T) {
	db := store.MemStore()
	gov := NewGovernor()

	now := vested.UnixTime(1000)
	_, err := gov.Propose(db, "batch", 300, 10, now)
	assert.Nil(t, err)

	atMost100 := func(v uint64) error {
		if v < 1 || v > 100 {
			return errors.Wrapf(errors.ErrInput, "%d outside [1,100]", v)
		}
		return nil
	}

	_, err = gov.Apply(db, "batch", now.Add(10 * time.Second), atMost100)
	assert.IsErr(t, ErrInvalidValue, err)

	// the rejected proposal stays pending until overwritten
	pending, err := gov.Pending(db, "batch")
	assert.Nil(t, err)
	assert.Equal(t, uint64(300), pending.Value)

	_, err = gov.Propose(db, "batch", 50, 10, now)
	assert.Nil(t, err)
	value, err := gov.Apply(db, "batch", now.Add(10 * time.Second), atMost100)
	assert.Nil(t, err)
	assert.Equal(t, uint64(50), value)
}

func TestParametersAreIndependent(t *testing.T) {
	db := store.MemStore()
	gov := NewGovernor()

	now := vested.UnixTime(1000)
	_, err := gov.Propose(db, "rate", 7, 10, now)
	assert.Nil(t, err)

	_, err = gov.Apply(db, "cooldown", now.Add(10 * time.Second), nil)
	assert.IsErr(t, ErrNoPendingChange, err)
}

func TestProposeRejectsBadDelay(t *testing.T) {
	db := store.MemStore()
	gov := NewGovernor()

	_, err := gov.Propose(db, "rate", 7, 0, 1000)
	assert.IsErr(t, errors.ErrInput, err)
	_, err = gov.Propose(db, "rate", 7, -5, 1000)
	assert.IsErr(t, errors.ErrInput, err)
}
