package cash

import (
	"testing"

	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/store"
	"github.com/vested-one/vested/vestedtest"
	"github.com/vested-one/vested/vestedtest/assert"
)

func TestIssueAndMove(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	alice := vestedtest.NewCondition().Address()
	bob := vestedtest.NewCondition().Address()

	assert.Nil(t, c.IssueCoins(db, alice, 1000))

	balance, err := c.Balance(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1000), balance)

	assert.Nil(t, c.MoveCoins(db, alice, bob, 300))

	balance, err = c.Balance(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(700), balance)
	balance, err = c.Balance(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, uint64(300), balance)
}

func TestMoveInsufficientFunds(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	alice := vestedtest.NewCondition().Address()
	bob := vestedtest.NewCondition().Address()

	assert.Nil(t, c.IssueCoins(db, alice, 100))
	assert.IsErr(t, ErrInsufficientFunds, c.MoveCoins(db, alice, bob, 101))

	// the failed transfer left both balances untouched
	balance, err := c.Balance(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(100), balance)
	balance, err = c.Balance(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), balance)

	// an account that never existed holds zero and cannot send
	assert.IsErr(t, ErrInsufficientFunds, c.MoveCoins(db, bob, alice, 1))
}

func TestMoveToSelfRejected(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	alice := vestedtest.NewCondition().Address()

	assert.Nil(t, c.IssueCoins(db, alice, 1000))
	assert.IsErr(t, errors.ErrAmount, c.MoveCoins(db, alice, alice, 400))

	// no value minted or burned
	balance, err := c.Balance(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1000), balance)
}

func TestZeroAmountsRejected(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	alice := vestedtest.NewCondition().Address()
	bob := vestedtest.NewCondition().Address()

	assert.IsErr(t, errors.ErrAmount, c.IssueCoins(db, alice, 0))
	assert.IsErr(t, errors.ErrAmount, c.MoveCoins(db, alice, bob, 0))
}
