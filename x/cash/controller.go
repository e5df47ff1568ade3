package cash

import (
	"math"

	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/orm"
)

// ErrInsufficientFunds is returned when a debit is larger than the balance.
var ErrInsufficientFunds = errors.Register(140, "insufficient funds")

// Controller is the functionality needed by other extensions to move
// value. This is implemented by BaseController and mocked in tests.
type Controller interface {
	MoveCoins(db vested.KVStore, from, to vested.Address, amount uint64) error
	IssueCoins(db vested.KVStore, to vested.Address, amount uint64) error
	Balance(db vested.KVStore, addr vested.Address) (uint64, error)
}

// BaseController implements Controller over the wallet bucket.
type BaseController struct {
	bucket WalletBucket
}

var _ Controller = BaseController{}

// NewController returns a basic controller implementation
func NewController() BaseController {
	return BaseController{bucket: NewWalletBucket()}
}

// Balance returns the amount held at the address. Missing wallets hold
// zero.
func (c BaseController) Balance(db vested.KVStore, addr vested.Address) (uint64, error) {
	obj, err := c.bucket.Get(db, addr)
	if err != nil {
		return 0, err
	}
	if obj == nil {
		return 0, nil
	}
	return AsWallet(obj).Balance, nil
}

// MoveCoins debits one address and credits another atomically within the
// surrounding transaction.
func (c BaseController) MoveCoins(db vested.KVStore, from, to vested.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero transfer")
	}
	// two loads of the same wallet would let the credit overwrite the debit
	if from.Equals(to) {
		return errors.Wrap(errors.ErrAmount, "self transfer")
	}

	src, err := c.bucket.GetOrCreate(db, from)
	if err != nil {
		return err
	}
	sender := AsWallet(src)
	if sender.Balance < amount {
		return errors.Wrapf(ErrInsufficientFunds, "balance %d, debit %d", sender.Balance, amount)
	}

	dst, err := c.bucket.GetOrCreate(db, to)
	if err != nil {
		return err
	}
	recipient := AsWallet(dst)
	if recipient.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "recipient balance")
	}

	sender.Balance -= amount
	recipient.Balance += amount

	if err := c.bucket.Save(db, src); err != nil {
		return err
	}
	return c.bucket.Save(db, dst)
}

// IssueCoins mints new value at the address. Only genesis initialization
// and privileged handlers may reach this.
func (c BaseController) IssueCoins(db vested.KVStore, to vested.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero issue")
	}
	obj, err := c.bucket.GetOrCreate(db, to)
	if err != nil {
		return err
	}
	wallet := AsWallet(obj)
	if wallet.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "balance")
	}
	wallet.Balance += amount
	return c.bucket.Save(db, obj)
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ vested.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial balances from genesis and save them in
// the database.
func (*Initializer) FromGenesis(opts vested.Options, params vested.GenesisParams, kv vested.KVStore) error {
	var accounts []struct {
		Address vested.Address `json:"address"`
		Balance uint64         `json:"balance"`
	}
	if err := opts.ReadOptions("cash", &accounts); err != nil {
		return err
	}

	bucket := NewWalletBucket()
	for i, acc := range accounts {
		if err := acc.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d address", i)
		}
		wallet := &Wallet{Balance: acc.Balance}
		if err := bucket.Save(kv, orm.NewSimpleObj(acc.Address, wallet)); err != nil {
			return errors.Wrapf(err, "cannot save #%d account", i)
		}
	}
	return nil
}
