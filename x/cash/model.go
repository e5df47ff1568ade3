package cash

import (
	"github.com/tendermint/go-amino"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet is the balance of one address in whole units.
type Wallet struct {
	Balance uint64
}

var _ orm.CloneableData = (*Wallet)(nil)

// Marshal implements the persistence interface.
func (w *Wallet) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(w)
}

// Unmarshal implements the persistence interface.
func (w *Wallet) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, w)
}

func (w *Wallet) Validate() error {
	return nil
}

func (w *Wallet) Copy() orm.CloneableData {
	return &Wallet{Balance: w.Balance}
}

// AsWallet safely extracts a Wallet value from any object
func AsWallet(obj orm.Object) *Wallet {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Wallet)
}

// WalletBucket stores balances keyed by address.
type WalletBucket struct {
	orm.Bucket
}

// NewWalletBucket initializes a WalletBucket
func NewWalletBucket() WalletBucket {
	return WalletBucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, new(Wallet))),
	}
}

// GetOrCreate returns the wallet at the address, creating an empty one if
// none exists yet.
func (b WalletBucket) GetOrCreate(db vested.KVStore, addr vested.Address) (orm.Object, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "address")
	}
	obj, err := b.Get(db, addr)
	if err == nil && obj == nil {
		obj = orm.NewSimpleObj(addr, new(Wallet))
	}
	return obj, err
}
