package multisig

import (
	"github.com/tendermint/go-amino"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/orm"
)

const (
	// BucketName is where we store the contracts
	BucketName = "contracts"
	// SequenceName is an auto-increment ID counter for contracts
	SequenceName = "id"

	// DefaultOwnerCount is the owner set size used by the standard
	// deployment: three independent keys.
	DefaultOwnerCount = 3

	// To avoid burning CPU during quorum verification, this is the
	// maximum number of owners allowed on a single contract.
	maxOwnersAllowed = 10
)

// Contract is an immutable owner set with a quorum threshold. There is no
// owner rotation; replacing the owner set means creating a new contract.
type Contract struct {
	Owners    []vested.Condition
	Threshold int32
}

var _ orm.CloneableData = (*Contract)(nil)

// Marshal implements the persistence interface.
func (c *Contract) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(c)
}

// Unmarshal implements the persistence interface.
func (c *Contract) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, c)
}

func (c *Contract) Validate() error {
	switch n := len(c.Owners); {
	case n == 0:
		return errors.Wrap(errors.ErrModel, "no owners")
	case n > maxOwnersAllowed:
		return errors.Wrap(errors.ErrModel, "too many owners")
	}
	for _, o := range c.Owners {
		if err := o.Validate(); err != nil {
			return errors.Wrapf(err, "owner %s", o)
		}
	}
	if c.Threshold < 1 || int(c.Threshold) > len(c.Owners) {
		return errors.Wrapf(ErrInvalidThreshold, "%d of %d", c.Threshold, len(c.Owners))
	}
	return nil
}

func (c *Contract) Copy() orm.CloneableData {
	owners := make([]vested.Condition, len(c.Owners))
	for i, o := range c.Owners {
		owners[i] = append(vested.Condition(nil), o...)
	}
	return &Contract{
		Owners:    owners,
		Threshold: c.Threshold,
	}
}

// IsOwner reports whether the identity belongs to the contract owner set.
func (c *Contract) IsOwner(identity vested.Condition) bool {
	for _, o := range c.Owners {
		if o.Equals(identity) {
			return true
		}
	}
	return false
}

// MultiSigCondition returns the condition a verified quorum grants to the
// transaction context.
func MultiSigCondition(id []byte) vested.Condition {
	return vested.NewCondition("multisig", "usage", id)
}

// ContractBucket is a type-safe wrapper around orm.Bucket
type ContractBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewContractBucket initializes a ContractBucket with default name
func NewContractBucket() ContractBucket {
	return ContractBucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, new(Contract))),
		idSeq:  orm.NewSequence(BucketName, SequenceName),
	}
}

// Create persists a new contract under the next sequence id and returns
// that id.
func (b ContractBucket) Create(db vested.KVStore, contract *Contract) ([]byte, error) {
	id, err := b.idSeq.NextVal(db)
	if err != nil {
		return nil, err
	}
	obj := orm.NewSimpleObj(id, contract)
	if err := b.Save(db, obj); err != nil {
		return nil, err
	}
	return id, nil
}

// GetContract returns a contract with given ID.
func (b ContractBucket) GetContract(db vested.ReadOnlyKVStore, contractID []byte) (*Contract, error) {
	obj, err := b.Get(db, contractID)
	if err != nil {
		return nil, errors.Wrap(err, "bucket lookup")
	}
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "contract id %X", contractID)
	}
	c, ok := obj.Value().(*Contract)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return c, nil
}
