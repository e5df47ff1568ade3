package timelock

import (
	"github.com/tendermint/go-amino"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/orm"
)

// BucketName is where we store pending changes, keyed by parameter name.
const BucketName = "pending"

// PendingChange is a parameter value waiting out its delay. The parameter
// name is the bucket key.
type PendingChange struct {
	Value    uint64
	Eligible vested.UnixTime
}

var _ orm.CloneableData = (*PendingChange)(nil)

// Marshal implements the persistence interface.
func (p *PendingChange) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(p)
}

// Unmarshal implements the persistence interface.
func (p *PendingChange) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, p)
}

func (p *PendingChange) Validate() error {
	if err := p.Eligible.Validate(); err != nil {
		return errors.Wrap(err, "eligible")
	}
	if p.Eligible == 0 {
		return errors.Wrap(errors.ErrModel, "no eligible time")
	}
	return nil
}

func (p *PendingChange) Copy() orm.CloneableData {
	return &PendingChange{
		Value:    p.Value,
		Eligible: p.Eligible,
	}
}

// NewBucket returns the bucket holding pending changes.
func NewBucket() orm.Bucket {
	return orm.NewBucket(BucketName, orm.NewSimpleObj(nil, new(PendingChange)))
}
