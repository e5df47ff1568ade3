package multisig

import (
	"github.com/tendermint/go-amino"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
)

const (
	pathCreateContractMsg = "multisig/create"

	creationCost int64 = 300
)

// CreateContractMsg registers a new immutable owner set.
type CreateContractMsg struct {
	Owners    []vested.Condition
	Threshold int32
}

var _ vested.Msg = (*CreateContractMsg)(nil)

// Path fulfills vested.Msg interface to allow routing
func (CreateContractMsg) Path() string {
	return pathCreateContractMsg
}

// Marshal implements the persistence interface.
func (c *CreateContractMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(c)
}

// Unmarshal implements the persistence interface.
func (c *CreateContractMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, c)
}

// Validate enforces owner and threshold boundaries
func (c *CreateContractMsg) Validate() error {
	switch n := len(c.Owners); {
	case n == 0:
		return errors.Wrap(errors.ErrMsg, "no owners")
	case n > maxOwnersAllowed:
		return errors.Wrap(errors.ErrMsg, "too many owners")
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
