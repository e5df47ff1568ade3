package timelock

import (
	"github.com/tendermint/go-amino"
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
)

const (
	pathProposeChangeMsg = "timelock/propose"
	pathApplyChangeMsg   = "timelock/apply"

	// parameter names are bucket keys, keep them short and printable
	maxKeyLength = 32
)

// ProposeChangeMsg schedules a new value for a governed parameter.
type ProposeChangeMsg struct {
	Key   string
	Value uint64
	Delay vested.UnixDuration
}

var _ vested.Msg = (*ProposeChangeMsg)(nil)

func (ProposeChangeMsg) Path() string {
	return pathProposeChangeMsg
}

// Marshal implements the persistence interface.
func (m *ProposeChangeMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *ProposeChangeMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, m)
}

func (m *ProposeChangeMsg) Validate() error {
	if err := validateKey(m.Key); err != nil {
		return err
	}
	if m.Delay <= 0 {
		return errors.Wrap(errors.ErrMsg, "non-positive delay")
	}
	return nil
}

// ApplyChangeMsg applies the pending value of a governed parameter.
type ApplyChangeMsg struct {
	Key string
}

var _ vested.Msg = (*ApplyChangeMsg)(nil)

func (ApplyChangeMsg) Path() string {
	return pathApplyChangeMsg
}

// Marshal implements the persistence interface.
func (m *ApplyChangeMsg) Marshal() ([]byte, error) {
	return amino.MarshalBinaryBare(m)
}

// Unmarshal implements the persistence interface.
func (m *ApplyChangeMsg) Unmarshal(raw []byte) error {
	return amino.UnmarshalBinaryBare(raw, m)
}

func (m *ApplyChangeMsg) Validate() error {
	return validateKey(m.Key)
}

func validateKey(key string) error {
	if key == "" {
		return errors.Wrap(errors.ErrMsg, "no key")
	}
	if len(key) > maxKeyLength {
		return errors.Wrap(errors.ErrMsg, "key too long")
	}
	return nil
}
