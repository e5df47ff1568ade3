package timelock

import (
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/orm"
)

// Governor owns the pending change table and enforces the delay state
// machine. Authorization of the caller is the handler's concern; the
// governor assumes it already happened.
type Governor struct {
	bucket orm.Bucket
}

// NewGovernor returns a governor over the default bucket.
func NewGovernor() Governor {
	return Governor{bucket: NewBucket()}
}

// Propose stores a pending value for the parameter, eligible after the
// delay. Any previous proposal for the same parameter is overwritten;
// there is no queue.
func (g Governor) Propose(db vested.KVStore, key string, value uint64,
	delay vested.UnixDuration, now vested.UnixTime) (vested.UnixTime, error) {

	if delay <= 0 {
		return 0, errors.Wrap(errors.ErrInput, "non-positive delay")
	}
	eligible := now.Add(delay.Duration())
	change := &PendingChange{Value: value, Eligible: eligible}
	if err := g.bucket.Save(db, orm.NewSimpleObj([]byte(key), change)); err != nil {
		return 0, err
	}
	return eligible, nil
}

// Pending returns the change waiting for the parameter, or nil.
func (g Governor) Pending(db vested.ReadOnlyKVStore, key string) (*PendingChange, error) {
	obj, err := g.bucket.Get(db, []byte(key))
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.Value().(*PendingChange), nil
}

// Apply consumes the pending change for the parameter and returns its
// value. It fails with ErrNoPendingChange if nothing is pending, with
// ErrTimelockActive before the eligible time, and with ErrInvalidValue if
// the value fails the given rule. The pending entry survives a failed
// validation so the mistake is visible until overwritten.
func (g Governor) Apply(db vested.KVStore, key string, now vested.UnixTime,
	validate func(uint64) error) (uint64, error) {

	change, err := g.Pending(db, key)
	if err != nil {
		return 0, err
	}
	if change == nil {
		return 0, errors.Wrapf(ErrNoPendingChange, "%s", key)
	}
	if now < change.Eligible {
		return 0, errors.Wrapf(ErrTimelockActive, "eligible at %d", change.Eligible)
	}
	if validate != nil {
		if err := validate(change.Value); err != nil {
			return 0, errors.Wrapf(ErrInvalidValue, "%s: %v", key, err)
		}
	}
	if err := g.bucket.Delete(db, []byte(key)); err != nil {
		return 0, err
	}
	return change.Value, nil
}
