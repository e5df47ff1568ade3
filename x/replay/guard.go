package replay

import (
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
)

// ErrConsumed is returned when an identifier was already marked consumed.
var ErrConsumed = errors.Register(130, "already consumed")

// consumed is the only value ever stored under a guard key. Presence of
// the key is the record; the value carries no information.
var consumed = []byte{1}

// Guard tracks consumed identifiers inside one namespace. Namespaces keep
// redemption proofs and operation hashes from shadowing each other: the
// same 32 bytes may be consumed once in each.
type Guard struct {
	prefix []byte
}

// NewGuard returns a guard bound to the given namespace.
func NewGuard(namespace string) Guard {
	return Guard{prefix: append([]byte("_rp."+namespace), ':')}
}

func (g Guard) key(id []byte) []byte {
	key := make([]byte, 0, len(g.prefix)+len(id))
	key = append(key, g.prefix...)
	return append(key, id...)
}

// TryConsume marks the identifier consumed and reports whether this call
// was the first to do so. A false return means the identifier was already
// consumed and no state was changed.
func (g Guard) TryConsume(db vested.KVStore, id []byte) (bool, error) {
	key := g.key(id)
	has, err := db.Has(key)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}
	if err := db.Set(key, consumed); err != nil {
		return false, err
	}
	return true, nil
}

// IsConsumed is a pure lookup without any state change.
func (g Guard) IsConsumed(db vested.ReadOnlyKVStore, id []byte) (bool, error) {
	return db.Has(g.key(id))
}

// Consume marks the identifier consumed or fails with ErrConsumed if it
// already was. Convenience wrapper for callers that treat a repeat as an
// error rather than a branch.
func (g Guard) Consume(db vested.KVStore, id []byte) error {
	ok, err := g.TryConsume(db, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrConsumed, "%X", id)
	}
	return nil
}
