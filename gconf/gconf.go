package gconf

import (
	"encoding/json"

	"github.com/vested-one/vested/errors"
)

// ReadStore is the subset of a read only key value store used here.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is the subset of a key value store used here.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// ValidMarshaler is implemented by objects that can serialize themselves
// to a binary representation and vouch for their own consistency.
type ValidMarshaler interface {
	Marshal() ([]byte, error)
	Validate() error
}

// Unmarshaler is implemented by objects that can load their state from a
// given binary representation.
type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Configuration is a singleton that can round trip through the store.
type Configuration interface {
	ValidMarshaler
	Unmarshaler
}

// Save validates the object and writes it to the configuration singleton
// of that package name.
func Save(db Store, pkg string, src ValidMarshaler) error {
	key := []byte("_c:" + pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	return db.Set(key, raw)
}

// Load reads the configuration singleton of that package name.
func Load(db ReadStore, pkg string, dst Unmarshaler) error {
	key := []byte("_c:" + pkg)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", key)
	}
	return nil
}

// InitConfig takes opts["conf"][pkg], parses it into the given
// Configuration object, validates it and stores it under the proper key
// in the database.
func InitConfig(db Store, opts map[string]json.RawMessage, pkg string, conf Configuration) error {
	var confOptions map[string]json.RawMessage
	if raw := opts["conf"]; len(raw) != 0 {
		if err := json.Unmarshal(raw, &confOptions); err != nil {
			return errors.Wrap(err, "read conf")
		}
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := json.Unmarshal(confOptions[pkg], conf); err != nil {
		return errors.Wrapf(err, "parse %q configuration", pkg)
	}
	return Save(db, pkg, conf)
}
