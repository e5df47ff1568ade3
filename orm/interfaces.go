package orm

import (
	"github.com/vested-one/vested"
)

// Object is what is stored in the bucket
// Key is joined with the prefix to set the full key
// Value is the data stored
//
// this is a light wrapper around a serializable model
type Object interface {
	Keyed
	Cloneable
	// Validate returns error if the object is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	Validate() error
	Value() vested.Persistent
}

// Keyed is anything that can identify itself
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable will create a new object that can be loaded into
type Cloneable interface {
	Clone() Object
}

// CloneableData is an intelligent Value that can be embedded
// in a simple object to handle much of the details.
type CloneableData interface {
	vested.Persistent
	Validate() error
	Copy() CloneableData
}

// Model is implemented by any entity that can be stored.
// This is the same interface as CloneableData. Using the right type names
// provides an easier to read API.
type Model = CloneableData

// Reader defines an interface that allows reading objects from the db
type Reader interface {
	Get(db vested.ReadOnlyKVStore, key []byte) (Object, error)
}
