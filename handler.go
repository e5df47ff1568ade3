package vested

import (
	"encoding/json"

	"github.com/vested-one/vested/errors"
)

// Handler is a core engine that can process a few specific messages.
// This could represent "create a vesting grant" or "apply a pending
// parameter change".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like authentication, or savepoint semantics, to many Handlers
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	// Handle assigns given handler to handle processing of every message
	// of provided type.
	// Using a message with an invalid path or handling back a handler
	// for a message type that is already registered is a programmer
	// error and panics.
	Handle(msg Msg, h Handler)
}

// Options are the app options
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Stream expects an array of json elements and allows to process them
// sequentially, avoiding the need to load all of them at once into
// memory.
func (o Options) Stream(key string) func(obj interface{}) error {
	var msgs []json.RawMessage
	err := o.ReadOptions(key, &msgs)
	idx := 0

	return func(obj interface{}) error {
		if err != nil {
			return err
		}
		if idx >= len(msgs) {
			return errors.ErrIteratorDone
		}
		defer func() { idx++ }()
		return json.Unmarshal(msgs[idx], obj)
	}
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(opts Options, params GenesisParams, kv KVStore) error
}

// GenesisParams represents parameters set in genesis that could be useful
// for some of the extensions.
type GenesisParams struct {
	ChainID string
	Time    UnixTime
}
