package app

import (
	"github.com/vested-one/vested"
)

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...vested.Initializer) vested.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []vested.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts vested.Options, params vested.GenesisParams, kv vested.KVStore) error {
	for _, i := range c.inits {
		if i == nil {
			continue
		}
		if err := i.FromGenesis(opts, params, kv); err != nil {
			return err
		}
	}
	return nil
}
