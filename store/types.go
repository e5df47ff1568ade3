//nolint
package store

import "github.com/vested-one/vested"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = vested.ReadOnlyKVStore
type KVStore = vested.KVStore
type SetDeleter = vested.SetDeleter
type Batch = vested.Batch
type Iterator = vested.Iterator
type CacheableKVStore = vested.CacheableKVStore
type KVCacheWrap = vested.KVCacheWrap
type CommitKVStore = vested.CommitKVStore
type CommitID = vested.CommitID

// Model groups a key with its stored value.
type Model struct {
	Key   []byte
	Value []byte
}
