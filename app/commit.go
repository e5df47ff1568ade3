package app

import (
	"github.com/vested-one/vested"
	"github.com/vested-one/vested/errors"
)

// CommitStore handles loading from a CommitKVStore, maintaining different
// CacheWraps for Deliver and Check, and returning useful state info.
type CommitStore struct {
	committed vested.CommitKVStore
	deliver   vested.KVCacheWrap
	check     vested.KVCacheWrap
}

// NewCommitStore loads the CommitKVStore from disk or panics. It sets up the
// deliver and check caches.
func NewCommitStore(store vested.CommitKVStore) *CommitStore {
	if err := store.LoadLatestVersion(); err != nil {
		panic(err)
	}
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
		check:     store.CacheWrap(),
	}
}

// CommitInfo returns the current height and hash
func (cs *CommitStore) CommitInfo() (vested.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit flushes the deliver cache to the underlying store and commits
// it to disk. It then regenerates new deliver/check caches.
func (cs *CommitStore) Commit() (vested.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return vested.CommitID{}, err
	}
	cs.check.Discard()

	res, err := cs.committed.Commit()
	if err != nil {
		return res, err
	}

	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
	return res, nil
}

// CheckStore returns a store implementation that must be used during the
// checking phase.
func (cs *CommitStore) CheckStore() vested.CacheableKVStore {
	return cs.check
}

// DeliverStore returns a store implementation that must be used during the
// delivery phase.
func (cs *CommitStore) DeliverStore() vested.CacheableKVStore {
	return cs.deliver
}

// QueryStore returns a fresh scratch-pad over the last committed state,
// untouched by in-flight transactions.
func (cs *CommitStore) QueryStore() vested.ReadOnlyKVStore {
	return cs.committed.CacheWrap()
}

// _vd: is a prefix for internal data
const chainIDKey = "_vd:chainID"

// mustLoadChainID returns the chain id stored if any,
// panics on db error
func mustLoadChainID(kv vested.KVStore) string {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		panic(err)
	}
	return string(v)
}

// saveChainID stores a chain id in the kv store.
// Returns error if already set, or invalid name
func saveChainID(kv vested.KVStore, chainID string) error {
	if !vested.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chainID")
	}
	if exists {
		return errors.Wrap(errors.ErrImmutable, "chain id already stored")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chainID")
	}
	return nil
}
