// Package iavl provides a durable CommitKVStore implementation backed by a
// merkle tree. Every commit produces a new tree version with a root hash,
// which makes the stored state tamper-evident and allows a crashed process
// to reload the last fully written version.
package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/store"
)

// the cache size of the working tree, in nodes
const cacheSize = 10000

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with disk backing under the given
// directory. The database name controls the leveldb file name.
func NewCommitStore(dir, name string) *CommitStore {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		panic(errors.Wrap(err, "cannot open backing database"))
	}
	tree := iavl.NewMutableTree(db, cacheSize)
	return &CommitStore{tree: tree}
}

// MockCommitStore returns a commit store with a memory backing, only
// for tests.
func MockCommitStore() *CommitStore {
	tree := iavl.NewMutableTree(dbm.NewMemDB(), cacheSize)
	return &CommitStore{tree: tree}
}

// Get returns the value at the last committed state.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	version := s.tree.Version()
	_, value := s.tree.GetVersioned(key, version)
	return value, nil
}

// CacheWrap returns a scratch-pad over the working tree. Write moves the
// data into the working tree, only Commit persists anything to disk.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	read := treeReader{tree: s.tree}
	batch := &treeBatch{tree: s.tree}
	return store.NewBTreeCacheWrap(read, batch, nil)
}

// Commit saves the working tree as the next version on disk,
// and returns info on the new state.
func (s *CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(err, "cannot save version")
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	return errors.Wrap(err, "cannot load latest version")
}

// LatestVersion returns info on the latest version saved to disk
func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// treeReader adapts the working tree to the read-only store interface, so
// it can back a btree cache-wrap.
type treeReader struct {
	tree *iavl.MutableTree
}

var _ store.ReadOnlyKVStore = treeReader{}

func (r treeReader) Get(key []byte) ([]byte, error) {
	_, value := r.tree.Get(key)
	return value, nil
}

func (r treeReader) Has(key []byte) (bool, error) {
	return r.tree.Has(key), nil
}

func (r treeReader) Iterator(start, end []byte) (store.Iterator, error) {
	return r.iterate(start, end, true)
}

func (r treeReader) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return r.iterate(start, end, false)
}

func (r treeReader) iterate(start, end []byte, ascending bool) (store.Iterator, error) {
	var models []store.Model
	r.tree.IterateRange(start, end, ascending, func(key, value []byte) bool {
		models = append(models, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(models), nil
}

// treeBatch applies batched writes to the working tree.
type treeBatch struct {
	tree *iavl.MutableTree
	ops  []store.Op
}

var _ store.Batch = (*treeBatch)(nil)

func (b *treeBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, store.SetOp(key, value))
	return nil
}

func (b *treeBatch) Delete(key []byte) error {
	b.ops = append(b.ops, store.DelOp(key))
	return nil
}

func (b *treeBatch) Write() error {
	w := treeWriter{b.tree}
	for _, op := range b.ops {
		if err := op.Apply(w); err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}

// treeWriter exposes the tree mutation methods as a SetDeleter.
type treeWriter struct {
	tree *iavl.MutableTree
}

func (w treeWriter) Set(key, value []byte) error {
	w.tree.Set(key, value)
	return nil
}

func (w treeWriter) Delete(key []byte) error {
	w.tree.Remove(key)
	return nil
}
