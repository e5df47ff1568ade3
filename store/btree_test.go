package store

import (
	"bytes"
	"testing"

	"github.com/vested-one/vested/errors"
)

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")
	if err := base.Set(k, v); err != nil {
		t.Fatalf("cannot set: %s", err)
	}

	got, err := base.Get(k)
	if err != nil {
		t.Fatalf("cannot get: %s", err)
	}
	if !bytes.Equal(got, v) {
		t.Fatalf("want %q, got %q", v, got)
	}

	has, err := base.Has(k)
	if err != nil || !has {
		t.Fatalf("want true, got %v (%v)", has, err)
	}
}

func TestBTreeCacheWrapWriteDiscard(t *testing.T) {
	k, v := []byte("top"), []byte("hat")
	k2, v2 := []byte("mad"), []byte("dog")

	cases := map[string]struct {
		commit  bool
		wantTop bool
	}{
		"written cache commits to the parent": {
			commit:  true,
			wantTop: true,
		},
		"discarded cache leaves the parent untouched": {
			commit:  false,
			wantTop: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base := MemStore()
			if err := base.Set(k2, v2); err != nil {
				t.Fatalf("cannot set: %s", err)
			}

			cache := base.CacheWrap()
			if err := cache.Set(k, v); err != nil {
				t.Fatalf("cannot set in cache: %s", err)
			}
			// cache sees both pairs
			if got, _ := cache.Get(k); !bytes.Equal(got, v) {
				t.Fatalf("cache did not store the value")
			}
			if got, _ := cache.Get(k2); !bytes.Equal(got, v2) {
				t.Fatalf("cache does not read through to the parent")
			}
			// parent must not see the write yet
			if got, _ := base.Get(k); got != nil {
				t.Fatalf("uncommitted write visible in the parent")
			}

			if tc.commit {
				if err := cache.Write(); err != nil {
					t.Fatalf("cannot write cache: %s", err)
				}
			} else {
				cache.Discard()
			}

			got, err := base.Get(k)
			if err != nil {
				t.Fatalf("cannot get: %s", err)
			}
			if tc.wantTop && !bytes.Equal(got, v) {
				t.Fatalf("want %q, got %q", v, got)
			}
			if !tc.wantTop && got != nil {
				t.Fatalf("want nil, got %q", got)
			}
		})
	}
}

func TestBTreeCacheWrapDelete(t *testing.T) {
	base := MemStore()
	k, v := []byte("sepia"), []byte("tone")
	if err := base.Set(k, v); err != nil {
		t.Fatal(err)
	}

	cache := base.CacheWrap()
	if err := cache.Delete(k); err != nil {
		t.Fatal(err)
	}
	if got, _ := cache.Get(k); got != nil {
		t.Fatalf("deleted key visible in cache: %q", got)
	}
	// still in the parent until written
	if got, _ := base.Get(k); !bytes.Equal(got, v) {
		t.Fatal("delete leaked into the parent")
	}

	if err := cache.Write(); err != nil {
		t.Fatal(err)
	}
	if got, _ := base.Get(k); got != nil {
		t.Fatalf("key not deleted from the parent: %q", got)
	}
}

func TestBTreeCacheWrapIterator(t *testing.T) {
	base := MemStore()
	for _, m := range []Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("c"), Value: []byte("3")},
		{Key: []byte("e"), Value: []byte("5")},
	} {
		if err := base.Set(m.Key, m.Value); err != nil {
			t.Fatal(err)
		}
	}

	cache := base.CacheWrap()
	// overwrite, insert and delete in the overlay
	if err := cache.Set([]byte("c"), []byte("33")); err != nil {
		t.Fatal(err)
	}
	if err := cache.Set([]byte("b"), []byte("2")); err != nil {
		t.Fatal(err)
	}
	if err := cache.Delete([]byte("e")); err != nil {
		t.Fatal(err)
	}

	it, err := cache.Iterator(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer it.Release()

	want := []Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
		{Key: []byte("c"), Value: []byte("33")},
	}
	for i, w := range want {
		k, v, err := it.Next()
		if err != nil {
			t.Fatalf("iteration %d failed: %s", i, err)
		}
		if !bytes.Equal(k, w.Key) || !bytes.Equal(v, w.Value) {
			t.Fatalf("iteration %d: want %q=%q, got %q=%q", i, w.Key, w.Value, k, v)
		}
	}
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("want iterator done, got %v", err)
	}
}

func TestBTreeCacheWrapReverseIterator(t *testing.T) {
	base := MemStore()
	if err := base.Set([]byte("a"), []byte("1")); err != nil {
		t.Fatal(err)
	}
	cache := base.CacheWrap()
	if err := cache.Set([]byte("b"), []byte("2")); err != nil {
		t.Fatal(err)
	}

	it, err := cache.ReverseIterator(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer it.Release()

	k, _, err := it.Next()
	if err != nil || !bytes.Equal(k, []byte("b")) {
		t.Fatalf("want b first, got %q (%v)", k, err)
	}
	k, _, err = it.Next()
	if err != nil || !bytes.Equal(k, []byte("a")) {
		t.Fatalf("want a second, got %q (%v)", k, err)
	}
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("want iterator done, got %v", err)
	}
}
