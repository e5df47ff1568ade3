package iavl

import (
	"bytes"
	"testing"
)

func TestCommitStoreRoundTrip(t *testing.T) {
	db := MockCommitStore()
	if err := db.LoadLatestVersion(); err != nil {
		t.Fatalf("cannot load: %s", err)
	}

	cache := db.CacheWrap()
	if err := cache.Set([]byte("claim"), []byte("400")); err != nil {
		t.Fatal(err)
	}
	if err := cache.Write(); err != nil {
		t.Fatal(err)
	}

	// not yet committed, the committed state must be empty
	if got, _ := db.Get([]byte("claim")); got != nil {
		t.Fatalf("uncommitted value visible: %q", got)
	}

	id, err := db.Commit()
	if err != nil {
		t.Fatal(err)
	}
	if id.Version != 1 {
		t.Fatalf("want version 1, got %d", id.Version)
	}
	if len(id.Hash) == 0 {
		t.Fatal("commit must produce a root hash")
	}

	got, err := db.Get([]byte("claim"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("400")) {
		t.Fatalf("want 400, got %q", got)
	}
}

func TestCommitStoreDiscard(t *testing.T) {
	db := MockCommitStore()
	if err := db.LoadLatestVersion(); err != nil {
		t.Fatal(err)
	}

	cache := db.CacheWrap()
	if err := cache.Set([]byte("gone"), []byte("1")); err != nil {
		t.Fatal(err)
	}
	cache.Discard()

	if _, err := db.Commit(); err != nil {
		t.Fatal(err)
	}
	if got, _ := db.Get([]byte("gone")); got != nil {
		t.Fatalf("discarded value committed: %q", got)
	}
}
