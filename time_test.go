package vested

import (
	"testing"
	"time"
)

func TestUnixTimeAdd(t *testing.T) {
	now := UnixTime(1000)

	if got := now.Add(10 * time.Second); got != 1010 {
		t.Fatalf("want 1010, got %d", got)
	}
	if got := now.Add(time.Hour); got != 4600 {
		t.Fatalf("want 4600, got %d", got)
	}
	// sub-second precision is dropped
	if got := now.Add(900 * time.Millisecond); got != 1000 {
		t.Fatalf("want 1000, got %d", got)
	}
	// durations declared in seconds convert through Duration
	cliff := UnixDuration(100)
	if got := now.Add(cliff.Duration()); got != 1100 {
		t.Fatalf("want 1100, got %d", got)
	}
}
