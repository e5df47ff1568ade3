package utils

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vested-one/vested/errors"
	"github.com/vested-one/vested/store"
)

func TestRecovery(t *testing.T) {
	var help TestHelpers
	h := help.PanicHandler(fmt.Errorf("boom"))
	r := NewRecovery()

	ctx := context.Background()
	s := store.MemStore()

	// the bare handler panics, the test tool works
	assert.Panics(t, func() { h.Check(ctx, s, nil) })
	assert.Panics(t, func() { h.Deliver(ctx, s, nil) })

	// the wrapped handler returns a normal error
	_, err := r.Check(ctx, s, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = r.Deliver(ctx, s, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))
}
