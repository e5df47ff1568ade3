package timelock

import (
	"github.com/vested-one/vested/errors"
)

var (
	// ErrNoPendingChange is returned when applying a parameter that has
	// no proposal waiting.
	ErrNoPendingChange = errors.Register(110, "no pending change")

	// ErrTimelockActive is returned when applying before the eligible
	// time.
	ErrTimelockActive = errors.Register(111, "timelock active")

	// ErrInvalidValue is returned when a proposed value fails the
	// parameter rule.
	ErrInvalidValue = errors.Register(112, "invalid value")
)
