package vesting

import (
	"github.com/vested-one/vested/errors"
)

var (
	// ErrInvalidSchedule is returned when a tranche schedule is not
	// internally consistent.
	ErrInvalidSchedule = errors.Register(120, "invalid schedule")

	// ErrCapacityExceeded is returned when a recipient already holds the
	// maximum number of tranches.
	ErrCapacityExceeded = errors.Register(121, "capacity exceeded")

	// ErrPoolExhausted is returned when a new tranche asks for more than
	// the pool still holds.
	ErrPoolExhausted = errors.Register(122, "vesting pool exhausted")

	// ErrNothingToClaim is returned when a claim would release zero.
	ErrNothingToClaim = errors.Register(123, "nothing to claim")

	// ErrCooldown is returned when a full claim comes before the
	// cooldown elapsed.
	ErrCooldown = errors.Register(124, "claim cooldown active")

	// ErrPaused is returned when the requested feature is switched off.
	ErrPaused = errors.Register(125, "feature paused")

	// ErrBlacklisted is returned when the recipient is excluded.
	ErrBlacklisted = errors.Register(126, "address blacklisted")

	// ErrInsufficientExpired is returned when recovering more than the
	// expired accounting holds.
	ErrInsufficientExpired = errors.Register(127, "insufficient expired balance")
)
