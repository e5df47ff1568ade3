package sigs

import (
	"github.com/vested-one/vested/errors"
)

var (
	// ErrInvalidSequence is returned when the sequence number does not
	// match the expected value or is out of the supported range.
	ErrInvalidSequence = errors.Register(100, "invalid sequence")

	// ErrDuplicateSigner is returned when the same identity is recovered
	// from more than one signature in a quorum set.
	ErrDuplicateSigner = errors.Register(101, "duplicate signer")

	// ErrUnauthorizedSigner is returned when a recovered identity is not
	// part of the authorized owner set.
	ErrUnauthorizedSigner = errors.Register(102, "unauthorized signer")

	// ErrQuorumNotMet is returned when fewer distinct authorized
	// identities signed than the threshold requires.
	ErrQuorumNotMet = errors.Register(103, "quorum not met")
)
