package multisig

import (
	"github.com/vested-one/vested/errors"
)

var (
	// ErrAlreadyExecuted is returned when an operation hash was consumed
	// by a previous execution. A fresh quorum does not help.
	ErrAlreadyExecuted = errors.Register(105, "operation already executed")

	// ErrInvalidThreshold is returned when the threshold does not fit the
	// owner set.
	ErrInvalidThreshold = errors.Register(106, "invalid threshold")
)
