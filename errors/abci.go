package errors

import "fmt"

// SuccessABCICode declares an ABCI response use 0 to signal that the
// processing was successful and no error is returned.
const SuccessABCICode = 0

// All unclassified errors that do not provide an ABCI code are clubbed
// under an internal error code and a generic message instead of
// detailed error string.
const (
	internalABCICode uint32 = 1
	internalABCILog  string = "internal error"
)

// ABCIInfo returns the ABCI error information as consumed by the tendermint
// client. Returned code and log message should be used as a ABCI response.
// Any error that does not provide ABCICode information is categorized as error
// with code 1, that will not be exposed to the client (log is set to generic
// message instead).
// When not in debug mode, any error that cannot provide an ABCI code is
// silenced with description "internal error". In debug mode all errors are
// returned with the original description.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}

	// the code carried is the one of the root error
	code := abciCode(err)

	if code == internalABCICode && !debug {
		return internalABCICode, internalABCILog
	}
	return code, fmt.Sprintf("%+v", err)
}

// abciCode tests if given error contains an ABCI code and returns the value of
// it if available. This function is testing for the causer interface as well
// and unwraps the error.
func abciCode(err error) uint32 {
	if errIsNil(err) {
		return SuccessABCICode
	}

	type coder interface {
		ABCICode() uint32
	}

	for {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalABCICode
		}
	}
}

func errIsNil(err error) bool {
	return err == nil
}
