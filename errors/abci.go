package errors

import "fmt"

const (
	// SuccessABCICode declares an ABCI response use 0 to signal that the
	// processing was successful and no error is returned.
	SuccessABCICode = 0

	internalABCILog = "internal error"
)

// ABCIInfo returns the code and log message describing given error, as
// consumed by a tendermint client. Errors that do not wrap a registered root
// are considered internal and their message is hidden unless debug is set.
// Panics are always reported as internal errors outside of debug mode.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}
	if debug {
		// Full formatting might produce a stacktrace.
		return Code(err), fmt.Sprintf("%+v", err)
	}
	err = Redact(err)
	code := Code(err)
	if code == ErrInternal.code {
		return code, internalABCILog
	}
	return code, err.Error()
}
