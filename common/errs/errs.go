package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound        = ErrorKind("Not Found")
	InvalidArgument = ErrorKind("Invalid Argument")
	Unsupported     = ErrorKind("Unsupported")

	// Timeout is returned when a polled operation did not succeed within its
	// wall-clock wait budget. Distinct from an upstream rejection so callers
	// can tell "backend rejected it" apart from "backend never answered in time".
	Timeout = ErrorKind("Timeout")

	// NotWaiting is returned when a polled operation failed and the caller
	// opted out of waiting for it to complete.
	NotWaiting = ErrorKind("Not Waiting")

	// PersistenceFailed is returned when the metadata record of an already
	// minted asset could not be saved.
	PersistenceFailed = ErrorKind("Persistence Failed")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
