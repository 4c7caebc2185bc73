package tuicore

import "github.com/pkg/errors"

// TermError is the "Terminal I/O error" taxonomy kind: a
// platform call (read/write/ioctl/sigaction/console API) failed. It
// carries the underlying platform error so callers can inspect errno-style
// detail via errors.Cause.
type TermError struct {
	Op  string
	Err error
}

func (e *TermError) Error() string { return "tuicore: terminal " + e.Op + ": " + e.Err.Error() }
func (e *TermError) Unwrap() error { return e.Err }

// wrapTermError annotates a platform call failure with its operation name,
// preserving the original error beneath via errors.Wrapf/errors.Cause.
func wrapTermError(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(&TermError{Op: op, Err: err}, "terminal %s failed", op)
}

// BackendInitError is the "Backend initialization error" taxonomy kind:
// the backend could not acquire a tty or a required capability.
type BackendInitError struct {
	Reason string
	Err    error
}

func (e *BackendInitError) Error() string { return "tuicore: backend init: " + e.Reason }
func (e *BackendInitError) Unwrap() error { return e.Err }

func wrapBackendInitError(reason string, err error) error {
	return errors.Wrap(&BackendInitError{Reason: reason, Err: err}, reason)
}

// RenderError is the "Runtime I/O exception" taxonomy kind: a wrapper
// carrying an I/O error out of an operation whose public contract is
// infallible in the happy path (e.g. Backend.Draw). Always carries a
// human-readable message with context.
type RenderError struct {
	Context string
	Err     error
}

func (e *RenderError) Error() string { return "tuicore: render: " + e.Context + ": " + e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }

func wrapRenderError(context string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(&RenderError{Context: context, Err: err}, "render failed: %s", context)
}

// invalidInput panics with an "Invalid input" taxonomy failure: a
// parameter out of range is a programming bug and fails fast,
// never wrapped or returned as an error value.
func invalidInput(msg string) {
	panic("tuicore: invalid input: " + msg)
}
