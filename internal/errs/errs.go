package errs

import (
	"errors"
	"fmt"
)

// ErrCancelled marks a user-initiated abort (closed picker, declined prompt).
// It is swallowed by the top-level command handler and never shown to the user.
var ErrCancelled = errors.New("operation cancelled")

// RemoteError is a transport or API failure from the remote content source.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("remote request failed: %s", e.Message)
	}
	return fmt.Sprintf("remote request failed (%d): %s", e.Status, e.Message)
}

// FormatError means the remote response did not have the expected shape,
// e.g. a single file where a directory listing was expected.
type FormatError struct {
	Path string
	Want string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected response shape for %q: want %s", e.Path, e.Want)
}

// ContentTypeError means the fetched entry is not a usable file (a directory,
// or a file entry without content).
type ContentTypeError struct {
	Path string
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("%q is not a downloadable file", e.Path)
}

// IsCancelled reports whether err is (or wraps) a user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
