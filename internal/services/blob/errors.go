package blob

import (
	"errors"
	"fmt"
)

// TransportError reports a request that failed outright or came back with a
// non-success status. It aborts the operation that issued the request.
type TransportError struct {
	// URL is the request target without the SAS token query string.
	URL string

	// StatusCode is the HTTP status, 0 when the request never completed.
	StatusCode int

	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a listing response that was not the expected XML
// document. Listing is all-or-nothing, so this aborts the whole traversal.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("decode listing: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// FormatError reports a Last-Modified value that is not a valid HTTP date.
// It is local to one record: the record drops out of date-scoped filtering
// and the run continues.
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %v", e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ValidationError reports bad operator input: a malformed date argument, an
// inverted date range, or an unusable SAS URL. It surfaces before any network
// call and the CLI reports it as a usage error.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err has a ValidationError in its chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
