package readclip

import (
	"errors"
	"fmt"
)

// Application error codes. These map 1:1 onto the failure taxonomy the
// host UI cares about: callers branch on the code, never on the message.
const (
	EINVALID   = "invalid"     // validation failed
	ENOTFOUND  = "not_found"   // entity does not exist
	ENETWORK   = "network"     // fetch-layer failure, including non-2xx status
	EPARSING   = "parsing"     // response bytes are not decodable as text
	ENOCONTENT = "no_content"  // extraction produced an empty body
	ESTORAGE   = "storage"     // shared queue store could not be opened or written
	EINTERNAL  = "internal"    // unexpected internal error
)

// Error represents an application error with a machine-readable code
// and a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("readclip error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the
// empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
