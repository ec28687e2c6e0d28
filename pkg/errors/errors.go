// Package errors provides structured error types for geosvg.
//
// Errors carry a machine-readable [Code] alongside a human-readable
// message so that the CLI and the HTTP server can report them consistently:
// the CLI prints [UserMessage], the server maps the code to a status with
// [HTTPStatus].
//
// # Error Codes
//
//   - INVALID_*: input validation failures (geometry text, style, paths)
//   - FILE_NOT_FOUND: a named input file does not exist
//   - INTERNAL_ERROR: unexpected failures (cache backends, encoding)
//   - UNSUPPORTED: a recognised but unsupported construct, e.g. a WKT
//     CIRCULARSTRING
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGeometry, "polygon ring has %d vertices", n)
//	if errors.Is(err, errors.ErrCodeInvalidGeometry) {
//	    // reject the request
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, jsonErr, "decode geojson")
//
// Rendering itself never fails; only decoding, configuration and the
// outer surfaces return these errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle    Code = "INVALID_STYLE"
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the first *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, or "" if there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix. For errors
// that are not an *Error it returns err.Error().
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error to the status the server responds with.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidStyle,
		ErrCodeInvalidGeometry, ErrCodeInvalidPath:
		return http.StatusBadRequest
	case ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
