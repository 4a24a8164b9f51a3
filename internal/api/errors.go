package api

import (
	"errors"
	"fmt"
)

// Kind classifies what went wrong so callers (and the exit-code mapping)
// do not have to parse error strings.
type Kind int

const (
	// KindGeneric covers anything not classified below.
	KindGeneric Kind = iota
	// KindConfig is a bad invocation or missing configuration, detected
	// before any network call.
	KindConfig
	// KindAuth is a non-200 from the token endpoint.
	KindAuth
	// KindLookup is a failure to resolve a required identifier, such as
	// the team itself.
	KindLookup
	// KindOperation is a non-success status from any other API call.
	KindOperation
	// KindUnsupported marks operations that are intentionally not
	// implemented.
	KindUnsupported
)

// Error carries the error kind plus, for HTTP failures, the status code
// and the raw response body for diagnostics.
type Error struct {
	Kind   Kind
	Status int
	Body   string
	Msg    string
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s\n%s", msg, e.Body)
	}
	return msg
}

// KindOf extracts the kind from err, or KindGeneric when err is not ours.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindGeneric
}

// ConfigError reports a bad invocation or missing configuration.
func ConfigError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConfig, Msg: fmt.Sprintf(format, args...)}
}

func unsupportedError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnsupported, Msg: fmt.Sprintf(format, args...)}
}

func httpError(kind Kind, status int, body, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Status: status, Body: body, Msg: fmt.Sprintf(format, args...)}
}
