package extsvc

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for extsvc. Use errors.Is to check.
var (
	ErrMalformedInput       = errors.New("malformed json input")
	ErrUnknownService       = errors.New("external service configuration not found")
	ErrUnsupportedParameter = errors.New("unsupported parameter")
)

// ClientError is returned for every rejected payload. The caller submitted bad input;
// retrying the same payload yields the same error.
// Err wraps a sentinel or a typed cause (UnknownServiceError, UnsupportedParameterError).
type ClientError struct {
	Reason string
	Err    error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("invalid service configuration: %s", e.Reason)
}

// Unwrap supports errors.Is/errors.As on wrapped chains (e.g. errors.Is(err, ErrMalformedInput)).
func (e *ClientError) Unwrap() error { return e.Err }

// SystemError represents a failure that is not the caller's fault (e.g. a panicking Decoder).
type SystemError struct {
	Err error
}

func (e *SystemError) Error() string {
	return "internal system error during configuration validation"
}

func (e *SystemError) Unwrap() error { return e.Err }

// UnknownServiceError carries the service name that did not resolve to a Service.
type UnknownServiceError struct {
	Name string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownService, e.Name)
}

func (e *UnknownServiceError) Unwrap() error { return ErrUnknownService }

// UnsupportedParameterError lists every top-level key outside the service whitelist, sorted.
type UnsupportedParameterError struct {
	Service    Service
	Parameters []string
}

func (e *UnsupportedParameterError) Error() string {
	return fmt.Sprintf("%s(s) for %s: %s", ErrUnsupportedParameter, e.Service, strings.Join(e.Parameters, ", "))
}

func (e *UnsupportedParameterError) Unwrap() error { return ErrUnsupportedParameter }

// ErrorKind classifies a validation failure.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindMalformedInput
	KindUnknownService
	KindUnsupportedParameter
	KindSystem
)

var kindNames = [...]string{
	KindNone:                 "none",
	KindMalformedInput:       "malformed_input",
	KindUnknownService:       "unknown_service_configuration",
	KindUnsupportedParameter: "unsupported_parameter",
	KindSystem:               "system",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// KindOf reports the kind of err. Errors from outside this package report KindNone.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMalformedInput):
		return KindMalformedInput
	case errors.Is(err, ErrUnknownService):
		return KindUnknownService
	case errors.Is(err, ErrUnsupportedParameter):
		return KindUnsupportedParameter
	case IsSystemError(err):
		return KindSystem
	}
	return KindNone
}

// IsClientError returns true if err is or wraps a ClientError.
func IsClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

// IsSystemError returns true if err is or wraps a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// UnsupportedParameters returns the offending keys carried by err, or nil.
func UnsupportedParameters(err error) []string {
	var ue *UnsupportedParameterError
	if errors.As(err, &ue) {
		return append([]string(nil), ue.Parameters...)
	}
	return nil
}

// malformedInput returns a ClientError for blank text and JSON decode failures.
func malformedInput(reason string, cause error) error {
	if cause != nil {
		return &ClientError{Reason: reason + ": " + cause.Error(), Err: ErrMalformedInput}
	}
	return &ClientError{Reason: reason, Err: ErrMalformedInput}
}

func unknownService(name string) error {
	cause := &UnknownServiceError{Name: name}
	return &ClientError{Reason: cause.Error(), Err: cause}
}

func unsupportedParameters(svc Service, params []string) error {
	cause := &UnsupportedParameterError{Service: svc, Parameters: params}
	return &ClientError{Reason: cause.Error(), Err: cause}
}
