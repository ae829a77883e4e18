package core

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of a failed REST call.
type ErrorKind int

// Error kind constants classify the three ways a call can fail.
const (
	// ErrorKindTransport indicates the connection could not be established or was lost.
	ErrorKindTransport ErrorKind = iota
	// ErrorKindAPI indicates a non-2xx response carrying a {code, msg} body.
	ErrorKindAPI
	// ErrorKindHTTP indicates a non-2xx response without a structured error body.
	ErrorKindHTTP
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTransport:
		return "TRANSPORT"
	case ErrorKindAPI:
		return "API"
	case ErrorKindHTTP:
		return "HTTP"
	default:
		return "UNKNOWN"
	}
}

// Sentinel errors for conditions outside the three classified kinds.
var (
	// ErrUnknownOperation is returned when an operation is not in the endpoint registry.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrNoCredentials is returned when a signed call is made without API credentials.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
)

// transportMessage is the fixed text of every transport failure.
const transportMessage = "Connection error"

// BusError is the single error type returned by the REST client.
// Message is the primary diagnostic; Trace records where it was raised.
type BusError struct {
	// Kind classifies the failure.
	Kind ErrorKind `json:"kind"`
	// Message is the full human-readable error text.
	Message string `json:"message"`
	// StatusCode is the HTTP status, zero for transport failures.
	StatusCode int `json:"status_code,omitempty"`
	// Code is the exchange error code as sent, empty unless Kind is ErrorKindAPI.
	Code string `json:"code,omitempty"`
	// Trace is the call stack at construction, outermost frame first.
	Trace []TraceNode `json:"trace,omitempty"`
	// Err is the underlying transport error, if any.
	Err error `json:"-"`
}

// Error implements the error interface and returns Message unchanged.
func (e *BusError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *BusError) Unwrap() error {
	return e.Err
}

// FormatTrace renders the captured stack for logging.
func (e *BusError) FormatTrace() string {
	return FormatTrace(e.Trace)
}

// NewBusError creates a BusError and captures the stack of its caller.
func NewBusError(kind ErrorKind, message string) *BusError {
	return &BusError{
		Kind:    kind,
		Message: message,
		Trace:   captureTrace(1),
	}
}

// NewBusErrorWithTrace creates a BusError with a caller-supplied trace.
// An empty trace falls back to capturing the current stack.
func NewBusErrorWithTrace(kind ErrorKind, message string, trace []TraceNode) *BusError {
	if len(trace) == 0 {
		trace = captureTrace(1)
	}
	return &BusError{
		Kind:    kind,
		Message: message,
		Trace:   trace,
	}
}

// NewTransportError reports a connection failure caused by err.
func NewTransportError(err error) *BusError {
	return &BusError{
		Kind:    ErrorKindTransport,
		Message: fmt.Sprintf("ERROR: <HTTP_T>: MSG %s", transportMessage),
		Trace:   captureTrace(1),
		Err:     err,
	}
}

// NewAPIError reports an error body {code, msg} returned with a non-2xx status.
func NewAPIError(statusCode int, code, msg string) *BusError {
	return &BusError{
		Kind:       ErrorKindAPI,
		Message:    fmt.Sprintf("ERROR: <Binance API>: Code %s MSG %s", code, msg),
		StatusCode: statusCode,
		Code:       code,
		Trace:      captureTrace(1),
	}
}

// NewHTTPError reports a non-2xx status without a structured error body.
func NewHTTPError(statusCode int) *BusError {
	return &BusError{
		Kind:       ErrorKindHTTP,
		Message:    fmt.Sprintf("ERROR: <HTTPS_P>: Code %d", statusCode),
		StatusCode: statusCode,
		Trace:      captureTrace(1),
	}
}

func isKind(err error, kind ErrorKind) bool {
	var e *BusError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsTransportError returns true if the call failed before a response was received.
func IsTransportError(err error) bool {
	return isKind(err, ErrorKindTransport)
}

// IsAPIError returns true if the exchange rejected the call with a {code, msg} body.
func IsAPIError(err error) bool {
	return isKind(err, ErrorKindAPI)
}

// IsHTTPError returns true if the call failed with an unstructured HTTP status.
func IsHTTPError(err error) bool {
	return isKind(err, ErrorKindHTTP)
}
