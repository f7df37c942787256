package errcode

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
)

// ErrorCode represents the error type. It is used to indicate a
// specific error condition across the resource controller and backend.
type ErrorCode int

var _ error = ErrorCode(0)

// ErrorDescriptor describes the error condition behind an ErrorCode.
type ErrorDescriptor struct {
	// Code is the unique, assigned identifier for this error condition.
	Code ErrorCode

	// Value is the unique string identifier, conventionally uppercase
	// with underscores, e.g. "RESOURCE_NOT_FOUND".
	Value string

	// Message is the short, human readable sentence describing the
	// error. It may contain %s substitutions filled by WithArgs.
	Message string

	// Description gives additional detail about the circumstances of
	// the error.
	Description string

	// HTTPStatusCode is the status written when this error is served.
	// Defaults to 500 if zero.
	HTTPStatusCode int
}

var (
	errorCodeToDescriptors = map[ErrorCode]ErrorDescriptor{}
	idToDescriptors        = map[string]ErrorDescriptor{}
	registerLock           sync.Mutex
	nextCode               = 1000
)

// register assigns and returns a new ErrorCode for descriptor, which
// must not be registered under this process already.
func register(descriptor ErrorDescriptor) ErrorCode {
	registerLock.Lock()
	defer registerLock.Unlock()

	descriptor.Code = ErrorCode(nextCode)

	if _, ok := idToDescriptors[descriptor.Value]; ok {
		panic(fmt.Sprintf("errcode: value %q already registered", descriptor.Value))
	}

	errorCodeToDescriptors[descriptor.Code] = descriptor
	idToDescriptors[descriptor.Value] = descriptor

	nextCode++
	return descriptor.Code
}

// Descriptor returns the ErrorDescriptor registered for ec, or a
// synthetic "unknown" descriptor if ec was never registered.
func (ec ErrorCode) Descriptor() ErrorDescriptor {
	d, ok := errorCodeToDescriptors[ec]
	if !ok {
		return ErrorDescriptor{
			Code:           ec,
			Value:          "UNKNOWN",
			Message:        "unknown error",
			HTTPStatusCode: http.StatusInternalServerError,
		}
	}
	return d
}

// String returns the canonical identifier for ec, e.g. "RESOURCE_NOT_FOUND".
func (ec ErrorCode) String() string {
	return ec.Descriptor().Value
}

// Message returns the human readable message for ec.
func (ec ErrorCode) Message() string {
	return ec.Descriptor().Message
}

// Error implements the error interface.
func (ec ErrorCode) Error() string {
	return ec.Message()
}

// MarshalJSON renders ec as its string Value, e.g. "RESOURCE_NOT_FOUND".
func (ec ErrorCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(ec.String())
}

// UnmarshalJSON resolves a string Value back to its registered
// ErrorCode.
func (ec *ErrorCode) UnmarshalJSON(p []byte) error {
	var s string
	if err := json.Unmarshal(p, &s); err != nil {
		return err
	}
	registerLock.Lock()
	d, ok := idToDescriptors[s]
	registerLock.Unlock()
	if !ok {
		return fmt.Errorf("errcode: unrecognized error code %q", s)
	}
	*ec = d.Code
	return nil
}


// WithDetail returns an Error carrying detail as additional, caller
// supplied context (for example the offending header value or parse
// error text).
func (ec ErrorCode) WithDetail(detail interface{}) Error {
	return Error{Code: ec, Message: ec.Message(), Detail: detail}
}

// WithArgs substitutes args into the descriptor's Message template.
func (ec ErrorCode) WithArgs(args ...interface{}) Error {
	return Error{Code: ec, Message: fmt.Sprintf(ec.Descriptor().Message, args...)}
}

// ErrorCoder is implemented by any error carrying an ErrorCode.
type ErrorCoder interface {
	ErrorCode() ErrorCode
}

// ErrorCode implements ErrorCoder on the bare code itself, so a
// registered ErrorCode can be passed directly to ServeJSON without
// wrapping it in Error first.
func (ec ErrorCode) ErrorCode() ErrorCode { return ec }

// Error extends an ErrorCode with request-specific substitution and
// detail information.
type Error struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

var _ error = Error{}

func (e Error) Error() string {
	return e.Message
}

// ErrorCode implements ErrorCoder.
func (e Error) ErrorCode() ErrorCode {
	return e.Code
}

// Errors is a slice of errors rendered as a single JSON envelope:
// {"errors":[...]}. It implements error so backend and controller code
// can return a single value.
type Errors []error

var _ error = Errors{}

// MarshalJSON renders the envelope {"errors":[...]} the controller
// writes for every non-2xx, non-304 response.
func (e Errors) MarshalJSON() ([]byte, error) {
	var envelope struct {
		Errors []error `json:"errors"`
	}
	envelope.Errors = []error(e)
	if envelope.Errors == nil {
		envelope.Errors = []error{}
	}
	return json.Marshal(envelope)
}

func (e Errors) Error() string {
	switch len(e) {
	case 0:
		return "<nil>"
	case 1:
		return e[0].Error()
	default:
		msgs := make([]string, len(e))
		for i, err := range e {
			msgs[i] = err.Error()
		}
		return fmt.Sprintf("errors: %v", msgs)
	}
}

// GetErrorAllDescriptors returns every registered descriptor, sorted by
// Code, for use in generated documentation.
func GetErrorAllDescriptors() []ErrorDescriptor {
	registerLock.Lock()
	defer registerLock.Unlock()

	out := make([]ErrorDescriptor, 0, len(errorCodeToDescriptors))
	for _, d := range errorCodeToDescriptors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
