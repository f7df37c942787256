package errcode

import (
	"encoding/json"
	"net/http"
)

// ServeJSON writes err to w as a JSON error envelope and sets the
// response status code from its registered descriptor. Any error type
// is accepted: ErrorCoder and Errors values use their own status code,
// anything else is wrapped and served as 500.
func ServeJSON(w http.ResponseWriter, err error) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	var sc int
	var envelope Errors

	switch v := err.(type) {
	case Errors:
		envelope = v
		if len(v) > 0 {
			if coder, ok := v[0].(ErrorCoder); ok {
				sc = coder.ErrorCode().Descriptor().HTTPStatusCode
			}
		}
	case ErrorCoder:
		envelope = Errors{err}
		sc = v.ErrorCode().Descriptor().HTTPStatusCode
	default:
		envelope = Errors{err}
	}

	if sc == 0 {
		sc = http.StatusInternalServerError
	}

	w.WriteHeader(sc)
	return json.NewEncoder(w).Encode(envelope)
}

// StatusCode reports the HTTP status err would be served with, without
// writing a response. The controller in ldp/server does not call it; it
// serves errors through ServeJSON only.
func StatusCode(err error) int {
	switch v := err.(type) {
	case Errors:
		if len(v) > 0 {
			if coder, ok := v[0].(ErrorCoder); ok {
				return coder.ErrorCode().Descriptor().HTTPStatusCode
			}
		}
	case ErrorCoder:
		return v.ErrorCode().Descriptor().HTTPStatusCode
	}
	return http.StatusInternalServerError
}
