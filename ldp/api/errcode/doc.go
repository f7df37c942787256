// Package errcode assigns a stable ErrorCode to each failure the
// resource controller can report, and renders failures as a JSON error
// envelope over HTTP.
//
// Each code is registered once, at package init, with an
// ErrorDescriptor giving its HTTP status and a human-readable message.
// Backends return their own sentinel errors (ldp/backend.ErrNotFound,
// ErrOccupied); the controller translates those and its own failures
// into one of the registered ErrorCodes, optionally wrapped with
// WithDetail or WithArgs, and hands the result to ServeJSON.
package errcode
