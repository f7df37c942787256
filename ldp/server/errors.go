package server

import (
	"errors"
	"net/http"

	"github.com/go-ldp/ldpserver/ldp/analyzer"
	"github.com/go-ldp/ldpserver/ldp/api/errcode"
	"github.com/go-ldp/ldpserver/ldp/backend"
	"github.com/go-ldp/ldpserver/ldp/rdfcodec"
)

// notAcceptableError signals that none of the syntaxes in a request's
// Accept header are served; translate maps it to 406.
type notAcceptableError struct{}

func (notAcceptableError) Error() string { return "no representation matches Accept" }

// errNotAcceptable is the single shared instance handlers return.
var errNotAcceptable = notAcceptableError{}

// unsupportedMediaTypeError signals a request Content-Type outside the
// three recognized RDF syntaxes; translate maps it to 415.
type unsupportedMediaTypeError struct{ contentType string }

func (e unsupportedMediaTypeError) Error() string {
	return "unsupported Content-Type: " + e.contentType
}

// writeError translates err into its registered ErrorCode and serves it
// as a JSON envelope.
func writeError(w http.ResponseWriter, err error) {
	errcode.ServeJSON(w, translate(err))
}

func translate(err error) error {
	var invalidPattern *analyzer.InvalidPatternError
	var parseErr *rdfcodec.ParseError
	var unsupported unsupportedMediaTypeError
	var notAcceptable notAcceptableError

	switch {
	case errors.Is(err, backend.ErrNotFound):
		return errcode.ErrorCodeResourceNotFound.WithDetail(err.Error())
	case errors.Is(err, backend.ErrOccupied):
		return errcode.ErrorCodeURITaken.WithDetail(err.Error())
	case errors.As(err, &invalidPattern):
		return errcode.ErrorCodeInvalidLDPPattern.WithDetail(invalidPattern.Reason)
	case errors.As(err, &parseErr):
		return errcode.ErrorCodeParseFailure.WithDetail(parseErr.Error())
	case errors.As(err, &unsupported):
		return errcode.ErrorCodeUnsupportedMediaType.WithArgs(unsupported.contentType)
	case errors.As(err, &notAcceptable):
		return errcode.ErrorCodeNotAcceptable.WithDetail(err.Error())
	default:
		return errcode.ErrorCodeBackendFailure.WithDetail(err.Error())
	}
}
