package errcode

import "net/http"

// The registered error codes, one per failure kind the resource
// controller and backend can surface. Each maps to exactly one HTTP
// status.
var (
	ErrorCodeResourceNotFound = register(ErrorDescriptor{
		Value:          "RESOURCE_NOT_FOUND",
		Message:        "no resource exists at this URI",
		Description:    "Returned for GET, HEAD, POST, DELETE, or OPTIONS against a URI with no stored resource; a reserved but unpopulated URI reads as absent.",
		HTTPStatusCode: http.StatusNotFound,
	})

	ErrorCodeUnsupportedMediaType = register(ErrorDescriptor{
		Value:          "UNSUPPORTED_MEDIA_TYPE",
		Message:        "Content-Type %s is not a supported RDF syntax",
		Description:    "The request body's Content-Type is not Turtle, JSON-LD, or RDF/XML.",
		HTTPStatusCode: http.StatusUnsupportedMediaType,
	})

	ErrorCodeNotAcceptable = register(ErrorDescriptor{
		Value:          "NOT_ACCEPTABLE",
		Message:        "no representation matches the request's Accept header",
		Description:    "Content negotiation found no overlap between Accept and the syntaxes this server serves.",
		HTTPStatusCode: http.StatusNotAcceptable,
	})

	ErrorCodeParseFailure = register(ErrorDescriptor{
		Value:          "PARSE_FAILURE",
		Message:        "request body could not be parsed as RDF: %s",
		Description:    "The body failed to parse under its declared syntax.",
		HTTPStatusCode: http.StatusBadRequest,
	})

	ErrorCodeInvalidLDPPattern = register(ErrorDescriptor{
		Value:          "INVALID_LDP_PATTERN",
		Message:        "request graph does not satisfy the required LDP pattern: %s",
		Description:    "A Direct Container body is missing membershipResource, or sets zero or both of hasMemberRelation/isMemberOfRelation.",
		HTTPStatusCode: http.StatusConflict,
	})

	ErrorCodePreconditionRequired = register(ErrorDescriptor{
		Value:          "PRECONDITION_REQUIRED",
		Message:        "If-Match is required to modify this resource",
		Description:    "A PUT updating an existing resource arrived with no If-Match header.",
		HTTPStatusCode: http.StatusPreconditionRequired,
	})

	ErrorCodePreconditionFailed = register(ErrorDescriptor{
		Value:          "PRECONDITION_FAILED",
		Message:        "If-Match does not match the resource's current ETag",
		Description:    "The client's If-Match value is stale; it must GET the resource again before retrying.",
		HTTPStatusCode: http.StatusPreconditionFailed,
	})

	ErrorCodeMethodNotAllowed = register(ErrorDescriptor{
		Value:          "METHOD_NOT_ALLOWED",
		Message:        "method %s is not allowed on this resource",
		Description:    "For example, POST against a plain RDF source, or PUT replacing an existing container.",
		HTTPStatusCode: http.StatusMethodNotAllowed,
	})

	ErrorCodeBackendFailure = register(ErrorDescriptor{
		Value:          "BACKEND_FAILURE",
		Message:        "the backend store failed to complete this request",
		Description:    "Wraps any error a Backend implementation returns that the controller does not otherwise recognize.",
		HTTPStatusCode: http.StatusInternalServerError,
	})

	ErrorCodeURITaken = register(ErrorDescriptor{
		Value:          "URI_TAKEN",
		Message:        "URI %s is already reserved or populated",
		Description:    "A backend call reported the URI as occupied (backend.ErrOccupied). The allocator absorbs its own collisions and reports exhausted fallback attempts as BACKEND_FAILURE.",
		HTTPStatusCode: http.StatusConflict,
	})

	ErrorCodeBadRequest = register(ErrorDescriptor{
		Value:          "BAD_REQUEST",
		Message:        "%s",
		Description:    "Catch-all for malformed requests that are not an RDF parse failure. No controller path serves it: Slug, Link, and Prefer headers are parsed leniently and never rejected.",
		HTTPStatusCode: http.StatusBadRequest,
	})
)
