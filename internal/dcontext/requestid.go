package dcontext

import "context"

type requestIDKey struct{}

func (requestIDKey) String() string { return "http.request.id" }

// RequestIDKey is passed to GetLogger to include the request ID field.
var RequestIDKey = requestIDKey{}

// WithRequestID attaches id to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns the request ID attached to ctx, or "".
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}
