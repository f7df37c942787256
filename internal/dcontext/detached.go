package dcontext

import "context"

// DetachedContext returns a context carrying ctx's values (logger,
// request ID) but none of its cancellation. Used for bookkeeping that
// should finish even if the client disconnects mid-request.
func DetachedContext(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
