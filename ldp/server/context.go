package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/go-ldp/ldpserver/internal/dcontext"
	"github.com/go-ldp/ldpserver/ldp/backend"
	"github.com/go-ldp/ldpserver/ldp/uri"
)

// Context is the per-request state every handler receives: an embedded
// context.Context plus everything resolved before dispatch.
type Context struct {
	context.Context

	App *App
	URI string // the resource's absolute URI, resolved from the request path
}

func (app *App) newContext(r *http.Request) *Context {
	ctx := dcontext.WithRequestID(r.Context(), uuid.NewString())
	ctx = dcontext.WithLogger(ctx, dcontext.GetLogger(ctx))
	return &Context{
		Context: ctx,
		App:     app,
		URI:     app.resourceURI(r),
	}
}

func (app *App) resourceURI(r *http.Request) string {
	return app.Config.AppBase + r.URL.Path
}

// backendHandle and allocator are thin accessors so handlers route all
// backend access through the request Context rather than reaching into
// App's fields directly.
func (c *Context) backendHandle() backend.Backend { return c.App.Backend }
func (c *Context) allocator() *uri.Allocator      { return c.App.Allocator }
