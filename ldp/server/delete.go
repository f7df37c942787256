package server

import (
	"net/http"

	"github.com/go-ldp/ldpserver/ldp/backend"
)

// DeleteResource removes the resource with no cascade to members or
// membership resources.
func DeleteResource(ctx *Context, w http.ResponseWriter, r *http.Request) {
	removed, err := ctx.backendHandle().Remove(ctx, ctx.URI)
	if err != nil {
		writeError(w, err)
		return
	}
	if !removed {
		writeError(w, backend.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
