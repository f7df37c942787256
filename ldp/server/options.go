package server

import "net/http"

// OptionsResource reads the resource to determine its interaction
// model, and emits the common headers.
func OptionsResource(ctx *Context, w http.ResponseWriter, r *http.Request) {
	res, err := ctx.backendHandle().Read(ctx, ctx.URI)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx.writeCommonLinks(w)
	if res.IsContainer() {
		writeContainerHeaders(w, res)
	}
	writeAllow(w, res)
	w.WriteHeader(http.StatusOK)
}
