package server

import (
	"net/http"

	"github.com/go-ldp/ldpserver/ldp/membership"
	"github.com/go-ldp/ldpserver/ldp/prefer"
	"github.com/go-ldp/ldpserver/ldp/rdfcodec"
)

// GetResource implements GET and HEAD; includeBody is false for HEAD.
func GetResource(ctx *Context, w http.ResponseWriter, r *http.Request, includeBody bool) {
	res, err := ctx.backendHandle().Read(ctx, ctx.URI)
	if err != nil {
		writeError(w, err)
		return
	}

	syntax, ok := negotiate(r.Header.Get("Accept"))
	if !ok {
		writeError(w, errNotAcceptable)
		return
	}

	var members []string
	if res.IsContainer() {
		members, err = ctx.backendHandle().GetMembershipTriples(ctx, ctx.URI)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	pref := prefer.Parse(r.Header.Get("Prefer"))
	applied := membership.Insert(res, members, pref)

	body, err := rdfcodec.Serialize(res.Graph, syntax)
	if err != nil {
		writeError(w, err)
		return
	}
	etag := rdfcodec.ETag(body)

	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	ctx.writeCommonLinks(w)
	if res.IsContainer() {
		writeContainerHeaders(w, res)
	}
	writeAllow(w, res)
	w.Header().Set("Vary", "Accept")
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", syntax.ContentType())
	if applied {
		w.Header().Set("Preference-Applied", "return=representation")
	}

	w.WriteHeader(http.StatusOK)
	if includeBody {
		w.Write(body)
	}
}

