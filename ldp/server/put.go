package server

import (
	"io"
	"net/http"

	"github.com/go-ldp/ldpserver/ldp/analyzer"
	"github.com/go-ldp/ldpserver/ldp/api/errcode"
	"github.com/go-ldp/ldpserver/ldp/backend"
	"github.com/go-ldp/ldpserver/ldp/membership"
	"github.com/go-ldp/ldpserver/ldp/model"
	"github.com/go-ldp/ldpserver/ldp/prefer"
	"github.com/go-ldp/ldpserver/ldp/rdfcodec"
)

// PutResource updates an existing resource under conditional-request
// rules, or creates a new one at the request URI.
func PutResource(ctx *Context, w http.ResponseWriter, r *http.Request) {
	syntax, err := requestSyntax(r.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	graph, err := rdfcodec.ParseContext(ctx, body, ctx.URI, syntax)
	if err != nil {
		writeError(w, err)
		return
	}

	existing, readErr := ctx.backendHandle().Read(ctx, ctx.URI)
	switch {
	case readErr == nil:
		putUpdate(ctx, w, r, graph, existing, syntax)
	case readErr == backend.ErrNotFound:
		putCreate(ctx, w, r, graph)
	default:
		writeError(w, readErr)
	}
}

func putUpdate(ctx *Context, w http.ResponseWriter, r *http.Request, graph *model.Graph, existing *model.Resource, syntax rdfcodec.Syntax) {
	if existing.IsContainer() {
		writeAllow(w, existing)
		errcode.ServeJSON(w, errcode.ErrorCodeMethodNotAllowed.WithArgs("PUT (replacing a container)"))
		return
	}

	ifMatch := r.Header.Get("If-Match")
	if ifMatch == "" {
		errcode.ServeJSON(w, errcode.ErrorCodePreconditionRequired)
		return
	}

	currentETag, err := computeETag(existing, syntax)
	if err != nil {
		writeError(w, err)
		return
	}
	if ifMatch != currentETag {
		errcode.ServeJSON(w, errcode.ErrorCodePreconditionFailed)
		return
	}

	res, err := analyzer.Classify(graph, ctx.URI, r.Header.Get("Link"), &existing.InteractionModel)
	if err != nil {
		writeError(w, err)
		return
	}
	res.MembershipResourceFor = existing.MembershipResourceFor
	res.StripDerived()

	if err := ctx.backendHandle().Update(ctx, &res); err != nil {
		writeError(w, err)
		return
	}

	ctx.writeCommonLinks(w)
	writeAllow(w, &res)
	w.WriteHeader(http.StatusNoContent)
}

func putCreate(ctx *Context, w http.ResponseWriter, r *http.Request, graph *model.Graph) {
	res, err := analyzer.Classify(graph, ctx.URI, r.Header.Get("Link"), nil)
	if err != nil {
		writeError(w, err)
		return
	}
	res.StripDerived()

	if err := ctx.backendHandle().Update(ctx, &res); err != nil {
		writeError(w, err)
		return
	}

	ctx.writeCommonLinks(w)
	if res.IsContainer() {
		writeContainerHeaders(w, &res)
	}
	writeAllow(w, &res)
	w.WriteHeader(http.StatusCreated)
}

// computeETag reproduces the representation the controller would return
// from GET, with the default (non-explicit) Prefer decision, so the
// client's If-Match is compared against the same bytes a GET in the
// same media type would have handed it. ETags are bound to the media
// type used to serialize; the comparison uses the PUT's own
// Content-Type so a client working in one syntax end-to-end sees
// consistent tags.
func computeETag(res *model.Resource, syntax rdfcodec.Syntax) (string, error) {
	g := res.Graph.Clone()
	scratch := *res
	scratch.Graph = g
	membership.Insert(&scratch, nil, prefer.Preference{})
	body, err := rdfcodec.Serialize(scratch.Graph, syntax)
	if err != nil {
		return "", err
	}
	return rdfcodec.ETag(body), nil
}
