package server

import (
	"io"
	"net/http"

	"github.com/go-ldp/ldpserver/internal/dcontext"
	"github.com/go-ldp/ldpserver/ldp/analyzer"
	"github.com/go-ldp/ldpserver/ldp/api/errcode"
	"github.com/go-ldp/ldpserver/ldp/ldpns"
	"github.com/go-ldp/ldpserver/ldp/model"
	"github.com/go-ldp/ldpserver/ldp/rdfcodec"
)

// PostResource creates a new member under a container.
//
// The new resource is persisted before the containment/membership side
// effect is recorded, so a side-effect failure leaves an
// orphaned-but-inspectable resource rather than a container that claims
// a member that was never written. The two writes are not atomic.
func PostResource(ctx *Context, w http.ResponseWriter, r *http.Request) {
	// Read, not FindContainer: a URI that is absent (404) and a URI
	// that exists but is not a container (405) need different answers,
	// and FindContainer collapses them into one error.
	parent, err := ctx.backendHandle().Read(ctx, ctx.URI)
	if err != nil {
		writeError(w, err)
		return
	}
	if !parent.IsContainer() {
		writeAllow(w, parent)
		errcode.ServeJSON(w, errcode.ErrorCodeMethodNotAllowed.WithArgs("POST (target is not a container)"))
		return
	}

	syntax, err := requestSyntax(r.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, err)
		return
	}

	newURI, err := ctx.allocator().Allocate(ctx, ctx.URI, r.Header.Get("Slug"))
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		releaseReservation(ctx, newURI)
		writeError(w, err)
		return
	}

	graph, err := rdfcodec.ParseContext(ctx, body, newURI, syntax)
	if err != nil {
		releaseReservation(ctx, newURI)
		writeError(w, err)
		return
	}

	res, err := analyzer.Classify(graph, newURI, r.Header.Get("Link"), nil)
	if err != nil {
		releaseReservation(ctx, newURI)
		writeError(w, err)
		return
	}

	if parent.InteractionModel == model.DirectContainer && parent.IsMemberOfRelation != "" {
		res.Graph.Add(model.Triple{
			S: model.IRI{Value: newURI},
			P: model.IRI{Value: parent.IsMemberOfRelation},
			O: model.IRI{Value: parent.MembershipResource},
		})
	}
	res.StripDerived()

	if err := ctx.backendHandle().Update(ctx, &res); err != nil {
		releaseReservation(ctx, newURI)
		writeError(w, err)
		return
	}

	containment := model.Triple{
		S: model.IRI{Value: parent.URI},
		P: model.IRI{Value: ldpns.Contains},
		O: model.IRI{Value: newURI},
	}
	if err := ctx.backendHandle().InsertData(ctx, []model.Triple{containment}, parent.URI); err != nil {
		writeError(w, err)
		return
	}

	ctx.writeCommonLinks(w)
	w.Header().Set("Location", newURI)
	w.WriteHeader(http.StatusCreated)
}

// releaseReservation gives back an unpopulated URI on an abort path. It
// detaches from the request's cancellation: a reservation must be
// released even when the abort is the client disconnecting.
func releaseReservation(ctx *Context, uri string) {
	ctx.allocator().Release(dcontext.DetachedContext(ctx), uri)
}
