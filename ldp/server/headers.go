package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-ldp/ldpserver/ldp/ldpns"
	"github.com/go-ldp/ldpserver/ldp/model"
	"github.com/go-ldp/ldpserver/ldp/rdfcodec"
)

const acceptPostValue = "text/turtle,application/ld+json,application/rdf+xml"

// writeCommonLinks sets the two common Link headers: the resource-type
// link and the constrainedBy link to the constraints document. Successful
// GET/HEAD, OPTIONS, PUT and POST responses carry them; DELETE responses
// and error responses do not.
func (ctx *Context) writeCommonLinks(w http.ResponseWriter) {
	w.Header().Add("Link", fmt.Sprintf(`<%s>; rel="type"`, ldpns.Resource))
	w.Header().Add("Link", fmt.Sprintf(`<%s>; rel="%s"`, ctx.constraintsURL(), ldpns.ConstrainedBy))
}

func (ctx *Context) constraintsURL() string {
	base := strings.TrimSuffix(ctx.App.Config.AppBase, "/")
	prefix := strings.TrimSuffix(ctx.App.Config.Prefix, "/")
	return base + prefix + "/" + ldpns.ConstraintsDocument
}

// writeContainerHeaders adds the interaction-model Link and Accept-Post
// header that only containers carry.
func writeContainerHeaders(w http.ResponseWriter, res *model.Resource) {
	if typeIRI := res.InteractionModel.TypeIRI(); typeIRI != "" {
		w.Header().Add("Link", fmt.Sprintf(`<%s>; rel="type"`, typeIRI))
	}
	w.Header().Set("Accept-Post", acceptPostValue)
}

// writeAllow sets the Allow header appropriate to res's interaction
// model.
func writeAllow(w http.ResponseWriter, res *model.Resource) {
	if res.IsContainer() {
		w.Header().Set("Allow", "GET,HEAD,DELETE,OPTIONS,POST")
	} else {
		w.Header().Set("Allow", "GET,HEAD,PUT,DELETE,OPTIONS")
	}
}

// negotiate picks the first syntax in the server's preference order
// that the client's Accept header admits. An empty or "*/*" Accept
// accepts the default (Turtle).
func negotiate(acceptHeader string) (rdfcodec.Syntax, bool) {
	acceptHeader = strings.TrimSpace(acceptHeader)
	if acceptHeader == "" || acceptHeader == "*/*" {
		return rdfcodec.Turtle, true
	}

	ranges := strings.Split(acceptHeader, ",")
	accepted := make(map[rdfcodec.Syntax]bool, len(ranges))
	wildcard := false
	for _, r := range ranges {
		mt := strings.TrimSpace(strings.SplitN(r, ";", 2)[0])
		if mt == "*/*" {
			wildcard = true
			continue
		}
		if s, ok := rdfcodec.SyntaxForContentType(mt); ok {
			accepted[s] = true
		}
	}

	for _, s := range rdfcodec.NegotiationOrder {
		if accepted[s] {
			return s, true
		}
	}
	if wildcard {
		return rdfcodec.Turtle, true
	}
	return 0, false
}
