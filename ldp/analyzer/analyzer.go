// Package analyzer classifies a parsed graph into an LDP interaction
// model and, for Direct Containers, extracts and validates the
// membership pattern.
package analyzer

import (
	"fmt"

	"github.com/go-ldp/ldpserver/ldp/ldpns"
	"github.com/go-ldp/ldpserver/ldp/linkhdr"
	"github.com/go-ldp/ldpserver/ldp/model"
)

// InvalidPatternError reports a Direct Container definition missing
// membershipResource, or setting zero or both of hasMemberRelation and
// isMemberOfRelation. The controller maps this to 409.
type InvalidPatternError struct {
	Reason string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("analyzer: invalid Direct Container definition: %s", e.Reason)
}

// Classify inspects graph g, naming resource uri, and returns the
// interaction model plus (for Direct Containers) the membership
// pattern. linkHeader is the raw Link request header, used to detect
// the ldp:Resource rel="type" override.
//
// If persisted is non-nil, it names the resource's already-committed
// interaction model; re-PUTs must not reclassify, so Classify returns
// persisted's model unchanged in that case, still re-extracting and
// validating the Direct Container fields from g.
func Classify(g *model.Graph, uri, linkHeader string, persisted *model.InteractionModel) (model.Resource, error) {
	res := model.Resource{URI: uri, Graph: g}

	if persisted != nil {
		res.InteractionModel = *persisted
	} else if linkhdr.HasRelTypeTarget(linkHeader, ldpns.Resource) {
		res.InteractionModel = model.RDFSource
	} else {
		res.InteractionModel = classifyFromTypes(g, uri)
	}

	if res.InteractionModel != model.DirectContainer {
		return res, nil
	}

	if err := extractDirectContainerFields(&res); err != nil {
		return res, err
	}
	return res, nil
}

func classifyFromTypes(g *model.Graph, uri string) model.InteractionModel {
	subj := model.IRI{Value: uri}
	typePred := model.IRI{Value: ldpns.RDFType}

	if len(g.StatementsMatching(subj, typePred, model.IRI{Value: ldpns.DirectContainer})) > 0 {
		return model.DirectContainer
	}
	if len(g.StatementsMatching(subj, typePred, model.IRI{Value: ldpns.BasicContainer})) > 0 {
		return model.BasicContainer
	}
	return model.RDFSource
}

func extractDirectContainerFields(res *model.Resource) error {
	subj := model.IRI{Value: res.URI}

	mr, hasMR := res.Graph.Any(subj, model.IRI{Value: ldpns.MembershipResource})
	hmr, hasHMR := res.Graph.Any(subj, model.IRI{Value: ldpns.HasMemberRelation})
	imr, hasIMR := res.Graph.Any(subj, model.IRI{Value: ldpns.IsMemberOfRelation})

	if !hasMR {
		return &InvalidPatternError{Reason: "missing ldp:membershipResource"}
	}
	if hasHMR == hasIMR {
		// Either both set or neither set; exactly one is required.
		if hasHMR {
			return &InvalidPatternError{Reason: "both hasMemberRelation and isMemberOfRelation are set"}
		}
		return &InvalidPatternError{Reason: "neither hasMemberRelation nor isMemberOfRelation is set"}
	}

	mrIRI, ok := mr.(model.IRI)
	if !ok {
		return &InvalidPatternError{Reason: "ldp:membershipResource is not an IRI"}
	}
	res.MembershipResource = mrIRI.Value

	if hasHMR {
		if iri, ok := hmr.(model.IRI); ok {
			res.HasMemberRelation = iri.Value
		} else {
			return &InvalidPatternError{Reason: "ldp:hasMemberRelation is not an IRI"}
		}
	}
	if hasIMR {
		if iri, ok := imr.(model.IRI); ok {
			res.IsMemberOfRelation = iri.Value
		} else {
			return &InvalidPatternError{Reason: "ldp:isMemberOfRelation is not an IRI"}
		}
	}
	return nil
}
