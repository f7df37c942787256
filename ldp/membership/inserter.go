// Package membership computes the containment and membership triples
// the read path injects into a response graph. These triples are never
// stored; they exist only in the representation handed to the RDF
// codec.
package membership

import (
	"github.com/go-ldp/ldpserver/ldp/ldpns"
	"github.com/go-ldp/ldpserver/ldp/model"
	"github.com/go-ldp/ldpserver/ldp/prefer"
)

// Insert mutates res.Graph in place, adding containment and/or
// membership triples as directed by the Prefer decision table, and
// reports whether the preference was honored (so the controller knows
// whether to set Preference-Applied).
//
// members is the list of direct child member URIs for a container
// (ignored for a plain RDF source); it comes from the backend's
// GetMembershipTriples.
func Insert(res *model.Resource, members []string, pref prefer.Preference) (applied bool) {
	if res.IsContainer() {
		return insertContainer(res, members, pref)
	}
	return insertMembershipReverse(res, pref)
}

func insertContainer(res *model.Resource, members []string, pref prefer.Preference) (applied bool) {
	emitContainment := pref.ShouldEmitContainment()
	if pref.IncludesContainment() || pref.OmitsContainment() || pref.Minimal || pref.IncludesMinimal() {
		applied = true
	}

	if emitContainment {
		subj := model.IRI{Value: res.URI}
		for _, m := range members {
			res.Graph.Add(model.Triple{S: subj, P: model.IRI{Value: ldpns.Contains}, O: model.IRI{Value: m}})
		}
	}

	if res.InteractionModel != model.DirectContainer || res.HasMemberRelation == "" {
		return applied
	}

	emitMembership := pref.ShouldEmitMembership()
	if pref.IncludesMembership() || pref.OmitsMembership() || pref.Minimal || pref.IncludesMinimal() {
		applied = true
	}

	if emitMembership {
		mrSubj := model.IRI{Value: res.MembershipResource}
		rel := model.IRI{Value: res.HasMemberRelation}
		for _, m := range members {
			res.Graph.Add(model.Triple{S: mrSubj, P: rel, O: model.IRI{Value: m}})
		}
	}
	return applied
}

// insertMembershipReverse handles the case where res is itself the
// membership resource of one or more Direct Containers. This only fires
// for containers whose relation is hasMemberRelation; isMemberOfRelation
// containers instead write the triple directly into the member's own
// graph at creation time (see ldp/server POST), so there is nothing to
// compute here for those.
func insertMembershipReverse(res *model.Resource, pref prefer.Preference) (applied bool) {
	if len(res.MembershipResourceFor) == 0 {
		return false
	}

	if !pref.OmitsMembership() {
		subj := model.IRI{Value: res.URI}
		for _, ref := range res.MembershipResourceFor {
			if ref.HasMemberRelation == "" {
				continue
			}
			rel := model.IRI{Value: ref.HasMemberRelation}
			for _, m := range ref.Members {
				res.Graph.Add(model.Triple{S: subj, P: rel, O: model.IRI{Value: m}})
			}
		}
	}
	return pref.Explicit
}
