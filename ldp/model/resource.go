package model

import "github.com/go-ldp/ldpserver/ldp/ldpns"

// InteractionModel classifies how a resource behaves under the LDP
// protocol: a plain RDF source, or one of the two container kinds.
type InteractionModel int

const (
	RDFSource InteractionModel = iota
	BasicContainer
	DirectContainer
)

func (m InteractionModel) String() string {
	switch m {
	case BasicContainer:
		return "BasicContainer"
	case DirectContainer:
		return "DirectContainer"
	default:
		return "RDFSource"
	}
}

// TypeIRI returns the ldp: IRI naming this interaction model, or "" for
// a plain RDFSource (which has no container-specific Link value).
func (m InteractionModel) TypeIRI() string {
	switch m {
	case BasicContainer:
		return ldpns.BasicContainer
	case DirectContainer:
		return ldpns.DirectContainer
	default:
		return ""
	}
}

// Resource is a named RDF graph together with its derived LDP metadata.
// Containment and membership triples are never stored in Graph; they are
// computed on read by ldp/membership.
type Resource struct {
	URI              string
	Graph            *Graph
	InteractionModel InteractionModel

	// Direct Container fields; zero values when InteractionModel is not
	// DirectContainer.
	MembershipResource string
	HasMemberRelation  string // "" if unset
	IsMemberOfRelation string // "" if unset

	// MembershipResourceFor is the set of Direct Container URIs that name
	// this resource as their membershipResource. Maintained by the
	// backend, exposed read-only to the core (invariant: derived, never
	// written directly by the controller).
	MembershipResourceFor []MembershipRef
}

// MembershipRef names one Direct Container this resource is the
// membership resource for, plus the relation to apply.
type MembershipRef struct {
	Container         string
	HasMemberRelation string // "" if the container instead uses IsMemberOfRelation
	Members           []string
}

// IsContainer reports whether the resource is a Basic or Direct Container.
func (r *Resource) IsContainer() bool {
	return r.InteractionModel == BasicContainer || r.InteractionModel == DirectContainer
}

// StripDerived removes containment and membership triples from the
// resource's own graph before persisting. It never mutates the
// receiver's Graph field in place; it assigns a new Graph.
func (r *Resource) StripDerived() {
	g := r.Graph.Remove(IRI{Value: r.URI}, IRI{Value: ldpns.Contains}, nil)
	for _, ref := range r.MembershipResourceFor {
		if ref.HasMemberRelation == "" {
			continue
		}
		g = g.Remove(IRI{Value: r.URI}, IRI{Value: ref.HasMemberRelation}, nil)
	}
	r.Graph = g
}
