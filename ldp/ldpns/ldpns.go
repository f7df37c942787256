// Package ldpns holds the well-known vocabulary IRIs the core needs to
// recognize or emit: the LDP namespace itself plus the rdf:type term the
// protocol state machine touches directly.
package ldpns

const (
	NS = "http://www.w3.org/ns/ldp#"

	Resource          = NS + "Resource"
	RDFSource         = NS + "RDFSource"
	Container         = NS + "Container"
	BasicContainer    = NS + "BasicContainer"
	DirectContainer   = NS + "DirectContainer"
	IndirectContainer = NS + "IndirectContainer"

	Contains                = NS + "contains"
	MembershipResource      = NS + "membershipResource"
	HasMemberRelation       = NS + "hasMemberRelation"
	IsMemberOfRelation      = NS + "isMemberOfRelation"
	InsertedContentRelation = NS + "insertedContentRelation"

	PreferContainment      = NS + "PreferContainment"
	PreferMembership       = NS + "PreferMembership"
	PreferMinimalContainer = NS + "PreferMinimalContainer"
	PreferEmptyContainer   = NS + "PreferEmptyContainer"

	ConstrainedBy = NS + "constrainedBy"
)

const (
	RDFNS   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFType = RDFNS + "type"
)

// ConstraintsDocument is the relative path, under the server's context
// path, of the document the constrainedBy Link header points to.
const ConstraintsDocument = "constraints.html"
