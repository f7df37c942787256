package membership

import (
	"testing"

	"github.com/go-ldp/ldpserver/ldp/ldpns"
	"github.com/go-ldp/ldpserver/ldp/model"
	"github.com/go-ldp/ldpserver/ldp/prefer"
)

func TestInsertBasicContainerDefaultEmitsContainment(t *testing.T) {
	res := &model.Resource{
		URI:              "http://h/r/c1",
		Graph:            model.NewGraph(),
		InteractionModel: model.BasicContainer,
	}
	Insert(res, []string{"http://h/r/c1/a", "http://h/r/c1/b"}, prefer.Preference{})

	got := res.Graph.StatementsMatching(model.IRI{Value: res.URI}, model.IRI{Value: ldpns.Contains}, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 containment triples by default, got %d", len(got))
	}
}

func TestInsertBasicContainerOmitContainmentSuppresses(t *testing.T) {
	res := &model.Resource{
		URI:              "http://h/r/c1",
		Graph:            model.NewGraph(),
		InteractionModel: model.BasicContainer,
	}
	pref := prefer.Parse(`return=representation; omit="http://www.w3.org/ns/ldp#PreferContainment"`)
	applied := Insert(res, []string{"http://h/r/c1/a"}, pref)

	if !applied {
		t.Fatal("an honored omit token must report applied")
	}
	got := res.Graph.StatementsMatching(model.IRI{Value: res.URI}, model.IRI{Value: ldpns.Contains}, nil)
	if len(got) != 0 {
		t.Fatalf("expected containment suppressed, got %d triples", len(got))
	}
}

func TestInsertDirectContainerForwardMembership(t *testing.T) {
	res := &model.Resource{
		URI:                "http://h/r/c1",
		Graph:              model.NewGraph(),
		InteractionModel:   model.DirectContainer,
		MembershipResource: "http://h/r/mr",
		HasMemberRelation:  "http://ex/has",
	}
	Insert(res, []string{"http://h/r/c1/a"}, prefer.Preference{})

	got := res.Graph.StatementsMatching(model.IRI{Value: res.MembershipResource}, model.IRI{Value: res.HasMemberRelation}, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 forward membership triple, got %d", len(got))
	}
}

func TestInsertDirectContainerMinimalSuppressesBoth(t *testing.T) {
	res := &model.Resource{
		URI:                "http://h/r/c1",
		Graph:              model.NewGraph(),
		InteractionModel:   model.DirectContainer,
		MembershipResource: "http://h/r/mr",
		HasMemberRelation:  "http://ex/has",
	}
	pref := prefer.Parse(`return=representation; minimal`)
	Insert(res, []string{"http://h/r/c1/a"}, pref)

	if res.Graph.Len() != 0 {
		t.Fatalf("expected no triples emitted under minimal, got %d", res.Graph.Len())
	}
}

func TestInsertMembershipReverse(t *testing.T) {
	res := &model.Resource{
		URI:   "http://h/r/mr",
		Graph: model.NewGraph(),
		MembershipResourceFor: []model.MembershipRef{
			{Container: "http://h/r/c1", HasMemberRelation: "http://ex/has", Members: []string{"http://h/r/c1/a"}},
		},
	}
	applied := Insert(res, nil, prefer.Preference{})

	got := res.Graph.StatementsMatching(model.IRI{Value: res.URI}, model.IRI{Value: "http://ex/has"}, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 reverse membership triple, got %d", len(got))
	}
	if applied {
		t.Fatal("a non-explicit Prefer header must not report applied")
	}
}

func TestInsertMembershipReverseOmitSuppresses(t *testing.T) {
	res := &model.Resource{
		URI:   "http://h/r/mr",
		Graph: model.NewGraph(),
		MembershipResourceFor: []model.MembershipRef{
			{Container: "http://h/r/c1", HasMemberRelation: "http://ex/has", Members: []string{"http://h/r/c1/a"}},
		},
	}
	pref := prefer.Parse(`return=representation; omit="http://www.w3.org/ns/ldp#PreferMembership"`)
	Insert(res, nil, pref)

	if res.Graph.Len() != 0 {
		t.Fatalf("expected reverse membership suppressed, got %d triples", res.Graph.Len())
	}
}

func TestInsertMembershipReverseNoRefsReturnsFalse(t *testing.T) {
	res := &model.Resource{URI: "http://h/r/x", Graph: model.NewGraph()}
	if Insert(res, nil, prefer.Preference{}) {
		t.Fatal("a plain resource with no membership refs must never report applied")
	}
}
