package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/go-ldp/ldpserver/ldp/backend"
	"github.com/go-ldp/ldpserver/ldp/model"
)

func TestReserveURIThenOccupiedOnRetry(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.ReserveURI(ctx, "http://h/r/a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.ReserveURI(ctx, "http://h/r/a"); !errors.Is(err, backend.ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
}

func TestReleaseURIFreesAReservation(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.ReserveURI(ctx, "http://h/r/a")
	s.ReleaseURI(ctx, "http://h/r/a")
	if err := s.ReserveURI(ctx, "http://h/r/a"); err != nil {
		t.Fatalf("expected reservation to succeed after release, got %v", err)
	}
}

func TestReadNotFoundForReservedButUnpopulated(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.ReserveURI(ctx, "http://h/r/a")
	if _, err := s.Read(ctx, "http://h/r/a"); !errors.Is(err, backend.ErrNotFound) {
		t.Fatalf("a reserved-but-unpopulated uri must read as not found, got %v", err)
	}
}

func TestUpdateThenReadRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()
	g := model.NewGraph()
	g.Add(model.Triple{S: model.IRI{Value: "http://h/r/a"}, P: model.IRI{Value: "http://ex/title"}, O: model.Literal{Lexical: "x"}})
	res := &model.Resource{URI: "http://h/r/a", Graph: g, InteractionModel: model.RDFSource}

	if err := s.Update(ctx, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Read(ctx, "http://h/r/a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Graph.Len() != 1 {
		t.Fatalf("expected 1 triple, got %d", got.Graph.Len())
	}

	// The returned resource must be an independent clone.
	got.Graph.Add(model.Triple{S: model.IRI{Value: "http://h/r/a"}, P: model.IRI{Value: "http://ex/extra"}, O: model.Literal{Lexical: "y"}})
	again, _ := s.Read(ctx, "http://h/r/a")
	if again.Graph.Len() != 1 {
		t.Fatal("mutating a Read result must not affect stored state")
	}
}

func TestInsertDataBookkeepsMembers(t *testing.T) {
	s := New()
	ctx := context.Background()
	container := &model.Resource{URI: "http://h/r/c1", Graph: model.NewGraph(), InteractionModel: model.BasicContainer}
	s.Update(ctx, container)

	err := s.InsertData(ctx, []model.Triple{
		{S: model.IRI{Value: "http://h/r/c1"}, P: model.IRI{Value: "http://www.w3.org/ns/ldp#contains"}, O: model.IRI{Value: "http://h/r/c1/a"}},
	}, "http://h/r/c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	members, err := s.GetMembershipTriples(ctx, "http://h/r/c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != 1 || members[0] != "http://h/r/c1/a" {
		t.Fatalf("unexpected members: %v", members)
	}
}

func TestMembershipResourceForLockedReverseIndex(t *testing.T) {
	s := New()
	ctx := context.Background()

	mr := &model.Resource{URI: "http://h/r/mr", Graph: model.NewGraph(), InteractionModel: model.RDFSource}
	s.Update(ctx, mr)

	dc := &model.Resource{
		URI:                "http://h/r/c1",
		Graph:              model.NewGraph(),
		InteractionModel:   model.DirectContainer,
		MembershipResource: "http://h/r/mr",
		HasMemberRelation:  "http://ex/has",
	}
	s.Update(ctx, dc)
	s.InsertData(ctx, []model.Triple{
		{S: model.IRI{Value: "http://h/r/c1"}, P: model.IRI{Value: "http://www.w3.org/ns/ldp#contains"}, O: model.IRI{Value: "http://h/r/c1/a"}},
	}, "http://h/r/c1")

	got, err := s.Read(ctx, "http://h/r/mr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.MembershipResourceFor) != 1 {
		t.Fatalf("expected 1 reverse ref, got %d", len(got.MembershipResourceFor))
	}
	ref := got.MembershipResourceFor[0]
	if ref.Container != "http://h/r/c1" || ref.HasMemberRelation != "http://ex/has" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
	if len(ref.Members) != 1 || ref.Members[0] != "http://h/r/c1/a" {
		t.Fatalf("unexpected members on ref: %v", ref.Members)
	}
}

func TestRemove(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.Update(ctx, &model.Resource{URI: "http://h/r/a", Graph: model.NewGraph()})

	removed, err := s.Remove(ctx, "http://h/r/a")
	if err != nil || !removed {
		t.Fatalf("expected removal to succeed, got removed=%v err=%v", removed, err)
	}

	if _, err := s.Remove(ctx, "http://h/r/a"); !errors.Is(err, backend.ErrNotFound) {
		t.Fatalf("expected ErrNotFound removing twice, got %v", err)
	}
}

func TestFindContainerRejectsNonContainer(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.Update(ctx, &model.Resource{URI: "http://h/r/a", Graph: model.NewGraph(), InteractionModel: model.RDFSource})

	if _, err := s.FindContainer(ctx, "http://h/r/a"); !errors.Is(err, backend.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a non-container uri, got %v", err)
	}
}

func TestFindContainerReturnsContainer(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.Update(ctx, &model.Resource{URI: "http://h/r/c1", Graph: model.NewGraph(), InteractionModel: model.BasicContainer})

	res, err := s.FindContainer(ctx, "http://h/r/c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.URI != "http://h/r/c1" {
		t.Fatalf("unexpected uri: %q", res.URI)
	}
}
