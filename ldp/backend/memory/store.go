// Package memory is a reference Backend implementation holding
// resources in process memory. It exists so the LDP core is runnable
// and testable without an external RDF store; production deployments
// are expected to supply their own Backend.
package memory

import (
	"context"
	"sync"

	"github.com/go-ldp/ldpserver/ldp/backend"
	"github.com/go-ldp/ldpserver/ldp/model"
)

type state int

const (
	stateReserved state = iota
	statePopulated
)

type entry struct {
	state    state
	resource *model.Resource
	// members lists, in creation order, the URIs of resources created
	// directly under this URI as a container. This is the store's own
	// bookkeeping, never mixed into resource.Graph.
	members []string
}

// Store is an in-memory Backend, safe for concurrent use. It serializes
// all operations behind a single mutex, which is adequate for a
// reference/test backend but not a throughput target.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New returns an empty Store.
func New() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// Init satisfies backend.Backend; the in-memory store takes no
// configuration parameters.
func (s *Store) Init(params map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries == nil {
		s.entries = make(map[string]*entry)
	}
	return nil
}

func (s *Store) ReserveURI(ctx context.Context, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[uri]; exists {
		return backend.ErrOccupied
	}
	s.entries[uri] = &entry{state: stateReserved}
	return nil
}

func (s *Store) ReleaseURI(ctx context.Context, uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, exists := s.entries[uri]; exists && e.state == stateReserved {
		delete(s.entries, uri)
	}
}

func (s *Store) Read(ctx context.Context, uri string) (*model.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked(uri)
}

func (s *Store) readLocked(uri string) (*model.Resource, error) {
	e, exists := s.entries[uri]
	if !exists || e.state != statePopulated {
		return nil, backend.ErrNotFound
	}
	res := cloneResource(e.resource)
	res.MembershipResourceFor = s.membershipResourceForLocked(uri)
	return res, nil
}

// membershipResourceForLocked scans every populated Direct Container
// for one naming uri as its membershipResource, attaching that
// container's current member list so the read path can compute reverse
// membership triples.
func (s *Store) membershipResourceForLocked(uri string) []model.MembershipRef {
	var refs []model.MembershipRef
	for containerURI, e := range s.entries {
		if e.state != statePopulated || e.resource == nil {
			continue
		}
		if e.resource.InteractionModel != model.DirectContainer {
			continue
		}
		if e.resource.MembershipResource != uri {
			continue
		}
		members := make([]string, len(e.members))
		copy(members, e.members)
		refs = append(refs, model.MembershipRef{
			Container:         containerURI,
			HasMemberRelation: e.resource.HasMemberRelation,
			Members:           members,
		})
	}
	return refs
}

func (s *Store) Update(ctx context.Context, res *model.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[res.URI]
	if !exists {
		e = &entry{}
		s.entries[res.URI] = e
	}
	e.state = statePopulated
	e.resource = cloneResource(res)
	return nil
}

func (s *Store) InsertData(ctx context.Context, triples []model.Triple, targetURI string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[targetURI]
	if !exists {
		e = &entry{state: statePopulated}
		s.entries[targetURI] = e
	}
	for _, t := range triples {
		obj, ok := t.O.(model.IRI)
		if !ok {
			continue
		}
		e.members = append(e.members, obj.Value)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, uri string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[uri]; !exists {
		return false, backend.ErrNotFound
	}
	delete(s.entries, uri)
	return true, nil
}

func (s *Store) GetMembershipTriples(ctx context.Context, container string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[container]
	if !exists || e.state != statePopulated {
		return nil, backend.ErrNotFound
	}
	out := make([]string, len(e.members))
	copy(out, e.members)
	return out, nil
}

func (s *Store) FindContainer(ctx context.Context, uri string) (*model.Resource, error) {
	res, err := s.Read(ctx, uri)
	if err != nil {
		return nil, err
	}
	if !res.IsContainer() {
		return nil, backend.ErrNotFound
	}
	return res, nil
}

func cloneResource(res *model.Resource) *model.Resource {
	out := *res
	if res.Graph != nil {
		out.Graph = res.Graph.Clone()
	}
	out.MembershipResourceFor = nil
	return &out
}
