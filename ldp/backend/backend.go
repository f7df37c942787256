// Package backend declares the pluggable RDF store interface the LDP
// core consumes and the sentinel errors the controller translates into
// HTTP status codes.
package backend

import (
	"context"
	"errors"

	"github.com/go-ldp/ldpserver/ldp/model"
)

var (
	// ErrNotFound is returned by Read, Remove, and FindContainer when no
	// resource exists at the given URI.
	ErrNotFound = errors.New("backend: resource not found")
	// ErrOccupied is returned by ReserveURI when the URI is already
	// reserved or populated.
	ErrOccupied = errors.New("backend: uri already occupied")
)

// Backend is the pluggable RDF store the controller drives. Every method
// is a synchronous call; an implementation backed by a remote store is
// free to block inside these calls, and takes its cancellation from the
// request context.
type Backend interface {
	// Init prepares the store. Called once at startup with the
	// configuration's storage parameters.
	Init(params map[string]interface{}) error

	// ReserveURI atomically claims uri. Returns ErrOccupied if it is
	// already reserved or populated.
	ReserveURI(ctx context.Context, uri string) error

	// ReleaseURI best-effort releases a reservation that was never
	// populated. Idempotent.
	ReleaseURI(ctx context.Context, uri string)

	// Read returns the stored graph and derived LDP metadata for uri, or
	// ErrNotFound. The returned graph never contains containment or
	// membership triples; MembershipResourceFor is populated from the
	// backend's own bookkeeping.
	Read(ctx context.Context, uri string) (*model.Resource, error)

	// Update persists a fully formed resource graph, creating it or
	// replacing its content. The caller has already stripped derived
	// triples.
	Update(ctx context.Context, res *model.Resource) error

	// InsertData performs an additive structural write: it records that
	// the triples' subject container now counts the triples' objects as
	// direct members. It never stores containment or membership triples
	// literally inside any resource's graph; those are recomputed on
	// Read from this bookkeeping.
	InsertData(ctx context.Context, triples []model.Triple, targetURI string) error

	// Remove deletes the resource at uri. Returns (false, ErrNotFound)
	// if nothing was there. No cascade to members or membership resources.
	Remove(ctx context.Context, uri string) (bool, error)

	// GetMembershipTriples lists the direct member URIs of container.
	GetMembershipTriples(ctx context.Context, container string) ([]string, error)

	// FindContainer resolves uri to the container resource stored there,
	// or ErrNotFound if uri does not exist or is not a container.
	FindContainer(ctx context.Context, uri string) (*model.Resource, error)
}
