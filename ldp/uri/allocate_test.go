package uri

import (
	"context"
	"testing"
	"time"

	"github.com/go-ldp/ldpserver/ldp/backend"
	"github.com/go-ldp/ldpserver/ldp/backend/memory"
)

func TestAllocateUsesSanitizedSlug(t *testing.T) {
	a := NewAllocator(memory.New())
	got, err := a.Allocate(context.Background(), "http://h/r/c1", "My Slug!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "http://h/r/c1/My%20Slug"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAllocateFallsBackOnSlugCollision(t *testing.T) {
	b := memory.New()
	ctx := context.Background()
	b.ReserveURI(ctx, "http://h/r/c1/dup")

	fixed := time.UnixMilli(1700000000000)
	a := &Allocator{Backend: b, Now: func() time.Time { return fixed }}

	got, err := a.Allocate(ctx, "http://h/r/c1", "dup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "http://h/r/c1/res1700000000000"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAllocateEmptySlugGoesStraightToFallback(t *testing.T) {
	fixed := time.UnixMilli(42)
	a := &Allocator{Backend: memory.New(), Now: func() time.Time { return fixed }}

	got, err := a.Allocate(context.Background(), "http://h/r/c1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "http://h/r/c1/res42" {
		t.Fatalf("unexpected fallback uri: %q", got)
	}
}

func TestAllocateExhaustsFallbackAttempts(t *testing.T) {
	b := memory.New()
	ctx := context.Background()

	calls := 0
	clock := func() time.Time {
		calls++
		// Reserve every candidate millisecond value up front so each
		// fallback attempt collides, forcing the loop to exhaust
		// MaxFallbackAttempts.
		return time.UnixMilli(int64(calls))
	}

	for i := 1; i <= MaxFallbackAttempts; i++ {
		b.ReserveURI(ctx, "http://h/r/c1/res"+itoaForTest(i))
	}

	a := &Allocator{Backend: b, Now: clock}
	_, err := a.Allocate(ctx, "http://h/r/c1", "")
	if err == nil {
		t.Fatal("expected an error after exhausting fallback attempts")
	}
}

func itoaForTest(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func TestReleaseIsIdempotent(t *testing.T) {
	b := memory.New()
	ctx := context.Background()
	a := NewAllocator(b)

	uri, err := a.Allocate(ctx, "http://h/r/c1", "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Release(ctx, uri)
	a.Release(ctx, uri)

	if err := b.ReserveURI(ctx, uri); err != nil {
		t.Fatalf("expected the uri to be free again after release, got %v", err)
	}
}

var _ backend.Backend = (*memory.Store)(nil)
