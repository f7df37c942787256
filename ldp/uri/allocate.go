// Package uri allocates new member URIs under a container, honoring the
// client's Slug header and the backend's reserve/release two-phase
// protocol.
package uri

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-ldp/ldpserver/ldp/backend"
)

// MaxFallbackAttempts bounds the reserve retries before the allocator
// gives up and reports a failure.
const MaxFallbackAttempts = 5

var slugCharPattern = regexp.MustCompile(`[\w\s\-_]`)

// sanitizeSlug keeps only characters matching [\w\s\-_] and
// percent-encodes the result.
func sanitizeSlug(slug string) string {
	var kept strings.Builder
	for _, r := range slug {
		if slugCharPattern.MatchString(string(r)) {
			kept.WriteRune(r)
		}
	}
	return url.PathEscape(kept.String())
}

// containerBase strips any hash/query from containerURI and ensures a
// trailing slash.
func containerBase(containerURI string) string {
	u, err := url.Parse(containerURI)
	if err == nil {
		u.Fragment = ""
		u.RawQuery = ""
		containerURI = u.String()
	}
	if !strings.HasSuffix(containerURI, "/") {
		containerURI += "/"
	}
	return containerURI
}

// Allocator reserves new URIs against a Backend. Now is the fallback
// timestamp source; it is a field so tests can substitute a
// deterministic clock.
type Allocator struct {
	Backend backend.Backend
	Now     func() time.Time
}

// NewAllocator returns an Allocator backed by b, using the real clock.
func NewAllocator(b backend.Backend) *Allocator {
	return &Allocator{Backend: b, Now: time.Now}
}

// Allocate reserves a new URI under containerURI, preferring the
// sanitized slug and falling back to a res<millis> name on collision or
// an empty/invalid slug. It returns the allocated, reserved URI.
func (a *Allocator) Allocate(ctx context.Context, containerURI, slug string) (string, error) {
	base := containerBase(containerURI)

	if candidate := sanitizeSlug(slug); candidate != "" {
		full := base + candidate
		if err := a.Backend.ReserveURI(ctx, full); err == nil {
			return full, nil
		} else if err != backend.ErrOccupied {
			return "", err
		}
	}

	for attempt := 0; attempt < MaxFallbackAttempts; attempt++ {
		full := base + fmt.Sprintf("res%d", a.Now().UnixMilli())
		err := a.Backend.ReserveURI(ctx, full)
		if err == nil {
			return full, nil
		}
		if err != backend.ErrOccupied {
			return "", err
		}
	}

	return "", fmt.Errorf("uri: exhausted %d fallback attempts allocating under %s", MaxFallbackAttempts, containerURI)
}

// Release gives back a reservation that was never populated (abort
// path: parse failure, invalid pattern, or persist failure).
func (a *Allocator) Release(ctx context.Context, allocated string) {
	a.Backend.ReleaseURI(ctx, allocated)
}
