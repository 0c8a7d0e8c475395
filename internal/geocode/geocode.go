// Package geocode resolves free-text trip locations to named coordinates.
package geocode

import (
	"context"
	"errors"
	"strings"

	"github.com/pkordes/eld-planner/backend/internal/domain"
)

// ErrNotFound is returned when a query matches no known place.
var ErrNotFound = errors.New("location not found")

// Resolver turns a location query into a Place.
// Implementations must return an error wrapping ErrNotFound when the query
// matches nothing, and must be safe for concurrent use.
type Resolver interface {
	Resolve(ctx context.Context, query string) (domain.Place, error)
}

// Normalize collapses runs of whitespace so equivalent queries share cache keys.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Chain tries each resolver in order and returns the first hit.
// A resolver that reports ErrNotFound passes the query on; any other error
// stops the chain.
type Chain []Resolver

// Resolve implements Resolver.
func (c Chain) Resolve(ctx context.Context, query string) (domain.Place, error) {
	for _, r := range c {
		p, err := r.Resolve(ctx, query)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return domain.Place{}, err
		}
	}
	return domain.Place{}, ErrNotFound
}
