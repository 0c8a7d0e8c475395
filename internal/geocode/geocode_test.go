package geocode_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/geocode"
)

// resolverFunc adapts a function to geocode.Resolver.
type resolverFunc func(ctx context.Context, query string) (domain.Place, error)

func (f resolverFunc) Resolve(ctx context.Context, query string) (domain.Place, error) {
	return f(ctx, query)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Kansas City, MO", geocode.Normalize("  Kansas   City,\tMO "))
	assert.Equal(t, "", geocode.Normalize(" \n "))
}

func TestStatic_Resolve(t *testing.T) {
	s := geocode.NewStatic()
	ctx := context.Background()

	tests := []struct {
		query string
		want  string
	}{
		{"Chicago, IL", "Chicago, IL"},
		{"chicago,il", "Chicago, IL"},
		{"  salt lake   city, ut", "Salt Lake City, UT"},
		{"Memphis", "Memphis, TN"},
		{"41.5,-90.25", "41.5,-90.25"},
		{" 41.5 , -90.25 ", "41.5,-90.25"},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			p, err := s.Resolve(ctx, tc.query)

			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Name)
			assert.True(t, p.Valid())
		})
	}
}

func TestStatic_Resolve_notFound(t *testing.T) {
	s := geocode.NewStatic()

	for _, q := range []string{"", "Atlantis", "Portland", "Columbus", "95,10"} {
		_, err := s.Resolve(context.Background(), q)
		assert.ErrorIs(t, err, geocode.ErrNotFound, q)
	}
}

func TestStatic_customGazetteer(t *testing.T) {
	depot := domain.Place{Name: "Depot 7", Coordinates: domain.Coordinates{Lat: 1, Lon: 2}}
	s := geocode.NewStatic(depot)

	p, err := s.Resolve(context.Background(), "depot 7")
	require.NoError(t, err)
	assert.Equal(t, depot, p)

	_, err = s.Resolve(context.Background(), "Chicago, IL")
	assert.ErrorIs(t, err, geocode.ErrNotFound)
}

func TestChain_Resolve(t *testing.T) {
	miss := resolverFunc(func(context.Context, string) (domain.Place, error) {
		return domain.Place{}, geocode.ErrNotFound
	})
	boom := errors.New("upstream down")
	fail := resolverFunc(func(context.Context, string) (domain.Place, error) {
		return domain.Place{}, boom
	})
	ctx := context.Background()

	t.Run("first hit wins", func(t *testing.T) {
		p, err := geocode.Chain{miss, geocode.NewStatic()}.Resolve(ctx, "Dallas, TX")
		require.NoError(t, err)
		assert.Equal(t, "Dallas, TX", p.Name)
	})

	t.Run("hard error stops the chain", func(t *testing.T) {
		_, err := geocode.Chain{fail, geocode.NewStatic()}.Resolve(ctx, "Dallas, TX")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("all miss", func(t *testing.T) {
		_, err := geocode.Chain{miss, miss}.Resolve(ctx, "Dallas, TX")
		assert.ErrorIs(t, err, geocode.ErrNotFound)
	})
}
