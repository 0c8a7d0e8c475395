package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestORS(t *testing.T, h http.HandlerFunc) *ORS {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	o := NewORS(srv.URL+"/", "test-key", srv.Client())
	o.backoff = time.Millisecond
	return o
}

const denverBody = `{"features":[{"geometry":{"coordinates":[-104.9903,39.7392]},"properties":{"label":"Denver, CO, USA"}}]}`

func TestORS_Resolve(t *testing.T) {
	o := newTestORS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "Denver, CO", r.URL.Query().Get("text"))
		assert.Equal(t, "US", r.URL.Query().Get("boundary.country"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(denverBody))
	})

	p, err := o.Resolve(context.Background(), "  Denver,   CO")

	require.NoError(t, err)
	assert.Equal(t, "Denver, CO, USA", p.Name)
	assert.InDelta(t, 39.7392, p.Lat, 1e-9)
	assert.InDelta(t, -104.9903, p.Lon, 1e-9)
}

func TestORS_Resolve_noFeatures(t *testing.T) {
	o := newTestORS(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features":[]}`))
	})

	_, err := o.Resolve(context.Background(), "Atlantis")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestORS_Resolve_retriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	o := newTestORS(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(denverBody))
	})

	p, err := o.Resolve(context.Background(), "Denver, CO")

	require.NoError(t, err)
	assert.Equal(t, "Denver, CO, USA", p.Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestORS_Resolve_doesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	o := newTestORS(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad key", http.StatusForbidden)
	})

	_, err := o.Resolve(context.Background(), "Denver, CO")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, int32(1), calls.Load())
}

func TestORS_Resolve_givesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	o := newTestORS(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := o.Resolve(context.Background(), "Denver, CO")

	require.Error(t, err)
	assert.Equal(t, int32(o.maxAttempts), calls.Load())
}

func TestORS_Resolve_rejectsBadCoordinates(t *testing.T) {
	o := newTestORS(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features":[{"geometry":{"coordinates":[1]}}]}`))
	})

	_, err := o.Resolve(context.Background(), "Denver, CO")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
