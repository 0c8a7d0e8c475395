package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pkordes/eld-planner/backend/internal/domain"
)

// DefaultORSBaseURL is the public OpenRouteService API.
const DefaultORSBaseURL = "https://api.openrouteservice.org"

// ORS resolves locations with the OpenRouteService /geocode/search endpoint.
type ORS struct {
	baseURL string
	apiKey  string
	client  *http.Client

	maxAttempts int
	backoff     time.Duration
}

// NewORS returns an ORS resolver. An empty baseURL selects the public API and
// a nil client gets a 10-second timeout.
func NewORS(baseURL, apiKey string, client *http.Client) *ORS {
	if baseURL == "" {
		baseURL = DefaultORSBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &ORS{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		client:      client,
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
	}
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// Resolve implements Resolver. The result is named by the service's label for
// the match, falling back to the query.
func (o *ORS) Resolve(ctx context.Context, query string) (domain.Place, error) {
	q := Normalize(query)
	if q == "" {
		return domain.Place{}, fmt.Errorf("geocode.ORS.Resolve: empty query: %w", ErrNotFound)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/geocode/search", nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", o.apiKey)
		req.Header.Set("Accept", "application/json")
		v := req.URL.Query()
		v.Set("text", q)
		v.Set("boundary.country", "US")
		v.Set("size", "1")
		req.URL.RawQuery = v.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Place{}, fmt.Errorf("geocode.ORS.Resolve %q: %w", q, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Place{}, fmt.Errorf("geocode.ORS.Resolve %q: decode: %w", q, err)
	}
	if len(decoded.Features) == 0 {
		return domain.Place{}, fmt.Errorf("geocode.ORS.Resolve %q: %w", q, ErrNotFound)
	}

	f := decoded.Features[0]
	if len(f.Geometry.Coordinates) != 2 {
		return domain.Place{}, fmt.Errorf("geocode.ORS.Resolve %q: invalid coordinate format", q)
	}
	c := domain.Coordinates{Lon: f.Geometry.Coordinates[0], Lat: f.Geometry.Coordinates[1]}
	if !c.Valid() {
		return domain.Place{}, fmt.Errorf("geocode.ORS.Resolve %q: coordinates out of range", q)
	}
	name := f.Properties.Label
	if name == "" {
		name = q
	}
	return domain.Place{Name: name, Coordinates: c}, nil
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

func (o *ORS) do(req *http.Request) (*http.Response, error) {
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return resp, nil
}

// doWithRetry retries network errors, 429 and 5xx responses with exponential
// backoff, stopping early when ctx is done.
func (o *ORS) doWithRetry(ctx context.Context, makeReq func() (*http.Request, error)) (*http.Response, error) {
	backoff := o.backoff
	var lastErr error

	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := o.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) || attempt == o.maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}
	return nil, lastErr
}

func retryable(err error) bool {
	var he *httpStatusError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
