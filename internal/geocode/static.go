package geocode

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkordes/eld-planner/backend/internal/domain"
)

// Static resolves coordinate literals such as "41.88,-87.63" and the names
// in its gazetteer. It never touches the network.
type Static struct {
	byName map[string]domain.Place
	byCity map[string][]domain.Place
}

// NewStatic returns a Static resolver over places. With no places it uses
// the built-in list of US freight hubs.
func NewStatic(places ...domain.Place) *Static {
	if len(places) == 0 {
		places = freightHubs
	}
	s := &Static{
		byName: make(map[string]domain.Place, len(places)),
		byCity: make(map[string][]domain.Place, len(places)),
	}
	for _, p := range places {
		s.byName[key(p.Name)] = p
		city, _, _ := strings.Cut(p.Name, ",")
		s.byCity[key(city)] = append(s.byCity[key(city)], p)
	}
	return s
}

// Resolve implements Resolver. A bare city name matches only when exactly
// one gazetteer entry carries it.
func (s *Static) Resolve(_ context.Context, query string) (domain.Place, error) {
	q := Normalize(query)
	if q == "" {
		return domain.Place{}, fmt.Errorf("geocode.Static.Resolve: empty query: %w", ErrNotFound)
	}
	if p, ok := parseLatLon(q); ok {
		return p, nil
	}
	if p, ok := s.byName[key(q)]; ok {
		return p, nil
	}
	if ps := s.byCity[key(q)]; len(ps) == 1 {
		return ps[0], nil
	}
	return domain.Place{}, fmt.Errorf("geocode.Static.Resolve %q: %w", q, ErrNotFound)
}

func key(s string) string {
	return strings.ToLower(Normalize(strings.ReplaceAll(s, ",", " ")))
}

func parseLatLon(q string) (domain.Place, bool) {
	latStr, lonStr, ok := strings.Cut(q, ",")
	if !ok {
		return domain.Place{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return domain.Place{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return domain.Place{}, false
	}
	c := domain.Coordinates{Lat: lat, Lon: lon}
	if !c.Valid() {
		return domain.Place{}, false
	}
	return domain.Place{
		Name:        strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64),
		Coordinates: c,
	}, true
}

func hub(name string, lat, lon float64) domain.Place {
	return domain.Place{Name: name, Coordinates: domain.Coordinates{Lat: lat, Lon: lon}}
}

var freightHubs = []domain.Place{
	hub("Atlanta, GA", 33.7490, -84.3880),
	hub("Albuquerque, NM", 35.0844, -106.6504),
	hub("Baltimore, MD", 39.2904, -76.6122),
	hub("Boise, ID", 43.6150, -116.2023),
	hub("Boston, MA", 42.3601, -71.0589),
	hub("Charlotte, NC", 35.2271, -80.8431),
	hub("Chicago, IL", 41.8781, -87.6298),
	hub("Cincinnati, OH", 39.1031, -84.5120),
	hub("Columbus, OH", 39.9612, -82.9988),
	hub("Columbus, GA", 32.4610, -84.9877),
	hub("Dallas, TX", 32.7767, -96.7970),
	hub("Denver, CO", 39.7392, -104.9903),
	hub("Detroit, MI", 42.3314, -83.0458),
	hub("El Paso, TX", 31.7619, -106.4850),
	hub("Houston, TX", 29.7604, -95.3698),
	hub("Indianapolis, IN", 39.7684, -86.1581),
	hub("Jacksonville, FL", 30.3322, -81.6557),
	hub("Kansas City, MO", 39.0997, -94.5786),
	hub("Laredo, TX", 27.5306, -99.4803),
	hub("Las Vegas, NV", 36.1699, -115.1398),
	hub("Los Angeles, CA", 34.0522, -118.2437),
	hub("Louisville, KY", 38.2527, -85.7585),
	hub("Memphis, TN", 35.1495, -90.0490),
	hub("Miami, FL", 25.7617, -80.1918),
	hub("Minneapolis, MN", 44.9778, -93.2650),
	hub("Nashville, TN", 36.1627, -86.7816),
	hub("New Orleans, LA", 29.9511, -90.0715),
	hub("New York, NY", 40.7128, -74.0060),
	hub("Oklahoma City, OK", 35.4676, -97.5164),
	hub("Omaha, NE", 41.2565, -95.9345),
	hub("Philadelphia, PA", 39.9526, -75.1652),
	hub("Phoenix, AZ", 33.4484, -112.0740),
	hub("Pittsburgh, PA", 40.4406, -79.9959),
	hub("Portland, OR", 45.5152, -122.6784),
	hub("Portland, ME", 43.6591, -70.2568),
	hub("Reno, NV", 39.5296, -119.8138),
	hub("Salt Lake City, UT", 40.7608, -111.8910),
	hub("San Antonio, TX", 29.4241, -98.4936),
	hub("Savannah, GA", 32.0809, -81.0912),
	hub("Seattle, WA", 47.6062, -122.3321),
	hub("St. Louis, MO", 38.6270, -90.1994),
}
