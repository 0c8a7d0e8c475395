package handler

import (
	"context"
	"errors"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/handler/gen"
	"github.com/pkordes/eld-planner/backend/internal/hos"
)

// CalculateTrip handles POST /calculate. The plan is returned but not saved.
func (s *Server) CalculateTrip(ctx context.Context, req gen.CalculateTripRequestObject) (gen.CalculateTripResponseObject, error) {
	if req.Body == nil {
		return gen.CalculateTrip422JSONResponse(requestBody("request body is required")), nil
	}

	plan, err := s.trips.Plan(ctx, requestToDomain(*req.Body))
	if err != nil {
		if body, ok := unprocessableBody(err); ok {
			return gen.CalculateTrip422JSONResponse(body), nil
		}
		return nil, err
	}

	return gen.CalculateTrip200JSONResponse(planToResponse(plan)), nil
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(ctx context.Context, req gen.CreateTripRequestObject) (gen.CreateTripResponseObject, error) {
	if req.Body == nil {
		return gen.CreateTrip422JSONResponse(requestBody("request body is required")), nil
	}

	created, err := s.trips.Create(ctx, requestToDomain(*req.Body))
	if err != nil {
		if body, ok := unprocessableBody(err); ok {
			return gen.CreateTrip422JSONResponse(body), nil
		}
		return nil, err
	}

	return gen.CreateTrip201JSONResponse(tripToResponse(created)), nil
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	trips, total, err := s.trips.ListPaged(ctx, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.TripSummary, len(trips))
	for i, t := range trips {
		data[i] = tripToSummary(t)
	}
	return gen.ListTrips200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	}, nil
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	trip, err := s.trips.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.GetTrip200JSONResponse(tripToResponse(trip)), nil
}

// GetTripRoute handles GET /trips/{id}/route.
func (s *Server) GetTripRoute(ctx context.Context, req gen.GetTripRouteRequestObject) (gen.GetTripRouteResponseObject, error) {
	trip, err := s.trips.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTripRoute404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.GetTripRoute200JSONResponse{
		TripId:        trip.ID,
		TotalDistance: hos.RoundMiles(trip.Plan.Metrics.TotalDistance),
		Legs:          legsToResponse(trip.Plan.Metrics.Legs),
		RoutePoints:   pointsToResponse(trip.Plan.RoutePoints),
	}, nil
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(ctx context.Context, req gen.DeleteTripRequestObject) (gen.DeleteTripResponseObject, error) {
	err := s.trips.Delete(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.DeleteTrip204Response{}, nil
}
