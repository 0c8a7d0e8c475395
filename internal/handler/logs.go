package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"time"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/handler/gen"
	"github.com/pkordes/eld-planner/backend/internal/hos"
)

// logCSVHeaders defines the column names written as the first row of a CSV log export.
var logCSVHeaders = []string{
	"date", "driver_name", "carrier_name", "vehicle_number",
	"status", "start_time", "end_time", "duration_hours",
	"location", "end_location", "start_odometer", "end_odometer", "note",
}

// GetTripLogs handles GET /trips/{id}/logs.
// Use ?format=csv to receive one CSV row per duty segment; default is JSON.
func (s *Server) GetTripLogs(ctx context.Context, req gen.GetTripLogsRequestObject) (gen.GetTripLogsResponseObject, error) {
	trip, err := s.trips.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTripLogs404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	wantCSV := req.Params.Format != nil && *req.Params.Format == gen.GetTripLogsParamsFormatCsv
	if wantCSV {
		return buildLogsCSV(trip.Plan.Logs), nil
	}
	return gen.GetTripLogs200JSONResponse{
		TripId:  trip.ID,
		EldLogs: logsToResponse(trip.Plan.Logs),
	}, nil
}

// buildLogsCSV encodes the logs as CSV and wraps them in the streaming response type.
// A segment split at midnight appears once per day, as it does on paper logs.
func buildLogsCSV(logs []domain.ELDLog) gen.GetTripLogs200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(logCSVHeaders)
	for _, log := range logs {
		for _, seg := range log.Segments {
			//nolint:errcheck
			w.Write(segmentToCSVRecord(log, seg))
		}
	}
	w.Flush()

	return gen.GetTripLogs200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}
}

func segmentToCSVRecord(log domain.ELDLog, seg domain.DutySegment) []string {
	return []string{
		log.Date,
		log.Driver.DriverName,
		log.Driver.CarrierName,
		log.Driver.VehicleNumber,
		string(seg.Status),
		seg.Start.UTC().Format(time.RFC3339),
		seg.End.UTC().Format(time.RFC3339),
		formatFloat(hos.RoundHours(seg.Duration())),
		seg.Location.Name,
		seg.EndLocation.Name,
		formatFloat(hos.RoundMiles(seg.StartOdometer)),
		formatFloat(hos.RoundMiles(seg.EndOdometer)),
		seg.Note,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
