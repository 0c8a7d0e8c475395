package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/hos"
)

// legRow is the JSONB shape of one entry in trips.legs.
type legRow struct {
	FromName    string  `json:"from_name"`
	FromLat     float64 `json:"from_lat"`
	FromLon     float64 `json:"from_lon"`
	ToName      string  `json:"to_name"`
	ToLat       float64 `json:"to_lat"`
	ToLon       float64 `json:"to_lon"`
	Miles       float64 `json:"miles"`
	DriveSecond int64   `json:"drive_seconds"`
}

// violationRow is the JSONB shape of one entry in trips.violations.
type violationRow struct {
	Rule         string `json:"rule"`
	SegmentIndex int    `json:"segment_index"`
	Message      string `json:"message"`
}

func toLegRows(legs []domain.Leg) []legRow {
	out := make([]legRow, 0, len(legs))
	for _, l := range legs {
		out = append(out, legRow{
			FromName:    l.From.Name,
			FromLat:     l.From.Lat,
			FromLon:     l.From.Lon,
			ToName:      l.To.Name,
			ToLat:       l.To.Lat,
			ToLon:       l.To.Lon,
			Miles:       l.Miles,
			DriveSecond: seconds(l.DriveTime),
		})
	}
	return out
}

func fromLegRows(rows []legRow) []domain.Leg {
	out := make([]domain.Leg, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Leg{
			From:      domain.Place{Name: r.FromName, Coordinates: domain.Coordinates{Lat: r.FromLat, Lon: r.FromLon}},
			To:        domain.Place{Name: r.ToName, Coordinates: domain.Coordinates{Lat: r.ToLat, Lon: r.ToLon}},
			Miles:     r.Miles,
			DriveTime: time.Duration(r.DriveSecond) * time.Second,
		})
	}
	return out
}

func toViolationRows(vs []domain.Violation) []violationRow {
	out := make([]violationRow, 0, len(vs))
	for _, v := range vs {
		out = append(out, violationRow{Rule: string(v.Rule), SegmentIndex: v.SegmentIndex, Message: v.Message})
	}
	return out
}

func fromViolationRows(rows []violationRow) []domain.Violation {
	out := make([]domain.Violation, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Violation{Rule: domain.RuleID(r.Rule), SegmentIndex: r.SegmentIndex, Message: r.Message})
	}
	return out
}

func queuePoints(b *pgx.Batch, tripID uuid.UUID, points []domain.RoutePoint) {
	const q = `
		INSERT INTO route_points (
			trip_id, sequence, type, reason, name, lat, lon,
			duration_seconds, estimated_arrival, odometer)
		VALUES (
			@trip_id, @sequence, @type, @reason, @name, @lat, @lon,
			@duration_seconds, @estimated_arrival, @odometer)`

	for _, p := range points {
		b.Queue(q, pgx.NamedArgs{
			"trip_id":           tripID,
			"sequence":          p.Sequence,
			"type":              string(p.Type),
			"reason":            string(p.Reason),
			"name":              p.Place.Name,
			"lat":               p.Place.Lat,
			"lon":               p.Place.Lon,
			"duration_seconds":  seconds(p.Duration),
			"estimated_arrival": p.EstimatedArrival,
			"odometer":          p.Odometer,
		})
	}
}

func queueLogs(b *pgx.Batch, tripID uuid.UUID, logs []domain.ELDLog) error {
	const logQ = `
		INSERT INTO eld_logs (
			trip_id, log_date, total_miles,
			off_duty_seconds, sleeper_berth_seconds, driving_seconds, on_duty_seconds)
		VALUES (
			@trip_id, @log_date, @total_miles,
			@off_duty_seconds, @sleeper_berth_seconds, @driving_seconds, @on_duty_seconds)`

	const segQ = `
		INSERT INTO duty_segments (
			trip_id, log_date, position, status, start_at, end_at,
			location_name, lat, lon, end_location_name, end_lat, end_lon,
			start_odometer, end_odometer, note)
		VALUES (
			@trip_id, @log_date, @position, @status, @start_at, @end_at,
			@location_name, @lat, @lon, @end_location_name, @end_lat, @end_lon,
			@start_odometer, @end_odometer, @note)`

	for _, log := range logs {
		day, err := time.Parse(hos.LogDateLayout, log.Date)
		if err != nil {
			return fmt.Errorf("log date %q: %w", log.Date, err)
		}
		date := pgtype.Date{Time: day, Valid: true}

		b.Queue(logQ, pgx.NamedArgs{
			"trip_id":               tripID,
			"log_date":              date,
			"total_miles":           log.TotalMiles,
			"off_duty_seconds":      seconds(log.Totals.OffDuty),
			"sleeper_berth_seconds": seconds(log.Totals.SleeperBerth),
			"driving_seconds":       seconds(log.Totals.Driving),
			"on_duty_seconds":       seconds(log.Totals.OnDuty),
		})
		for i, s := range log.Segments {
			b.Queue(segQ, pgx.NamedArgs{
				"trip_id":           tripID,
				"log_date":          date,
				"position":          i,
				"status":            string(s.Status),
				"start_at":          s.Start,
				"end_at":            s.End,
				"location_name":     s.Location.Name,
				"lat":               s.Location.Lat,
				"lon":               s.Location.Lon,
				"end_location_name": s.EndLocation.Name,
				"end_lat":           s.EndLocation.Lat,
				"end_lon":           s.EndLocation.Lon,
				"start_odometer":    s.StartOdometer,
				"end_odometer":      s.EndOdometer,
				"note":              s.Note,
			})
		}
	}
	return nil
}

func (r *pgTripRepo) listPoints(ctx context.Context, tripID uuid.UUID) ([]domain.RoutePoint, error) {
	const q = `
		SELECT sequence, type, reason, name, lat, lon, duration_seconds, estimated_arrival, odometer
		FROM route_points
		WHERE trip_id = @trip_id
		ORDER BY sequence`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("route points: %w", err)
	}
	defer rows.Close()

	points := []domain.RoutePoint{}
	for rows.Next() {
		var (
			p        domain.RoutePoint
			typ, why string
			dur      int64
			arrival  time.Time
		)
		if err := rows.Scan(&p.Sequence, &typ, &why, &p.Place.Name, &p.Place.Lat, &p.Place.Lon, &dur, &arrival, &p.Odometer); err != nil {
			return nil, fmt.Errorf("route points: scan: %w", err)
		}
		p.Type = domain.PointType(typ)
		p.Reason = domain.RestReason(why)
		p.Duration = time.Duration(dur) * time.Second
		p.EstimatedArrival = arrival.UTC()
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("route points: rows: %w", err)
	}
	return points, nil
}

// listLogs loads the trip's daily logs with their segments in order.
func (r *pgTripRepo) listLogs(ctx context.Context, tripID uuid.UUID, driver domain.DriverInfo) ([]domain.ELDLog, error) {
	const logQ = `
		SELECT log_date, total_miles, off_duty_seconds, sleeper_berth_seconds, driving_seconds, on_duty_seconds
		FROM eld_logs
		WHERE trip_id = @trip_id
		ORDER BY log_date`

	rows, err := r.db.Query(ctx, logQ, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("eld logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.ELDLog{}
	index := map[string]int{}
	for rows.Next() {
		var (
			day                       pgtype.Date
			off, sleeper, drive, onDy int64
		)
		log := domain.ELDLog{Driver: driver}
		if err := rows.Scan(&day, &log.TotalMiles, &off, &sleeper, &drive, &onDy); err != nil {
			return nil, fmt.Errorf("eld logs: scan: %w", err)
		}
		log.Date = day.Time.Format(hos.LogDateLayout)
		log.Totals = domain.StatusTotals{
			OffDuty:      time.Duration(off) * time.Second,
			SleeperBerth: time.Duration(sleeper) * time.Second,
			Driving:      time.Duration(drive) * time.Second,
			OnDuty:       time.Duration(onDy) * time.Second,
		}
		index[log.Date] = len(logs)
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("eld logs: rows: %w", err)
	}
	rows.Close()

	const segQ = `
		SELECT log_date, status, start_at, end_at,
		       location_name, lat, lon, end_location_name, end_lat, end_lon,
		       start_odometer, end_odometer, note
		FROM duty_segments
		WHERE trip_id = @trip_id
		ORDER BY log_date, position`

	segRows, err := r.db.Query(ctx, segQ, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("duty segments: %w", err)
	}
	defer segRows.Close()

	for segRows.Next() {
		var (
			day        pgtype.Date
			status     string
			s          domain.DutySegment
			start, end time.Time
		)
		err := segRows.Scan(&day, &status, &start, &end,
			&s.Location.Name, &s.Location.Lat, &s.Location.Lon,
			&s.EndLocation.Name, &s.EndLocation.Lat, &s.EndLocation.Lon,
			&s.StartOdometer, &s.EndOdometer, &s.Note)
		if err != nil {
			return nil, fmt.Errorf("duty segments: scan: %w", err)
		}
		s.Status = domain.DutyStatus(status)
		s.Start, s.End = start.UTC(), end.UTC()

		i, ok := index[day.Time.Format(hos.LogDateLayout)]
		if !ok {
			return nil, fmt.Errorf("duty segments: orphan segment on %s", day.Time.Format(hos.LogDateLayout))
		}
		logs[i].Segments = append(logs[i].Segments, s)
	}
	if err := segRows.Err(); err != nil {
		return nil, fmt.Errorf("duty segments: rows: %w", err)
	}
	return logs, nil
}
