package hos_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/hos"
)

var driver = domain.DriverInfo{DriverName: "Pat Doe", CarrierName: "Acme Freight", VehicleNumber: "T-100"}

func at(day, hour int) time.Time {
	return time.Date(2025, 6, day, hour, 0, 0, 0, time.UTC)
}

func TestGenerate_splitsSegmentAtMidnight(t *testing.T) {
	seg := domain.DutySegment{
		Status:      domain.StatusOffDuty,
		Start:       at(2, 22),
		End:         at(3, 2),
		Location:    dallas,
		EndLocation: dallas,
		Note:        "10-hour rest",
	}

	logs, err := hos.NewGenerator(hos.DefaultRules()).Generate(driver, []domain.DutySegment{seg})

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2025-06-02", logs[0].Date)
	assert.Equal(t, "2025-06-03", logs[1].Date)
	require.Len(t, logs[0].Segments, 1)
	require.Len(t, logs[1].Segments, 1)

	first, second := logs[0].Segments[0], logs[1].Segments[0]
	assert.Equal(t, domain.StatusOffDuty, first.Status)
	assert.Equal(t, domain.StatusOffDuty, second.Status)
	assert.Equal(t, at(3, 0), first.End)
	assert.Equal(t, at(3, 0), second.Start)
	assert.Equal(t, 2*time.Hour, logs[0].Totals.OffDuty)
	assert.Equal(t, 2*time.Hour, logs[1].Totals.OffDuty)
	assert.Equal(t, driver, logs[0].Driver)
}

func TestGenerate_interpolatesDrivingAcrossMidnight(t *testing.T) {
	seg := domain.DutySegment{
		Status:        domain.StatusDriving,
		Start:         at(2, 22),
		End:           at(3, 2),
		Location:      chicago,
		EndLocation:   dallas,
		StartOdometer: 0,
		EndOdometer:   200,
		Note:          "Driving to Dallas, TX",
	}

	logs, err := hos.NewGenerator(hos.DefaultRules()).Generate(driver, []domain.DutySegment{seg})

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 100.0, logs[0].TotalMiles)
	assert.Equal(t, 100.0, logs[1].TotalMiles)
	assert.Equal(t, 2*time.Hour, logs[0].Totals.Driving)

	mid := logs[0].Segments[0].EndLocation
	assert.Regexp(t, `^\d+ mi SW of Chicago, IL$`, mid.Name)
	assert.Equal(t, mid, logs[1].Segments[0].Location)
	assert.Equal(t, chicago, logs[0].Segments[0].Location)
	assert.Equal(t, dallas, logs[1].Segments[0].EndLocation)
	assert.Less(t, mid.Lat, chicago.Lat)
	assert.Greater(t, mid.Lat, dallas.Lat)
}

func TestGenerate_namesMidnightPointFromAKnownPlace(t *testing.T) {
	// The drive starts at a point already named relative to Chicago.
	start := domain.Place{
		Name:        "120 mi SW of Chicago, IL",
		Coordinates: domain.Coordinates{Lat: 40.6, Lon: -89.0},
	}
	seg := domain.DutySegment{
		Status:      domain.StatusDriving,
		Start:       at(2, 23),
		End:         at(3, 9),
		Location:    start,
		EndLocation: dallas,
		EndOdometer: 500,
		Note:        "Driving to Dallas, TX",
	}

	logs, err := hos.NewGenerator(hos.DefaultRules()).Generate(driver, []domain.DutySegment{seg})

	require.NoError(t, err)
	require.Len(t, logs, 2)
	mid := logs[1].Segments[0].Location
	assert.Regexp(t, `^\d+ mi [NSEW]{1,2} of Dallas, TX$`, mid.Name)
	assert.Equal(t, []domain.DutySegment{seg}, hos.Flatten(logs))
}

func TestGenerate_stationarySegmentKeepsItsName(t *testing.T) {
	seg := domain.DutySegment{
		Status: domain.StatusSleeperBerth, Start: at(2, 20), End: at(3, 6),
		Location: dallas, EndLocation: dallas, Note: "10-hour rest",
	}

	logs, err := hos.NewGenerator(hos.DefaultRules()).Generate(driver, []domain.DutySegment{seg})

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, dallas, logs[0].Segments[0].EndLocation)
	assert.Equal(t, dallas, logs[1].Segments[0].Location)
}

func TestGenerate_segmentEndingAtMidnightStaysInOneLog(t *testing.T) {
	seg := domain.DutySegment{
		Status: domain.StatusOnDuty, Start: at(2, 22), End: at(3, 0),
		Location: dallas, EndLocation: dallas,
	}

	logs, err := hos.NewGenerator(hos.DefaultRules()).Generate(driver, []domain.DutySegment{seg})

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 2*time.Hour, logs[0].Totals.OnDuty)
}

func TestGenerate_usesHomeTerminalTimeZone(t *testing.T) {
	rules := hos.DefaultRules()
	rules.Location = time.FixedZone("CST", -6*60*60)
	seg := domain.DutySegment{
		Status: domain.StatusSleeperBerth, Start: at(2, 4), End: at(2, 8),
		Location: dallas, EndLocation: dallas,
	}

	logs, err := hos.NewGenerator(rules).Generate(driver, []domain.DutySegment{seg})

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2025-06-01", logs[0].Date)
	assert.Equal(t, "2025-06-02", logs[1].Date)
	assert.True(t, logs[0].Segments[0].End.Equal(at(2, 6)))
	assert.Equal(t, 2*time.Hour, logs[0].Totals.SleeperBerth)
	assert.Equal(t, 2*time.Hour, logs[1].Totals.SleeperBerth)
}

func TestGenerate_rejectsBrokenTimelines(t *testing.T) {
	gen := hos.NewGenerator(hos.DefaultRules())

	t.Run("empty segment", func(t *testing.T) {
		_, err := gen.Generate(driver, []domain.DutySegment{
			{Status: domain.StatusOnDuty, Start: at(2, 6), End: at(2, 6)},
		})
		assert.ErrorIs(t, err, domain.ErrInvariant)
	})

	t.Run("overlapping segments", func(t *testing.T) {
		_, err := gen.Generate(driver, []domain.DutySegment{
			{Status: domain.StatusOnDuty, Start: at(2, 6), End: at(2, 8)},
			{Status: domain.StatusDriving, Start: at(2, 7), End: at(2, 9)},
		})
		assert.ErrorIs(t, err, domain.ErrInvariant)
	})

	t.Run("gap between segments", func(t *testing.T) {
		_, err := gen.Generate(driver, []domain.DutySegment{
			{Status: domain.StatusOnDuty, Start: at(2, 6), End: at(2, 8)},
			{Status: domain.StatusDriving, Start: at(3, 9), End: at(3, 10)},
		})
		var ie *domain.InvariantError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "segment order", ie.Check)
	})
}

func TestFlatten_restoresPlannedTimeline(t *testing.T) {
	rules := hos.DefaultRules()
	for _, used := range []float64{0, 65} {
		_, segments := plan(t, rules, metrics(h(6), h(48)), hos.NewCycleState(used))

		logs, err := hos.NewGenerator(rules).Generate(driver, segments)
		require.NoError(t, err)
		require.Greater(t, len(logs), 2)

		assert.Equal(t, segments, hos.Flatten(logs))

		// Every day strictly between the first and last is fully accounted for.
		for _, log := range logs[1 : len(logs)-1] {
			tot := log.Totals
			assert.Equal(t, 24*time.Hour, tot.OffDuty+tot.SleeperBerth+tot.Driving+tot.OnDuty, log.Date)
		}

		var miles float64
		for _, log := range logs {
			miles += log.TotalMiles
		}
		assert.InDelta(t, 54*50, miles, 0.1*float64(len(logs)))
	}
}
