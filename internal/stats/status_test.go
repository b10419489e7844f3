package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"floodwatch-cli/pkg/models"
)

func reading(id string, ts time.Time, distance *float64) *models.SensorReading {
	return &models.SensorReading{
		ID:        id,
		Distance:  distance,
		Timestamp: ts.UTC().Format(time.RFC3339Nano),
		Source:    "pico",
	}
}

func f(v float64) *float64 { return &v }

func TestDeriveStatusNoReading(t *testing.T) {
	th := DefaultThresholds(5 * time.Second)

	for _, now := range []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC),
		time.Unix(0, 0),
	} {
		st := DeriveStatus(nil, now, th)
		assert.Equal(t, models.SensorOffline, st.Status)
		assert.Equal(t, "no readings received", st.Message)
		assert.False(t, st.IsGood)
		assert.Empty(t, st.LastReadingTime)
	}
}

func TestDeriveStatusAgeBands(t *testing.T) {
	th := DefaultThresholds(5 * time.Second)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		age    time.Duration
		status string
		isGood bool
	}{
		{"zero age", 0, models.SensorOnline, true},
		{"within poll interval", 4 * time.Second, models.SensorOnline, true},
		{"at stale boundary", 10 * time.Second, models.SensorOnline, true},
		{"just past stale boundary", 11 * time.Second, models.SensorStale, false},
		{"mid stale band", 30 * time.Second, models.SensorStale, false},
		{"at offline boundary", 50 * time.Second, models.SensorStale, false},
		{"past offline boundary", 60 * time.Second, models.SensorOffline, false},
		{"hours old", 3 * time.Hour, models.SensorOffline, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := reading("r1", now.Add(-tc.age), f(42))
			st := DeriveStatus(r, now, th)
			assert.Equal(t, tc.status, st.Status)
			assert.Equal(t, tc.isGood, st.IsGood)
			assert.Equal(t, r.Timestamp, st.LastReadingTime)
		})
	}
}

func TestDeriveStatusStaleMessageIncludesAge(t *testing.T) {
	th := DefaultThresholds(5 * time.Second)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	st := DeriveStatus(reading("r1", now.Add(-30*time.Second), f(42)), now, th)
	assert.Equal(t, models.SensorStale, st.Status)
	assert.Contains(t, st.Message, "30s")
}

func TestDeriveStatusErrorTakesPrecedenceOverAge(t *testing.T) {
	th := DefaultThresholds(5 * time.Second)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// Fresh but out of range: still an error.
	st := DeriveStatus(reading("r1", now, f(9999)), now, th)
	assert.Equal(t, models.SensorError, st.Status)
	assert.False(t, st.IsGood)

	// Negative distance is equally invalid.
	st = DeriveStatus(reading("r2", now, f(-1)), now, th)
	assert.Equal(t, models.SensorError, st.Status)

	// Ancient and invalid: error still wins over offline.
	st = DeriveStatus(reading("r3", now.Add(-2*time.Hour), f(9999)), now, th)
	assert.Equal(t, models.SensorError, st.Status)
}

func TestDeriveStatusNilDistanceIsNotAnError(t *testing.T) {
	th := DefaultThresholds(5 * time.Second)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// null means "not measured", which is fine; only out-of-range is an error.
	st := DeriveStatus(reading("r1", now, nil), now, th)
	assert.Equal(t, models.SensorOnline, st.Status)
}

func TestDeriveStatusUnreadableTimestamp(t *testing.T) {
	th := DefaultThresholds(5 * time.Second)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	st := DeriveStatus(&models.SensorReading{ID: "r1", Timestamp: "yesterday-ish"}, now, th)
	assert.Equal(t, models.SensorOffline, st.Status)
	assert.Equal(t, "no readings received", st.Message)
}

func TestDeriveStatusCustomMultipliers(t *testing.T) {
	// A deployment polling every minute with tighter multipliers.
	th := Thresholds{
		PollInterval:      time.Minute,
		StaleMultiplier:   1,
		OfflineMultiplier: 3,
	}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, models.SensorOnline, DeriveStatus(reading("r", now.Add(-50*time.Second), nil), now, th).Status)
	assert.Equal(t, models.SensorStale, DeriveStatus(reading("r", now.Add(-2*time.Minute), nil), now, th).Status)
	assert.Equal(t, models.SensorOffline, DeriveStatus(reading("r", now.Add(-4*time.Minute), nil), now, th).Status)
}
