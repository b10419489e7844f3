package stats

import (
	"fmt"
	"time"

	"floodwatch-cli/pkg/models"
)

// Thresholds tune the health classification relative to the sensor's poll
// interval. Multipliers are deployment configuration: a sensor polled every
// 5s and one polled every 5min need the same relative policy, not the same
// absolute cutoffs.
type Thresholds struct {
	PollInterval      time.Duration
	StaleMultiplier   int
	OfflineMultiplier int
}

// DefaultThresholds returns the standard x2 stale / x10 offline policy.
func DefaultThresholds(pollInterval time.Duration) Thresholds {
	return Thresholds{
		PollInterval:      pollInterval,
		StaleMultiplier:   2,
		OfflineMultiplier: 10,
	}
}

// The ultrasonic sensor reports 9999 when the echo never returns.
const distanceSentinel = 9999

// readingValid reports whether the payload is readable and in range. A
// negative or sentinel distance means the sensor answered but the
// measurement is garbage.
func readingValid(r *models.SensorReading) bool {
	if r == nil || r.Distance == nil {
		return true
	}
	d := *r.Distance
	return d >= 0 && d < distanceSentinel
}

// parseTime reads the backend's ISO-8601 timestamps.
func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DeriveStatus classifies the sensor's health from its most recent reading.
// Pure: the same reading, clock, and thresholds always produce the same
// status, which is why the result is never cached across calls.
//
// Age-based policy: age <= poll*stale is online, age <= poll*offline is
// stale, older is offline. A readable-but-invalid payload is error
// regardless of age.
func DeriveStatus(last *models.SensorReading, now time.Time, t Thresholds) models.SensorStatus {
	if last == nil {
		return models.SensorStatus{
			Status:  models.SensorOffline,
			Message: "no readings received",
			IsGood:  false,
		}
	}

	if !readingValid(last) {
		return models.SensorStatus{
			Status:          models.SensorError,
			Message:         "last reading is out of range",
			IsGood:          false,
			LastReadingTime: last.Timestamp,
		}
	}

	readAt, ok := parseTime(last.Timestamp)
	if !ok {
		// Unreadable timestamp degrades to "never heard from it".
		return models.SensorStatus{
			Status:  models.SensorOffline,
			Message: "no readings received",
			IsGood:  false,
		}
	}

	age := now.Sub(readAt)
	staleAfter := t.PollInterval * time.Duration(t.StaleMultiplier)
	offlineAfter := t.PollInterval * time.Duration(t.OfflineMultiplier)

	switch {
	case age <= staleAfter:
		return models.SensorStatus{
			Status:          models.SensorOnline,
			Message:         "sensor is reporting normally",
			IsGood:          true,
			LastReadingTime: last.Timestamp,
		}
	case age <= offlineAfter:
		return models.SensorStatus{
			Status:          models.SensorStale,
			Message:         fmt.Sprintf("last reading %s ago", age.Round(time.Second)),
			IsGood:          false,
			LastReadingTime: last.Timestamp,
		}
	default:
		return models.SensorStatus{
			Status:          models.SensorOffline,
			Message:         fmt.Sprintf("no data for %s", age.Round(time.Second)),
			IsGood:          false,
			LastReadingTime: last.Timestamp,
		}
	}
}
