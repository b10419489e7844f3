package stats

import (
	"sort"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"floodwatch-cli/pkg/models"
)

// RecentActivityLimit caps the recentActivity window of the dashboard.
const RecentActivityLimit = 10

// Aggregate composes raw backend collections into the DashboardStats
// view-model. Total by construction: nil or empty inputs produce zero counts
// and an offline sensor, absent optional fields degrade to zero/null, and an
// unknown log type is dropped with a warning rather than faulting.
func Aggregate(logs []models.Log, areas []models.PinnedLocation, readings []models.SensorReading, now time.Time, t Thresholds) models.DashboardStats {
	out := models.DashboardStats{
		Totals: models.StatsTotals{
			Logs:           len(logs),
			PinnedAreas:    len(areas),
			SensorReadings: len(readings),
		},
	}

	dayAgo := now.Add(-24 * time.Hour)
	for _, l := range logs {
		switch l.Type {
		case models.LogTypeSensor:
			out.LogTypes.Sensor++
		case models.LogTypeUserAction:
			out.LogTypes.UserAction++
		case models.LogTypeSystemEvent:
			out.LogTypes.SystemEvent++
		default:
			nuts.L.Warnf("[stats] dropping log %s with unknown type %q", l.ID, l.Type)
		}

		if ts, ok := parseTime(l.Timestamp); ok && !ts.Before(dayAgo) {
			out.Recent.LogsLast24h++
		}
	}

	out.Recent.LatestSensorReading = latestReading(readings)
	out.SensorStatus = DeriveStatus(out.Recent.LatestSensorReading, now, t)
	out.RecentActivity = recentActivity(logs)

	return out
}

// latestReading picks the reading with the maximum parseable timestamp, or
// nil when the stream is empty or nothing parses.
func latestReading(readings []models.SensorReading) *models.SensorReading {
	var latest *models.SensorReading
	var latestAt time.Time

	for i := range readings {
		ts, ok := parseTime(readings[i].Timestamp)
		if !ok {
			continue
		}
		if latest == nil || ts.After(latestAt) {
			latest = &readings[i]
			latestAt = ts
		}
	}

	return latest
}

// recentActivity returns the newest logs, descending by timestamp with ties
// broken by id ascending so the ordering is deterministic for any input
// permutation. Logs with unreadable timestamps sort oldest.
func recentActivity(logs []models.Log) []models.Log {
	sorted := make([]models.Log, len(logs))
	copy(sorted, logs)

	sort.Slice(sorted, func(i, j int) bool {
		ti, _ := parseTime(sorted[i].Timestamp)
		tj, _ := parseTime(sorted[j].Timestamp)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return sorted[i].ID < sorted[j].ID
	})

	if len(sorted) > RecentActivityLimit {
		sorted = sorted[:RecentActivityLimit]
	}
	return sorted
}
