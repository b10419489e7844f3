package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"floodwatch-cli/internal/errors"
	"floodwatch-cli/internal/stats"
	"floodwatch-cli/pkg/models"
)

func TestGetDashboardStats(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"totals": {"logs": 12, "pinnedAreas": 3, "sensorReadings": 40},
			"logTypes": {"sensor": 8, "userAction": 3, "systemEvent": 1},
			"recent": {"logsLast24h": 5, "latestSensorReading": {"id":"r9","distance":40.1,"timestamp":"2026-08-30T12:00:00Z","source":"pico"}},
			"sensorStatus": {"status":"online","message":"sensor is reporting normally","isGood":true},
			"recentActivity": []
		}`))
	}), nil)

	result, err := c.GetDashboardStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 12, result.Totals.Logs)
	assert.Equal(t, models.SensorOnline, result.SensorStatus.Status)
	assert.NotNil(t, result.Recent.LatestSensorReading)
}

// composeBackend serves the three raw collections the fallback aggregation
// joins over.
func composeBackend(t *testing.T, now time.Time) http.Handler {
	t.Helper()
	ts := now.Add(-2 * time.Second).UTC().Format(time.RFC3339Nano)

	mux := http.NewServeMux()
	mux.HandleFunc("/logs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"logs":[
			{"id":"l1","type":"sensor","timestamp":"` + ts + `"},
			{"id":"l2","type":"user_action","timestamp":"` + ts + `"}
		],"pagination":{"total":2,"limit":50,"offset":0,"hasMore":false}}`))
	})
	mux.HandleFunc("/pinned-areas", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"a1","latitude":14.59,"longitude":120.98,"timestamp":"` + ts + `"}]`))
	})
	mux.HandleFunc("/sensor-readings", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"readings":[
			{"id":"r1","distance":41.5,"timestamp":"` + ts + `","source":"pico"}
		],"pagination":{"total":1,"limit":50,"offset":0,"hasMore":false}}`))
	})
	return mux
}

func TestComposeDashboardStats(t *testing.T) {
	now := time.Now()
	c := newTestClient(t, composeBackend(t, now), nil)

	result, err := c.ComposeDashboardStats(context.Background(), stats.DefaultThresholds(5*time.Second))

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Totals.Logs)
	assert.Equal(t, 1, result.Totals.PinnedAreas)
	assert.Equal(t, 1, result.Totals.SensorReadings)
	assert.Equal(t, 1, result.LogTypes.Sensor)
	assert.Equal(t, 1, result.LogTypes.UserAction)
	assert.Equal(t, 2, result.Recent.LogsLast24h)
	if assert.NotNil(t, result.Recent.LatestSensorReading) {
		assert.Equal(t, "r1", result.Recent.LatestSensorReading.ID)
	}
	assert.Equal(t, models.SensorOnline, result.SensorStatus.Status)
	assert.Len(t, result.RecentActivity, 2)
}

func TestComposeDashboardStatsPropagatesFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/logs", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "db down", http.StatusInternalServerError)
	})
	mux.HandleFunc("/pinned-areas", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/sensor-readings", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"readings":[],"pagination":{"total":0,"limit":50,"offset":0,"hasMore":false}}`))
	})
	c := newTestClient(t, mux, nil)

	_, err := c.ComposeDashboardStats(context.Background(), stats.DefaultThresholds(5*time.Second))

	assert.Error(t, err)
	assert.True(t, errors.IsTransport(err))
}
