package models

// Sensor status classifications
const (
	SensorOnline  = "online"
	SensorOffline = "offline"
	SensorStale   = "stale"
	SensorError   = "error"
)

// SensorStatus is the derived health classification of the flood sensor.
// It is recomputed on every aggregation; staleness depends on wall-clock time
// so a cached value would be wrong the moment it was stored.
type SensorStatus struct {
	Status          string `json:"status"`
	Message         string `json:"message"`
	IsGood          bool   `json:"isGood"`
	LastReadingTime string `json:"lastReadingTime,omitempty"`
}

// DashboardStats is the composed dashboard view-model. The backend computes an
// identical shape at GET /dashboard/stats; the client-side aggregator produces
// it from the raw collections when that endpoint is unavailable.
type DashboardStats struct {
	Totals         StatsTotals   `json:"totals"`
	LogTypes       StatsLogTypes `json:"logTypes"`
	Recent         StatsRecent   `json:"recent"`
	SensorStatus   SensorStatus  `json:"sensorStatus"`
	RecentActivity []Log         `json:"recentActivity"`
}

type StatsTotals struct {
	Logs           int `json:"logs"`
	PinnedAreas    int `json:"pinnedAreas"`
	SensorReadings int `json:"sensorReadings"`
}

type StatsLogTypes struct {
	Sensor      int `json:"sensor"`
	UserAction  int `json:"userAction"`
	SystemEvent int `json:"systemEvent"`
}

type StatsRecent struct {
	LogsLast24h         int            `json:"logsLast24h"`
	LatestSensorReading *SensorReading `json:"latestSensorReading"`
}
