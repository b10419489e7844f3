package models

// SensorReadingListResponse wraps the GET /sensor-readings envelope
type SensorReadingListResponse struct {
	Readings   []SensorReading `json:"readings"`
	Pagination Pagination      `json:"pagination"`
}

// SensorReading is one ultrasonic distance measurement from the flood sensor.
// Numeric fields are pointers because the backend sends null for "not measured".
type SensorReading struct {
	ID              string   `json:"id"`
	Distance        *float64 `json:"distance"`
	DistanceFt      *float64 `json:"distance_ft"`
	WaterLevelCm    *float64 `json:"water_level_cm"`
	WaterLevelFt    *float64 `json:"water_level_ft"`
	Timestamp       string   `json:"timestamp"`
	Source          string   `json:"source"`
	ServerTimestamp string   `json:"server_timestamp,omitempty"`
}
