package models

// Health is the GET /health payload: backend status plus the sensor
// connection state and the indicator-light state driven by it.
type Health struct {
	Status         string       `json:"status"`
	PicoBaseURL    string       `json:"picoBaseUrl,omitempty"`
	PollIntervalMs int          `json:"pollIntervalMs"`
	Timestamp      string       `json:"timestamp"`
	Sensor         SensorHealth `json:"sensor"`
	LED            LEDHealth    `json:"led"`
}

type SensorHealth struct {
	Connected       bool   `json:"connected"`
	Status          string `json:"status"`
	Message         string `json:"message"`
	LastReadingTime string `json:"lastReadingTime,omitempty"`
}

type LEDHealth struct {
	Color   string `json:"color"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
