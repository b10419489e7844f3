package models

// Log type values as stored by the backend
const (
	LogTypeSensor      = "sensor"
	LogTypeUserAction  = "user_action"
	LogTypeSystemEvent = "system_event"
)

// LogListResponse wraps the GET /logs envelope
type LogListResponse struct {
	Logs       []Log      `json:"logs"`
	Pagination Pagination `json:"pagination"`
}

// Log is a single backend log entry. Data is schema-less; its shape
// depends on Type, so it is kept opaque rather than decoded further.
type Log struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp string         `json:"timestamp"` // ISO-8601
	Source    string         `json:"source,omitempty"`
}

// ClearLogsResponse wraps the DELETE /logs result
type ClearLogsResponse struct {
	Message      string `json:"message"`
	DeletedCount int    `json:"deletedCount"`
}
