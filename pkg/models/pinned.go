package models

// PinnedLocation is a user-pinned geographic area of interest.
type PinnedLocation struct {
	ID        string   `json:"id"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Address   string   `json:"address,omitempty"`
	Timestamp string   `json:"timestamp"`
	UserID    string   `json:"userId,omitempty"`
}

// CreatePinnedAreaRequest is the POST /pinned-areas body.
// Latitude/Longitude are pointers so that absent and zero are distinguishable:
// (0, 0) is a valid coordinate, a missing field is a validation error.
type CreatePinnedAreaRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address,omitempty"`
	UserID    string   `json:"userId,omitempty"`
}
