package models

// User verification states owned by the auth backend
const (
	UserVerified = "Verified"
	UserPending  = "Pending Verification"
	UserRejected = "Rejected"
)

// User is an account record from the auth backend. Read-only here; status
// transitions are requested via PUT /users/{id}/status and validated
// server-side.
type User struct {
	ID           string `json:"_id"` // Mongo-style key, not "id"
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	ProfileImage string `json:"profileImage"`
	Status       string `json:"status"`
}

// LoginRequest is the POST /auth/login body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token plus the authenticated user
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest is the POST /auth/register body
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserStatusRequest is the PUT /users/{id}/status body
type UpdateUserStatusRequest struct {
	Status string `json:"status"`
}
