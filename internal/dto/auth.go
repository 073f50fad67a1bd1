package dto

// AuthRequest is the JSON body for POST /auth. A single endpoint covers the
// availability check, login and registration; Action selects the mode.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Action   string `json:"action"`
}

// CheckResponse is returned for action=check.
type CheckResponse struct {
	Success bool `json:"success"`
	Taken   bool `json:"taken"`
}

// MessageResponse is the generic success acknowledgment.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the failure payload shared by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
