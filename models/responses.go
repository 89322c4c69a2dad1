package models

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UpdateDriverResponse is returned by a successful update.
type UpdateDriverResponse struct {
	Message       string `json:"message"`
	UpdatedDriver Driver `json:"updatedDriver"`
}

// MessageResponse carries a human-readable outcome, e.g. after a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by the token issuance endpoint.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
