package dto

// ErrorResponse carries a short machine-readable failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges a mutation without returning data.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// StatusResponse reports service health.
type StatusResponse struct {
	Status string `json:"status"`
}
