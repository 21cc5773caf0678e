package models

// ErrorResponse is the JSON body of every error answer.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the JSON body of the health endpoints.
type HealthResponse struct {
	Status string `json:"status"`
}
