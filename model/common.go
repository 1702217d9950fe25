package model

// Common Response structure for service-level endpoints
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Sentinance Backend is running."`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DefaultResponse is a generic wrapper for Huma responses
type DefaultResponse struct {
	Body Response
}
