// File: internal/api/error_response.go
package api

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Message string `json:"message"`
}
