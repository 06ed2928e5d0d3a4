package models

import "time"

// ErrorResponse is the uniform body written for every failed request.
// Details is populated only outside production.
type ErrorResponse struct {
	Timestamp        time.Time           `json:"timestamp"`
	StatusCode       int                 `json:"statusCode"`
	ErrorCode        string              `json:"errorCode"`
	Message          string              `json:"message"`
	Details          string              `json:"details,omitempty"`
	Path             string              `json:"path"`
	RequestId        string              `json:"requestId,omitempty"`
	ValidationErrors map[string][]string `json:"validationErrors,omitempty"`
}
