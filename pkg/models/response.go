package models

import (
	"encoding/json"
	"time"
)

// Usage reports token counts and the derived cost of one provider call
type Usage struct {
	InputTokens   int64   `json:"inputTokens"`
	OutputTokens  int64   `json:"outputTokens"`
	TotalCost     float64 `json:"totalCost"`
	FormattedCost string  `json:"formattedCost"`
}

// TailorResponse is the success envelope of the tailor endpoint
type TailorResponse struct {
	Success bool            `json:"success"`
	Content json.RawMessage `json:"content"`
	Usage   Usage           `json:"usage"`
}

// ErrorResponse is the single error body shape used by every endpoint
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Type    string `json:"type,omitempty"`
}

// NewErrorResponse builds an error body; kind is optional
func NewErrorResponse(message string, kind ...string) ErrorResponse {
	resp := ErrorResponse{Success: false, Error: message}
	if len(kind) > 0 {
		resp.Type = kind[0]
	}
	return resp
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}
