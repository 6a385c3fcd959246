package utils

import (
	"fmt"
	"net/http"
)

// CustomError is an error that already knows its HTTP status
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	// Type labels the failure kind of server-side errors
	Type string `json:"type,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func NewBadRequestError(message string) *CustomError {
	return &CustomError{Code: http.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *CustomError {
	return &CustomError{Code: http.StatusUnauthorized, Message: message}
}

func NewMethodNotAllowedError(message string) *CustomError {
	return &CustomError{Code: http.StatusMethodNotAllowed, Message: message}
}

func NewRequestTooLargeError(message string) *CustomError {
	return &CustomError{Code: http.StatusRequestEntityTooLarge, Message: message}
}

func NewInternalServerError(message, kind string) *CustomError {
	return &CustomError{Code: http.StatusInternalServerError, Message: message, Type: kind}
}
