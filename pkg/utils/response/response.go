// Package response contains response utility functions and types
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error types used across the API
const (
	ErrorTypeInput          = "InputException"
	ErrorTypeAuthentication = "AuthenticationException"
	ErrorTypeAuthorization  = "AuthorizationException"
	ErrorTypeNotFound       = "NotFoundException"
	ErrorTypeConflict       = "ConflictException"
	ErrorTypeServer         = "ServerException"
)

// Response represents the standard API response structure
type Response struct {
	Status    string            `json:"status"`
	Data      interface{}       `json:"data,omitempty"`
	ErrorType string            `json:"error_type,omitempty"`
	Message   string            `json:"message,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// SuccessResponse sends a successful JSON response
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Status: "success",
		Data:   data,
	})
}

// CreatedResponse sends a successful JSON response with a 201 status
func CreatedResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Status: "success",
		Data:   data,
	})
}

// NoContentResponse sends an empty 204 response
func NoContentResponse(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// ErrorResponse sends an error JSON response
func ErrorResponse(c echo.Context, httpStatus int, errorType, message string) error {
	return c.JSON(httpStatus, Response{
		Status:    "error",
		ErrorType: errorType,
		Message:   message,
	})
}

// ValidationErrorResponse sends a 400 error response carrying per-field details
func ValidationErrorResponse(c echo.Context, message string, fields map[string]string) error {
	return c.JSON(http.StatusBadRequest, Response{
		Status:    "error",
		ErrorType: ErrorTypeInput,
		Message:   message,
		Fields:    fields,
	})
}
