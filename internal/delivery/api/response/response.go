package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the body of informational responses
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"` // Field-level context, only for 4xx errors
}

// JobResponse acknowledges a queued dispatch
type JobResponse struct {
	Message string `json:"message"`
	JobID   string `json:"job_id"`
}

// Success writes data as the JSON body
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes a {"message": ...} body
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Error writes a {"error": ..., "details": ...} body
func Error(c echo.Context, statusCode int, message, details string) error {
	// Details are never exposed for server errors or authentication failures
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// MethodNotAllowed writes the 405 body
func MethodNotAllowed(c echo.Context) error {
	return Error(c, http.StatusMethodNotAllowed, "Method not allowed", "")
}
