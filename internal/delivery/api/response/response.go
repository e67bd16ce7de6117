// Package response renders the two JSON envelopes used by the HTTP API.
package response

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// AIPathPrefix marks the study endpoints, which use the {"erro","timestamp"} envelope.
const AIPathPrefix = "/api/"

// AIErrorResponse is the error envelope of the study endpoints and of unknown routes.
type AIErrorResponse struct {
	Erro      string `json:"erro"`
	Timestamp int64  `json:"timestamp"` // Unix epoch in milliseconds
}

// ErrorResponse is the error envelope of the route gate and the account endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

// now is replaced in tests to freeze timestamps.
var now = time.Now

// Success writes data as the response body without any wrapper.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 response.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Message writes a 200 {"mensagem"} response.
func Message(c echo.Context, message string) error {
	return OK(c, MessageResponse{Mensagem: message})
}

// Error writes the {"error"} envelope.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// AIError writes the {"erro","timestamp"} envelope.
func AIError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, AIErrorResponse{
		Erro:      message,
		Timestamp: now().UnixMilli(),
	})
}

// IsAIPath reports whether the path belongs to the study endpoints.
func IsAIPath(path string) bool {
	return strings.HasPrefix(path, AIPathPrefix)
}
