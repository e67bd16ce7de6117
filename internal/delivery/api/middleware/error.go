package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"tutoria/internal/delivery/api/response"
	deliverycontext "tutoria/internal/delivery/context"
	domainerrors "tutoria/internal/domain/errors"
	"tutoria/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// rendered is what ends up in the envelope.
type rendered struct {
	status     int
	message    string
	aiEnvelope bool
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	out := m.render(err, c)
	if out.aiEnvelope {
		_ = response.AIError(c, out.status, out.message)

		return
	}

	_ = response.Error(c, out.status, out.message)
}

func (m *ErrorMiddleware) render(err error, c echo.Context) rendered {
	path := c.Request().URL.Path
	aiArea := response.IsAIPath(path)

	// Attempt to parse as AppError
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed",
				slog.String("kind", appErr.Kind().String()),
				slog.String("code", appErr.ErrorCode()),
				slog.String("details", appErr.Details()),
				slog.Any("error", err),
				slog.String("path", path),
			)
		}

		return rendered{status: appErr.HTTPCode(), message: appErr.Message(), aiEnvelope: aiArea}
	}

	// Check if it is an Echo HTTPError
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		switch httpErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return rendered{
				status:     http.StatusNotFound,
				message:    fmt.Sprintf("%s: %s", domainerrors.ErrRouteNotFound.Message(), path),
				aiEnvelope: true,
			}
		case http.StatusRequestEntityTooLarge:
			return rendered{status: http.StatusBadRequest, message: domainerrors.ErrUploadTooLarge.Message(), aiEnvelope: aiArea}
		case http.StatusBadRequest, http.StatusUnsupportedMediaType:
			return rendered{status: http.StatusBadRequest, message: domainerrors.ErrInvalidJSON.Message(), aiEnvelope: aiArea}
		case http.StatusUnauthorized:
			return rendered{status: http.StatusUnauthorized, message: domainerrors.ErrUnauthenticated.Message()}
		}
	}

	// The client went away mid-request; nobody reads this response.
	if errors.Is(err, context.Canceled) {
		m.log(c).Debug("Request cancelled", slog.Any("error", err), slog.String("path", path))

		return rendered{
			status:     http.StatusInternalServerError,
			message:    domainerrors.ErrInternalError.Message(),
			aiEnvelope: aiArea,
		}
	}

	// Default to internal error, log the error but return a generic message
	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", path),
		slog.String("method", c.Request().Method),
	)

	return rendered{
		status:     http.StatusInternalServerError,
		message:    domainerrors.ErrInternalError.Message(),
		aiEnvelope: aiArea,
	}
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(c.Request().Context(), m.logger)
}
