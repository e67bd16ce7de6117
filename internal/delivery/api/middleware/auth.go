package middleware

import (
	"log/slog"
	"strings"

	"tutoria/internal/delivery/api/response"
	deliverycontext "tutoria/internal/delivery/context"
	domainerrors "tutoria/internal/domain/errors"
	"tutoria/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// RouteGate is the single authentication decision point. It runs once per request,
// after CORS and before routing.
type RouteGate struct {
	policy  RoutePolicy
	tokens  service.TokenService
	metrics service.MetricsRecorder
	logger  *slog.Logger
}

// NewRouteGate creates the gate with the default policy.
func NewRouteGate(tokens service.TokenService, metrics service.MetricsRecorder, logger *slog.Logger) *RouteGate {
	return NewRouteGateWithPolicy(DefaultRoutePolicy(), tokens, metrics, logger)
}

func NewRouteGateWithPolicy(
	policy RoutePolicy,
	tokens service.TokenService,
	metrics service.MetricsRecorder,
	logger *slog.Logger,
) *RouteGate {
	return &RouteGate{
		policy:  policy,
		tokens:  tokens,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle allows or rejects the request. On success the identity is attached to the echo
// context and to the request context, and the request logger gains a user_id attribute.
func (g *RouteGate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if g.policy.Classify(req.Method, req.URL.Path) != DecisionProtected {
			return next(c)
		}

		token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), bearerPrefix)
		if !ok {
			return g.reject(c, "missing_token", domainerrors.ErrTokenNotProvided, nil)
		}

		identity, err := g.tokens.Verify(token)
		if err != nil {
			return g.reject(c, "invalid_token", domainerrors.ErrUnauthenticated, err)
		}

		deliverycontext.SetIdentity(c, identity)

		ctx := c.Request().Context()
		logger := deliverycontext.LoggerFrom(ctx, g.logger).With(slog.Int64("user_id", identity.UserID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// reject answers 401 directly. Gate rejections always use the {"error"} envelope.
func (g *RouteGate) reject(c echo.Context, reason string, appErr domainerrors.AppError, cause error) error {
	g.metrics.IncGateRejection(reason)

	attrs := []any{
		slog.String("reason", reason),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
	}
	if cause != nil {
		attrs = append(attrs, slog.Any("error", cause))
	}
	deliverycontext.LoggerFrom(c.Request().Context(), g.logger).Debug("Request rejected by route gate", attrs...)

	return response.Error(c, appErr.HTTPCode(), appErr.Message())
}
