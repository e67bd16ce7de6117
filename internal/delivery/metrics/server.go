// Package metrics serves the Prometheus registry on its own listener.
package metrics

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"tutoria/config"
	"tutoria/internal/delivery"
	"tutoria/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type metricsServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the metrics server
type ServerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
}

// NewServer creates the metrics listener. When metrics are disabled, Serve returns at once.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &metricsServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params.Cfg, params.Registry),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho exposes the registry at the configured path.
func NewEcho(cfg *config.Config, registry *prometheus.Registry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	if enabled(cfg) {
		handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
		e.GET(cfg.Metrics.Path, echo.WrapHandler(handler))
	}

	return e
}

func enabled(cfg *config.Config) bool {
	return cfg.Metrics != nil && cfg.Metrics.Enabled
}

// Serve starts the metrics HTTP server
func (s *metricsServer) Serve(ctx context.Context) error {
	if !enabled(s.cfg) {
		s.logger.Info("Metrics listener disabled")

		return nil
	}

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Metrics.Port))
	s.logger.Info("Starting metrics HTTP server",
		slog.String("host_port", hostPort),
		slog.String("path", s.cfg.Metrics.Path),
	)
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the metrics server
func (s *metricsServer) stop(ctx context.Context) error {
	if !enabled(s.cfg) {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down metrics HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
