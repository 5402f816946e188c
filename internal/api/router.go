package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/fedex-carrier/docs"
	"github.com/99minutos/fedex-carrier/internal/api/handler"
	"github.com/99minutos/fedex-carrier/internal/api/middleware"
	"github.com/99minutos/fedex-carrier/internal/core/domain"
	"github.com/99minutos/fedex-carrier/internal/core/ports"
	"github.com/99minutos/fedex-carrier/internal/infrastructure/http/handlers"
)

// Dependencies are the collaborators the HTTP layer is wired to.
type Dependencies struct {
	Shipping     ports.ShippingService
	RefreshQueue handler.RefreshQueue
	HealthChecks map[string]handlers.Check
	JWTSecret    string
	Logger       zerolog.Logger
	// Registerer receives the HTTP request metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:                 "carrier",
		Subsystem:                 "http",
		Registerer:                registerer,
		DoNotUseRequestPathFor404: true,
	}))

	// --- Handlers ---
	shipmentHandler := handler.NewShipmentHandler(deps.Shipping)
	trackingHandler := handler.NewTrackingHandler(deps.Shipping, deps.RefreshQueue)
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.HealthChecks)

	// --- Operational routes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Carrier routes ---
	v1 := e.Group("/v1",
		middleware.Auth(deps.JWTSecret),
		middleware.RBAC(domain.RoleAdmin, domain.RoleClient),
	)
	v1.POST("/rates", shipmentHandler.Rates)
	v1.POST("/shipments", shipmentHandler.Create)
	v1.DELETE("/shipments/:tracking_number", shipmentHandler.Delete)
	v1.GET("/tracking/:tracking_number", trackingHandler.Get)
	v1.POST("/tracking/:tracking_number/refresh", trackingHandler.Refresh)

	return e
}

// requestLogger logs one structured line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
