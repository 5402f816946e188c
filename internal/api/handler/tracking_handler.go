package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/fedex-carrier/internal/core/ports"
	"github.com/99minutos/fedex-carrier/internal/infrastructure/queue"
)

// RefreshQueue is the interface the handler uses to schedule tracking refreshes.
type RefreshQueue interface {
	Enqueue(job ports.TrackInput) error
}

// TrackingHandler serves tracking lookups and schedules refreshes.
type TrackingHandler struct {
	service ports.ShippingService
	queue   RefreshQueue
}

// NewTrackingHandler creates a TrackingHandler backed by the given service and queue.
func NewTrackingHandler(service ports.ShippingService, q RefreshQueue) *TrackingHandler {
	return &TrackingHandler{service: service, queue: q}
}

// Get handles GET /v1/tracking/:tracking_number.
//
// @Summary      Look up the scan history of a shipment
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number          path      string  true   "Tracking number"
// @Param        package_identifier_type  query     string  false  "TRACKING_NUMBER_OR_DOORTAG (default)"
// @Param        test                     query     bool    false  "Use the carrier test endpoint"
// @Success      200                      {object}  trackingResponse
// @Failure      401                      {object}  errorResponse
// @Failure      422                      {object}  errorResponse
// @Failure      502                      {object}  errorResponse
// @Router       /v1/tracking/{tracking_number} [get]
func (h *TrackingHandler) Get(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	q, err := bindTrackingQuery(c)
	if err != nil {
		return err
	}

	trackingNumber := c.Param("tracking_number")
	resp, err := h.service.Track(c.Request().Context(), toTrackInput(trackingNumber, q))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTrackingResponse(trackingNumber, resp))
}

// Refresh handles POST /v1/tracking/:tracking_number/refresh: queues a refresh
// of the stored scan history and returns 202.
//
// @Summary      Queue a tracking refresh
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path      string  true  "Tracking number"
// @Success      202              {object}  acceptedResponse
// @Failure      401              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      503              {object}  errorResponse
// @Router       /v1/tracking/{tracking_number}/refresh [post]
func (h *TrackingHandler) Refresh(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	q, err := bindTrackingQuery(c)
	if err != nil {
		return err
	}

	trackingNumber := c.Param("tracking_number")
	if err := h.queue.Enqueue(toTrackInput(trackingNumber, q)); err != nil {
		if errors.Is(err, queue.ErrQueueFull) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "refresh queue full, retry later")
		}
		return err
	}
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message:        "refresh queued",
		TrackingNumber: trackingNumber,
	})
}

func bindTrackingQuery(c echo.Context) (trackingQuery, error) {
	var q trackingQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return q, echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return q, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return q, nil
}
