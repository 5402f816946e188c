package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
	"github.com/99minutos/fedex-carrier/internal/core/ports"
)

// ShipmentHandler handles HTTP requests for rating, shipping and cancelling.
type ShipmentHandler struct {
	service ports.ShippingService
}

func NewShipmentHandler(service ports.ShippingService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Rates handles POST /v1/rates.
//
// A carrier that declines to quote still answers 200; the verdict is in the
// success flag and message.
//
// @Summary      Quote every service available for a route
// @Tags         rates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      rateRequest  true  "Route, packages and options"
// @Success      200   {object}  rateResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/rates [post]
func (h *ShipmentHandler) Rates(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	resp, err := h.service.Rates(c.Request().Context(), toRateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRateResponse(resp))
}

// Create handles POST /v1/shipments.
//
// @Summary      Buy a label
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShipmentRequest  true  "Route, packages and options"
// @Success      201   {object}  createShipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  createShipmentResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	role, clientID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if role == domain.RoleAdmin && req.ClientID != "" {
		clientID = req.ClientID
	}

	resp, err := h.service.CreateShipment(c.Request().Context(), toCreateInput(req, clientID))
	if err != nil {
		return err
	}
	if !resp.Success {
		return c.JSON(http.StatusUnprocessableEntity, toCreateResponse(resp))
	}
	return c.JSON(http.StatusCreated, toCreateResponse(resp))
}

// Delete handles DELETE /v1/shipments/:tracking_number.
//
// @Summary      Void a shipment
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path      string  true   "Tracking number"
// @Param        shipment_type    query     string  false  "EXPRESS (default) or GROUND"
// @Param        deletion_type    query     string  false  "DELETE_ALL_PACKAGES (default)"
// @Param        ship_timestamp   query     string  false  "RFC 3339 ship timestamp"
// @Param        test             query     bool    false  "Use the carrier test endpoint"
// @Success      200              {object}  deleteShipmentResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      502              {object}  errorResponse
// @Router       /v1/shipments/{tracking_number} [delete]
func (h *ShipmentHandler) Delete(c echo.Context) error {
	role, clientID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var q deleteShipmentQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	in, err := toDeleteInput(c.Param("tracking_number"), q, role, clientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.service.DeleteShipment(c.Request().Context(), in)
	if err != nil {
		return err
	}

	code := http.StatusOK
	if !resp.Success {
		code = http.StatusUnprocessableEntity
	}
	return c.JSON(code, deleteShipmentResponse{Success: resp.Success, Message: resp.Message})
}
