package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"echo error", echo.NewHTTPError(http.StatusUnprocessableEntity, "weight is required"), http.StatusUnprocessableEntity, "weight is required"},
		{"unknown carrier", fmt.Errorf("%w: %q", domain.ErrUnknownCarrier, "ups"), http.StatusBadRequest, `unknown carrier: "ups"`},
		{"not found", fmt.Errorf("delete shipment: %w", domain.ErrShipmentNotFound), http.StatusNotFound, "shipment not found"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusUnprocessableEntity, "invalid status transition"},
		{"transport", fmt.Errorf("fedex rate: %w: timeout", domain.ErrTransport), http.StatusBadGateway, "carrier unavailable"},
		{"malformed", domain.ErrMalformedResponse, http.StatusBadGateway, "carrier unavailable"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tt.msg {
				t.Errorf("expected %q, got %q", tt.msg, body.Error)
			}
		})
	}
}
