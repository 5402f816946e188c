package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/99minutos/fedex-carrier/internal/api/middleware"
	"github.com/99minutos/fedex-carrier/internal/core/domain"
	"github.com/99minutos/fedex-carrier/internal/core/ports"
	"github.com/99minutos/fedex-carrier/internal/infrastructure/http/handlers"
)

type stubShipping struct {
	trackCalls int
}

func (s *stubShipping) Rates(context.Context, ports.RateInput) (*domain.RateResponse, error) {
	return nil, domain.ErrTransport
}

func (s *stubShipping) CreateShipment(context.Context, ports.CreateShipmentInput) (*domain.ShipResponse, error) {
	return nil, domain.ErrTransport
}

func (s *stubShipping) DeleteShipment(context.Context, ports.DeleteShipmentInput) (*domain.DeleteResponse, error) {
	return nil, domain.ErrShipmentNotFound
}

func (s *stubShipping) Track(_ context.Context, in ports.TrackInput) (*domain.TrackingResponse, error) {
	s.trackCalls++
	return &domain.TrackingResponse{
		Response:       domain.Response{Success: true, Message: "SUCCESS - 0: ok"},
		TrackingNumber: in.TrackingNumber,
		ShipmentEvents: []domain.ShipmentEvent{},
	}, nil
}

type nopQueue struct{}

func (nopQueue) Enqueue(ports.TrackInput) error { return nil }

const testSecret = "router-secret"

func newTestRouter(shipping *stubShipping) http.Handler {
	return NewRouter(Dependencies{
		Shipping:     shipping,
		RefreshQueue: nopQueue{},
		HealthChecks: map[string]handlers.Check{"mongodb": handlers.StaticCheck(nil)},
		JWTSecret:    testSecret,
		Logger:       zerolog.Nop(),
		Registerer:   prometheus.NewRegistry(),
	})
}

func bearer(t *testing.T, role, clientID string) string {
	t.Helper()
	token, err := middleware.IssueToken(testSecret, "tester", role, clientID, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func TestRouter(t *testing.T) {
	shipping := &stubShipping{}
	router := newTestRouter(shipping)

	tests := []struct {
		name   string
		method string
		target string
		auth   string
		body   string
		code   int
	}{
		{"liveness", http.MethodGet, "/health", "", "", http.StatusOK},
		{"readiness", http.MethodGet, "/health/ready", "", "", http.StatusOK},
		{"tracking needs a token", http.MethodGet, "/v1/tracking/123", "", "", http.StatusUnauthorized},
		{"tracking", http.MethodGet, "/v1/tracking/123", bearer(t, "client", "client_1"), "", http.StatusOK},
		{"refresh", http.MethodPost, "/v1/tracking/123/refresh", bearer(t, "admin", ""), "", http.StatusAccepted},
		{"delete unknown shipment", http.MethodDelete, "/v1/shipments/123", bearer(t, "client", "client_1"), "", http.StatusNotFound},
		{
			"rates with carrier down", http.MethodPost, "/v1/rates", bearer(t, "admin", ""),
			`{"origin":{"address1":"a","city":"b","postal_code":"90210","country_code":"US"},"destination":{"address1":"a","city":"b","postal_code":"10001","country_code":"US"},"packages":[{"weight":1}]}`,
			http.StatusBadGateway,
		},
		{"unknown route", http.MethodGet, "/v2/nothing", "", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d: %s", tt.code, rec.Code, rec.Body.String())
			}
		})
	}
	if shipping.trackCalls != 1 {
		t.Errorf("expected one tracking call, got %d", shipping.trackCalls)
	}
}
