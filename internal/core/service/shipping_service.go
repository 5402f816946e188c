package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/fedex-carrier/internal/api/metrics"
	"github.com/99minutos/fedex-carrier/internal/core/domain"
	"github.com/99minutos/fedex-carrier/internal/core/ports"
)

// ShippingService routes operations to the carrier adapter named in the input
// and keeps the shipment records in step with the carrier.
type ShippingService struct {
	carriers  map[string]ports.Carrier
	shipments ports.ShipmentRepository
	payloads  ports.PayloadRepository
	logger    zerolog.Logger
	now       func() time.Time
}

var _ ports.ShippingService = (*ShippingService)(nil)

// NewShippingService registers carriers under the lower-cased adapter name.
func NewShippingService(
	carriers []ports.Carrier,
	shipments ports.ShipmentRepository,
	payloads ports.PayloadRepository,
	logger zerolog.Logger,
) *ShippingService {
	byName := make(map[string]ports.Carrier, len(carriers))
	for _, c := range carriers {
		byName[carrierKey(c.Name())] = c
	}
	return &ShippingService{
		carriers:  byName,
		shipments: shipments,
		payloads:  payloads,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func carrierKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *ShippingService) carrier(name string) (ports.Carrier, error) {
	c, ok := s.carriers[carrierKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCarrier, name)
	}
	return c, nil
}

// Rates quotes every service the carrier offers for the route.
func (s *ShippingService) Rates(ctx context.Context, in ports.RateInput) (*domain.RateResponse, error) {
	c, err := s.carrier(in.Carrier)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.FindRates(ctx, in.Origin, in.Destination, in.Packages, in.Options)
	if err != nil {
		s.observe(c, "rate", start, domain.Response{}, err)
		return nil, err
	}
	s.observe(c, "rate", start, resp.Response, nil)
	s.savePayload(ctx, c, "rate", in.Options, resp.Response)
	return resp, nil
}

// CreateShipment buys a label and records the shipment. A failure to store the
// record is logged but does not fail the call: the label has been paid for.
func (s *ShippingService) CreateShipment(ctx context.Context, in ports.CreateShipmentInput) (*domain.ShipResponse, error) {
	c, err := s.carrier(in.Carrier)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.CreateShipment(ctx, in.Origin, in.Destination, in.Packages, in.Options)
	if err != nil {
		s.observe(c, "ship", start, domain.Response{}, err)
		return nil, err
	}
	s.observe(c, "ship", start, resp.Response, nil)
	s.savePayload(ctx, c, "ship", in.Options, resp.Response)

	if !resp.Success || resp.TrackingNumber == "" {
		s.logger.Info().Str("carrier", c.Name()).Str("message", resp.Message).Msg("shipment rejected by carrier")
		return resp, nil
	}

	serviceType := resp.ServiceType
	if serviceType == "" {
		serviceType = in.Options.ServiceType
	}
	now := s.now()
	record := &domain.Shipment{
		ID:             uuid.NewString(),
		TrackingNumber: resp.TrackingNumber,
		Carrier:        c.Name(),
		ClientID:       in.ClientID,
		ServiceType:    serviceType,
		Origin:         in.Origin,
		Destination:    in.Destination,
		Packages:       in.Packages,
		LabelEncoded:   resp.LabelEncoded,
		Status:         domain.StatusCreated,
		CreatedAt:      now,
		StatusHistory:  []domain.StatusHistoryEntry{{Status: domain.StatusCreated, Timestamp: now, Notes: resp.Message}},
	}
	if err := s.shipments.Create(ctx, record); err != nil {
		s.logger.Error().Err(err).Str("tracking_number", resp.TrackingNumber).Msg("failed to store shipment record")
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(carrierKey(c.Name()), record.ServiceType).Inc()
	s.logger.Info().
		Str("carrier", c.Name()).
		Str("tracking_number", resp.TrackingNumber).
		Str("client_id", in.ClientID).
		Msg("shipment created")

	return resp, nil
}

// DeleteShipment voids a shipment. Clients may only void shipments recorded
// under their own client id; admins may also void shipments the service has no
// record of.
func (s *ShippingService) DeleteShipment(ctx context.Context, in ports.DeleteShipmentInput) (*domain.DeleteResponse, error) {
	c, err := s.carrier(in.Carrier)
	if err != nil {
		return nil, err
	}

	filter := ""
	if in.Role == domain.RoleClient {
		filter = in.ClientID
	}
	record, err := s.shipments.FindByTrackingNumber(ctx, in.TrackingNumber, filter)
	switch {
	case errors.Is(err, domain.ErrShipmentNotFound) && in.Role == domain.RoleAdmin:
		record = nil
	case err != nil:
		return nil, fmt.Errorf("delete shipment: %w", err)
	case !record.Status.CanTransitionTo(domain.StatusCancelled):
		return nil, fmt.Errorf("delete shipment: %w (from %s to %s)", domain.ErrInvalidTransition, record.Status, domain.StatusCancelled)
	}

	start := time.Now()
	resp, err := c.DeleteShipment(ctx, in.TrackingNumber, in.ShipmentType, in.Options)
	if err != nil {
		s.observe(c, "delete", start, domain.Response{}, err)
		return nil, err
	}
	s.observe(c, "delete", start, resp.Response, nil)
	s.savePayload(ctx, c, "delete", in.Options, resp.Response)

	if !resp.Success {
		return resp, nil
	}
	metrics.ShipmentsCancelledTotal.WithLabelValues(carrierKey(c.Name())).Inc()

	if record != nil {
		if err := s.shipments.UpdateStatus(ctx, in.TrackingNumber, domain.StatusCancelled, s.now(), resp.Message); err != nil {
			s.logger.Error().Err(err).Str("tracking_number", in.TrackingNumber).Msg("failed to mark shipment cancelled")
		}
	}
	s.logger.Info().Str("carrier", c.Name()).Str("tracking_number", in.TrackingNumber).Str("role", in.Role).Msg("shipment cancelled")
	return resp, nil
}

// Track returns the carrier's scan history for a shipment.
func (s *ShippingService) Track(ctx context.Context, in ports.TrackInput) (*domain.TrackingResponse, error) {
	c, err := s.carrier(in.Carrier)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.FindTrackingInfo(ctx, in.TrackingNumber, in.Options)
	if err != nil {
		s.observe(c, "track", start, domain.Response{}, err)
		return nil, err
	}
	s.observe(c, "track", start, resp.Response, nil)
	s.savePayload(ctx, c, "track", in.Options, resp.Response)
	return resp, nil
}

func (s *ShippingService) observe(c ports.Carrier, operation string, start time.Time, resp domain.Response, err error) {
	name := carrierKey(c.Name())
	outcome := metrics.OutcomeSuccess
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
		s.logger.Error().Err(err).Str("carrier", c.Name()).Str("operation", operation).Msg("carrier operation failed")
	case !resp.Success:
		outcome = metrics.OutcomeFailure
	}
	metrics.CarrierRequestsTotal.WithLabelValues(name, operation, outcome).Inc()
	metrics.CarrierRequestDuration.WithLabelValues(name, operation).Observe(time.Since(start).Seconds())
}

// savePayload stores the raw exchange when the caller asked for it. Storage
// failures are logged only.
func (s *ShippingService) savePayload(ctx context.Context, c ports.Carrier, operation string, opts domain.Options, resp domain.Response) {
	if !domain.Enabled(opts.LogXML) || s.payloads == nil {
		return
	}
	p := &domain.Payload{
		ID:        uuid.NewString(),
		Carrier:   c.Name(),
		Operation: operation,
		Request:   resp.Request,
		Response:  resp.XML,
		Success:   resp.Success,
		CreatedAt: s.now(),
	}
	if err := s.payloads.Save(ctx, p); err != nil {
		s.logger.Warn().Err(err).Str("operation", operation).Msg("failed to store carrier payload")
		return
	}
	metrics.PayloadsLoggedTotal.WithLabelValues(carrierKey(c.Name()), operation).Inc()
}
