package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/fedex-carrier/internal/api/metrics"
	"github.com/99minutos/fedex-carrier/internal/core/domain"
	"github.com/99minutos/fedex-carrier/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis). An event is identified
// by its tracking number, description and scan time.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, trackingNumber, description string, ts time.Time) (bool, error)
	Mark(ctx context.Context, trackingNumber, description string, ts time.Time) error
}

type trackingService struct {
	shipping  ports.ShippingService
	shipments ports.ShipmentRepository
	events    ports.EventRepository
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewTrackingService returns a TrackingService implementation.
func NewTrackingService(
	shipping ports.ShippingService,
	shipments ports.ShipmentRepository,
	events ports.EventRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.TrackingService {
	return &trackingService{
		shipping:  shipping,
		shipments: shipments,
		events:    events,
		dedup:     dedup,
		log:       log,
	}
}

// Refresh pulls the carrier's scans for a shipment, records the ones not seen
// before and advances the shipment record when the scans show movement.
func (s *trackingService) Refresh(ctx context.Context, in ports.TrackInput) (*ports.RefreshResult, error) {
	resp, err := s.shipping.Track(ctx, in)
	if err != nil {
		metrics.RefreshErrorsTotal.WithLabelValues("carrier").Inc()
		return nil, fmt.Errorf("refresh tracking: %w", err)
	}

	result := &ports.RefreshResult{
		TrackingNumber: in.TrackingNumber,
		Success:        resp.Success,
		Message:        resp.Message,
		Fetched:        len(resp.ShipmentEvents),
	}
	if !resp.Success {
		s.log.Info().Str("tracking_number", in.TrackingNumber).Str("message", resp.Message).Msg("tracking lookup rejected by carrier")
		return result, nil
	}

	// 1. Keep only events not recorded before. A failing dedup store lets the
	//    event through.
	fresh := make([]domain.TrackingEvent, 0, len(resp.ShipmentEvents))
	for _, ev := range resp.ShipmentEvents {
		isDup, err := s.dedup.IsDuplicate(ctx, in.TrackingNumber, ev.Name, ev.Time)
		if err != nil {
			s.log.Warn().Err(err).Str("tracking_number", in.TrackingNumber).Msg("dedup check failed, recording anyway")
		} else if isDup {
			metrics.EventsDedupTotal.WithLabelValues("hit").Inc()
			continue
		}
		metrics.EventsDedupTotal.WithLabelValues("miss").Inc()
		fresh = append(fresh, domain.TrackingEvent{
			TrackingNumber: in.TrackingNumber,
			Carrier:        in.Carrier,
			Description:    ev.Name,
			Timestamp:      ev.Time,
			Location:       ev.Location,
		})
	}

	// 2. Persist, then mark.
	if len(fresh) > 0 {
		if err := s.events.InsertEvents(ctx, fresh); err != nil {
			metrics.RefreshErrorsTotal.WithLabelValues("persist").Inc()
			return nil, fmt.Errorf("refresh tracking: insert events: %w", err)
		}
		for _, ev := range fresh {
			if err := s.dedup.Mark(ctx, ev.TrackingNumber, ev.Description, ev.Timestamp); err != nil {
				s.log.Warn().Err(err).Str("tracking_number", ev.TrackingNumber).Msg("failed to set dedup key")
			}
		}
		metrics.EventsRecordedTotal.WithLabelValues(carrierKey(in.Carrier)).Add(float64(len(fresh)))
	}
	result.Recorded = len(fresh)

	// 3. Advance the shipment record (non-fatal).
	status, err := s.advance(ctx, in.TrackingNumber, resp.ShipmentEvents)
	if err != nil {
		metrics.RefreshErrorsTotal.WithLabelValues("status_update").Inc()
		s.log.Warn().Err(err).Str("tracking_number", in.TrackingNumber).Msg("failed to advance shipment status")
	}
	result.Status = status

	s.log.Info().
		Str("tracking_number", in.TrackingNumber).
		Int("fetched", result.Fetched).
		Int("recorded", result.Recorded).
		Str("status", string(status)).
		Msg("tracking refreshed")

	return result, nil
}

// advance moves a recorded shipment towards in_transit, or delivered when the
// latest scan reports a delivery. Shipments without a record are left alone.
func (s *trackingService) advance(ctx context.Context, trackingNumber string, events []domain.ShipmentEvent) (domain.ShipmentStatus, error) {
	if len(events) == 0 {
		return "", nil
	}

	record, err := s.shipments.FindByTrackingNumber(ctx, trackingNumber, "")
	if errors.Is(err, domain.ErrShipmentNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	latest := events[len(events)-1]
	target := domain.StatusInTransit
	if strings.Contains(strings.ToLower(latest.Name), "delivered") {
		target = domain.StatusDelivered
	}

	current := record.Status
	for _, next := range []domain.ShipmentStatus{domain.StatusInTransit, domain.StatusDelivered} {
		if current == target {
			break
		}
		if !current.CanTransitionTo(next) {
			continue
		}
		if err := s.shipments.UpdateStatus(ctx, trackingNumber, next, latest.Time, latest.Name); err != nil {
			return current, err
		}
		current = next
	}
	return current, nil
}
