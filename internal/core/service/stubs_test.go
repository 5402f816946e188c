package service

import (
	"context"
	"time"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Carrier stub
// ---------------------------------------------------------------------------

type stubCarrier struct {
	name string

	rate   *domain.RateResponse
	ship   *domain.ShipResponse
	delete *domain.DeleteResponse
	track  *domain.TrackingResponse
	err    error

	calls []string
}

func (c *stubCarrier) Name() string { return c.name }

func (c *stubCarrier) FindRates(_ context.Context, _, _ domain.Location, _ []domain.Package, _ domain.Options) (*domain.RateResponse, error) {
	c.calls = append(c.calls, "rate")
	return c.rate, c.err
}

func (c *stubCarrier) CreateShipment(_ context.Context, _, _ domain.Location, _ []domain.Package, _ domain.Options) (*domain.ShipResponse, error) {
	c.calls = append(c.calls, "ship")
	return c.ship, c.err
}

func (c *stubCarrier) DeleteShipment(_ context.Context, trackingNumber, _ string, _ domain.Options) (*domain.DeleteResponse, error) {
	c.calls = append(c.calls, "delete:"+trackingNumber)
	return c.delete, c.err
}

func (c *stubCarrier) FindTrackingInfo(_ context.Context, trackingNumber string, _ domain.Options) (*domain.TrackingResponse, error) {
	c.calls = append(c.calls, "track:"+trackingNumber)
	return c.track, c.err
}

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type statusUpdate struct {
	trackingNumber string
	status         domain.ShipmentStatus
}

type stubShipmentRepo struct {
	byTracking map[string]*domain.Shipment
	createErr  error
	updateErr  error
	findErr    error
	updates    []statusUpdate
}

func newStubShipmentRepo() *stubShipmentRepo {
	return &stubShipmentRepo{byTracking: make(map[string]*domain.Shipment)}
}

func seededRepo(tracking, clientID string, status domain.ShipmentStatus) *stubShipmentRepo {
	repo := newStubShipmentRepo()
	now := time.Now().UTC()
	repo.byTracking[tracking] = &domain.Shipment{
		TrackingNumber: tracking,
		Carrier:        "FedEx",
		ClientID:       clientID,
		Status:         status,
		CreatedAt:      now,
		StatusHistory:  []domain.StatusHistoryEntry{{Status: status, Timestamp: now}},
	}
	return repo
}

func (r *stubShipmentRepo) Create(_ context.Context, s *domain.Shipment) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *s
	r.byTracking[s.TrackingNumber] = &clone
	return nil
}

func (r *stubShipmentRepo) FindByTrackingNumber(_ context.Context, trackingNumber, clientID string) (*domain.Shipment, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	s, ok := r.byTracking[trackingNumber]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	// Enforce client filter (mirrors the real Mongo query)
	if clientID != "" && s.ClientID != clientID {
		return nil, domain.ErrShipmentNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubShipmentRepo) UpdateStatus(_ context.Context, trackingNumber string, status domain.ShipmentStatus, ts time.Time, notes string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates = append(r.updates, statusUpdate{trackingNumber: trackingNumber, status: status})
	if s, ok := r.byTracking[trackingNumber]; ok {
		s.Status = status
		s.StatusHistory = append(s.StatusHistory, domain.StatusHistoryEntry{Status: status, Timestamp: ts, Notes: notes})
	}
	return nil
}

type stubPayloadRepo struct {
	saved   []*domain.Payload
	saveErr error
}

func (r *stubPayloadRepo) Save(_ context.Context, p *domain.Payload) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, p)
	return nil
}

type stubEventRepo struct {
	insertErr error
	inserted  []domain.TrackingEvent
}

func (r *stubEventRepo) InsertEvents(_ context.Context, events []domain.TrackingEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, events...)
	return nil
}

type stubDedup struct {
	seen    map[string]bool
	dupErr  error
	markErr error
	marked  []string
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func dedupKey(tracking, description string, ts time.Time) string {
	return tracking + "|" + description + "|" + ts.UTC().Format(time.RFC3339)
}

func (d *stubDedup) IsDuplicate(_ context.Context, tracking, description string, ts time.Time) (bool, error) {
	if d.dupErr != nil {
		return false, d.dupErr
	}
	return d.seen[dedupKey(tracking, description, ts)], nil
}

func (d *stubDedup) Mark(_ context.Context, tracking, description string, ts time.Time) error {
	if d.markErr != nil {
		return d.markErr
	}
	key := dedupKey(tracking, description, ts)
	d.seen[key] = true
	d.marked = append(d.marked, key)
	return nil
}
