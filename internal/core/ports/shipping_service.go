package ports

import (
	"context"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

// RateInput carries a rate quote request for a named carrier.
type RateInput struct {
	Carrier     string
	Origin      domain.Location
	Destination domain.Location
	Packages    []domain.Package
	Options     domain.Options
}

// CreateShipmentInput carries all data needed to buy a label.
type CreateShipmentInput struct {
	Carrier     string
	ClientID    string
	Origin      domain.Location
	Destination domain.Location
	Packages    []domain.Package
	Options     domain.Options
}

// DeleteShipmentInput identifies the shipment to void.
type DeleteShipmentInput struct {
	Carrier        string
	TrackingNumber string
	ShipmentType   string
	// Role and ClientID enforce RBAC: clients may only void their own shipments.
	Role     string
	ClientID string
	Options  domain.Options
}

// TrackInput identifies the shipment to look up.
type TrackInput struct {
	Carrier        string
	TrackingNumber string
	Options        domain.Options
}

// ShippingService dispatches carrier-agnostic operations to carrier adapters.
type ShippingService interface {
	Rates(ctx context.Context, in RateInput) (*domain.RateResponse, error)
	CreateShipment(ctx context.Context, in CreateShipmentInput) (*domain.ShipResponse, error)
	DeleteShipment(ctx context.Context, in DeleteShipmentInput) (*domain.DeleteResponse, error)
	Track(ctx context.Context, in TrackInput) (*domain.TrackingResponse, error)
}

// RefreshResult summarises a tracking refresh. Success and Message mirror the
// carrier's verdict on the lookup.
type RefreshResult struct {
	TrackingNumber string
	Success        bool
	Message        string
	Fetched        int
	Recorded       int
	Status         domain.ShipmentStatus
}

// TrackingService pulls carrier scans into the event store.
type TrackingService interface {
	Refresh(ctx context.Context, in TrackInput) (*RefreshResult, error)
}
