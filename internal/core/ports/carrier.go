package ports

import (
	"context"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

// RateQuoter prices a route for a set of packages.
type RateQuoter interface {
	FindRates(ctx context.Context, origin, destination domain.Location, packages []domain.Package, opts domain.Options) (*domain.RateResponse, error)
}

// ShipmentCreator buys a label.
type ShipmentCreator interface {
	CreateShipment(ctx context.Context, origin, destination domain.Location, packages []domain.Package, opts domain.Options) (*domain.ShipResponse, error)
}

// ShipmentCanceller voids a previously created shipment.
type ShipmentCanceller interface {
	DeleteShipment(ctx context.Context, trackingNumber, shipmentType string, opts domain.Options) (*domain.DeleteResponse, error)
}

// TrackingProvider looks up the scan history of a shipment.
type TrackingProvider interface {
	FindTrackingInfo(ctx context.Context, trackingNumber string, opts domain.Options) (*domain.TrackingResponse, error)
}

// Carrier is a carrier adapter offering every capability.
//
// Carrier-reported failures come back as data (Success=false); the error
// return is reserved for transport failures and unreadable replies.
type Carrier interface {
	Name() string
	RateQuoter
	ShipmentCreator
	ShipmentCanceller
	TrackingProvider
}

// Transport posts a request body to a carrier endpoint and returns the reply body.
type Transport interface {
	Send(ctx context.Context, endpoint string, body []byte) ([]byte, error)
}
