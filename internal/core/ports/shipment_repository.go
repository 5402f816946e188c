package ports

import (
	"context"
	"time"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

// ShipmentRepository defines persistence operations for shipment records.
type ShipmentRepository interface {
	Create(ctx context.Context, s *domain.Shipment) error
	// FindByTrackingNumber retrieves a shipment by tracking number.
	// When clientID is non-empty, the query is additionally filtered by client_id (for RBAC).
	FindByTrackingNumber(ctx context.Context, trackingNumber string, clientID string) (*domain.Shipment, error)
	// UpdateStatus sets the status and appends a history entry.
	UpdateStatus(ctx context.Context, trackingNumber string, status domain.ShipmentStatus, ts time.Time, notes string) error
}
