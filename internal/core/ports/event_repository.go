package ports

import (
	"context"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

// EventRepository persists tracking events pulled from carriers.
type EventRepository interface {
	InsertEvents(ctx context.Context, events []domain.TrackingEvent) error
}

// PayloadRepository stores raw carrier exchanges.
type PayloadRepository interface {
	Save(ctx context.Context, p *domain.Payload) error
}
