package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
	"github.com/99minutos/fedex-carrier/internal/core/ports"
)

const collectionTrackingEvents = "tracking_events"

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	col *mongo.Collection
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{col: db.Collection(collectionTrackingEvents)}
}

var _ ports.EventRepository = (*EventRepository)(nil)

// InsertEvents appends carrier scans to the tracking_events collection.
func (r *EventRepository) InsertEvents(ctx context.Context, events []domain.TrackingEvent) error {
	if len(events) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	processedAt := time.Now().UTC()
	docs := make([]any, 0, len(events))
	for _, e := range events {
		docs = append(docs, bson.M{
			"tracking_number": e.TrackingNumber,
			"carrier":         e.Carrier,
			"description":     e.Description,
			"timestamp":       e.Timestamp.UTC(),
			"location":        e.Location,
			"processed_at":    processedAt,
		})
	}

	_, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// EnsureIndexes creates the lookup index on tracking_events.
func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "tracking_number", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	return err
}
