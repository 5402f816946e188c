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

const (
	collectionPayloads = "carrier_payloads"
	payloadRetention   = 30 * 24 * time.Hour
)

// PayloadRepository keeps raw carrier exchanges for diagnostics.
type PayloadRepository struct {
	col *mongo.Collection
}

var _ ports.PayloadRepository = (*PayloadRepository)(nil)

func NewPayloadRepository(db *mongo.Database) *PayloadRepository {
	return &PayloadRepository{col: db.Collection(collectionPayloads)}
}

// Save inserts one exchange.
func (r *PayloadRepository) Save(ctx context.Context, p *domain.Payload) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, p)
	return err
}

// EnsureIndexes expires payloads after payloadRetention.
func (r *PayloadRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(payloadRetention.Seconds())),
	})
	return err
}
