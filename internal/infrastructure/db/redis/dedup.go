package redis

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Carrier scans stay visible for weeks, so keys outlive a single refresh cycle.
const dedupTTL = 30 * 24 * time.Hour

// DedupChecker records which tracking events have already been stored.
// Key format: dedup:<tracking_number>:<unix_timestamp>:<description_hash>
type DedupChecker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client, ttl: dedupTTL}
}

// IsDuplicate reports whether this exact event has already been recorded.
func (d *DedupChecker) IsDuplicate(ctx context.Context, trackingNumber, description string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, Key(trackingNumber, description, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been stored (expires after the TTL).
func (d *DedupChecker) Mark(ctx context.Context, trackingNumber, description string, ts time.Time) error {
	if err := d.client.Set(ctx, Key(trackingNumber, description, ts), "1", d.ttl).Err(); err != nil {
		return fmt.Errorf("dedup mark: %w", err)
	}
	return nil
}

// Key builds the dedup key of an event. Descriptions are compared
// case-insensitively.
func Key(trackingNumber, description string, ts time.Time) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(description))))
	return fmt.Sprintf("dedup:%s:%d:%08x", trackingNumber, ts.Unix(), h.Sum32())
}
