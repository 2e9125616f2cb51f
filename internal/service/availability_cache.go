package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for computed day availability
	availabilityKeyPrefix = "availability:"

	// Cached days go stale quickly: every booking, cancellation or edit on
	// that day invalidates the entry, the TTL only bounds drift when an
	// invalidation is lost.
	availabilityTTL = 5 * time.Minute
)

// CachedAvailability is the Redis representation of one professional-day.
type CachedAvailability struct {
	Available bool     `json:"available"`
	Slots     []string `json:"slots"`
}

// AvailabilityCache is a read-through cache for the availability calculator.
// The database remains the source of truth; a Redis failure degrades to a
// cache miss, never to an error surfaced to the caller.
type AvailabilityCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewAvailabilityCache(redisClient *redis.Client, log *logrus.Logger) *AvailabilityCache {
	return &AvailabilityCache{
		redisClient: redisClient,
		log:         log,
	}
}

// availabilityKey pins the date to the UTC day: lookups are keyed on the
// parsed query date (UTC midnight) while invalidations carry appointment
// timestamps in their own zone, and both must hit the same entry.
func availabilityKey(professionalID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s%s:%s", availabilityKeyPrefix, professionalID, date.UTC().Format("2006-01-02"))
}

// Get returns the cached day, or nil on a miss.
func (c *AvailabilityCache) Get(ctx context.Context, professionalID uuid.UUID, date time.Time) *CachedAvailability {
	raw, err := c.redisClient.Get(ctx, availabilityKey(professionalID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read availability cache for %s (non-fatal): %+v", professionalID, err)
		}
		return nil
	}

	var cached CachedAvailability
	if err := json.Unmarshal(raw, &cached); err != nil {
		c.log.Warnf("Failed to decode availability cache for %s (non-fatal): %+v", professionalID, err)
		return nil
	}
	return &cached
}

// Set stores the computed day. Failures are logged and swallowed.
func (c *AvailabilityCache) Set(ctx context.Context, professionalID uuid.UUID, date time.Time, value *CachedAvailability) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Failed to encode availability cache for %s (non-fatal): %+v", professionalID, err)
		return
	}

	if err := c.redisClient.Set(ctx, availabilityKey(professionalID, date), raw, availabilityTTL).Err(); err != nil {
		c.log.Warnf("Failed to write availability cache for %s (non-fatal): %+v", professionalID, err)
	}
}

// Invalidate drops the cached entries for the given professional-days.
// Called after any write that books or frees a slot.
func (c *AvailabilityCache) Invalidate(ctx context.Context, professionalID uuid.UUID, dates ...time.Time) {
	if len(dates) == 0 {
		return
	}

	keys := make([]string, 0, len(dates))
	for _, date := range dates {
		keys = append(keys, availabilityKey(professionalID, date))
	}

	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("Failed to invalidate availability cache for %s (non-fatal): %+v", professionalID, err)
	}
}

// InvalidateAll drops every cached day of one professional. Used when the
// weekly schedule itself changes.
func (c *AvailabilityCache) InvalidateAll(ctx context.Context, professionalID uuid.UUID) {
	pattern := fmt.Sprintf("%s%s:*", availabilityKeyPrefix, professionalID)

	keys, err := c.redisClient.Keys(ctx, pattern).Result()
	if err != nil {
		c.log.Warnf("Failed to list availability cache keys for %s (non-fatal): %+v", professionalID, err)
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("Failed to invalidate availability cache for %s (non-fatal): %+v", professionalID, err)
	}
}
