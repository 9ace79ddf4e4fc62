package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dreamtrip/internal/models/response_models"
	"dreamtrip/pkg/utils"
)

const snapshotKeyPrefix = "trip_detail:"

// TripCache holds serialized trip snapshots with a bounded expiry. Any
// transient failure surfaces as utils.ErrCacheMiss so callers fall through
// to the durable store; the cache is never a fatal dependency.
type TripCache interface {
	GetSnapshot(ctx context.Context, tripID int64) (*response_models.TripDetailResponse, error)
	SetSnapshot(ctx context.Context, snapshot *response_models.TripDetailResponse, ttl time.Duration) error
	ScanSnapshots(ctx context.Context, limit int) ([]response_models.TripDetailResponse, error)
}

func NewRedisTripCache(client *redis.Client) TripCache {
	return &redisTripCache{client: client}
}

type redisTripCache struct {
	client *redis.Client
}

func snapshotKey(tripID int64) string {
	return fmt.Sprintf("%s%d", snapshotKeyPrefix, tripID)
}

func (c *redisTripCache) GetSnapshot(ctx context.Context, tripID int64) (*response_models.TripDetailResponse, error) {
	raw, err := c.client.Get(ctx, snapshotKey(tripID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, utils.ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrCacheMiss, err)
	}

	var snapshot response_models.TripDetailResponse
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: corrupt entry: %v", utils.ErrCacheMiss, err)
	}
	return &snapshot, nil
}

func (c *redisTripCache) SetSnapshot(ctx context.Context, snapshot *response_models.TripDetailResponse, ttl time.Duration) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey(snapshot.TripID), raw, ttl).Err()
}

// ScanSnapshots walks the snapshot keyspace and decodes up to limit entries.
// Keys come back in no particular order; entries that fail to load are
// skipped rather than failing the scan.
func (c *redisTripCache) ScanSnapshots(ctx context.Context, limit int) ([]response_models.TripDetailResponse, error) {
	out := make([]response_models.TripDetailResponse, 0, limit)

	iter := c.client.Scan(ctx, 0, snapshotKeyPrefix+"*", int64(limit)).Iterator()
	for iter.Next(ctx) {
		if len(out) >= limit {
			break
		}

		raw, err := c.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}
		var snapshot response_models.TripDetailResponse
		if err := json.Unmarshal(raw, &snapshot); err != nil {
			continue
		}
		out = append(out, snapshot)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan: %v", utils.ErrCacheMiss, err)
	}

	return out, nil
}
