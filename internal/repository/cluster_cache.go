package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/kwen1510/Realtime-clustering/db"
	"github.com/kwen1510/Realtime-clustering/internal/model"
	"github.com/redis/go-redis/v9"
)

// ClusterCache keeps normalized cluster sets in Redis, keyed by the model and
// the exact prompt that produced them.
type ClusterCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClusterCache(client *redis.Client, ttl time.Duration) *ClusterCache {
	return &ClusterCache{client: client, ttl: ttl}
}

func CacheKey(modelID, prompt string) string {
	sum := sha256.Sum256([]byte(modelID + "\n" + prompt))
	return db.ClusterCachePrefix + hex.EncodeToString(sum[:])
}

// Get returns nil without an error on a cache miss.
func (r *ClusterCache) Get(ctx context.Context, modelID, prompt string) (*model.ClusterSet, error) {
	raw, err := r.client.Get(ctx, CacheKey(modelID, prompt)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var set model.ClusterSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *ClusterCache) Set(ctx context.Context, modelID, prompt string, set *model.ClusterSet) error {
	raw, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, CacheKey(modelID, prompt), raw, r.ttl).Err()
}

func (r *ClusterCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
