// Package cache implements the snapshot store on Redis. The mirror worker
// materializes collection snapshots here so read paths can survive short
// record store outages.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"loja/config"
	"loja/internal/domain/repository"
)

// snapshotStore implements the repository.SnapshotStore interface.
type snapshotStore struct {
	client *redis.Client
}

// NewRedisClient creates the Redis client from configuration.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil, errors.New("redis configuration is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping redis")
	}

	return client, nil
}

// NewSnapshotStore is the constructor for snapshotStore.
func NewSnapshotStore(client *redis.Client) repository.SnapshotStore {
	return &snapshotStore{client: client}
}

// SaveSnapshot stores the serialized snapshot of a collection.
func (s *snapshotStore) SaveSnapshot(ctx context.Context, ownerUID, collection string, payload []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, snapshotKey(ownerUID, collection), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save snapshot")
	}

	return nil
}

// LoadSnapshot retrieves the serialized snapshot of a collection.
func (s *snapshotStore) LoadSnapshot(ctx context.Context, ownerUID, collection string) ([]byte, error) {
	payload, err := s.client.Get(ctx, snapshotKey(ownerUID, collection)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to load snapshot")
	}

	return payload, nil
}

func snapshotKey(ownerUID, collection string) string {
	return fmt.Sprintf("snapshot:%s:%s", ownerUID, collection)
}
