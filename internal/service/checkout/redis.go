package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"walk4you-storefront/internal/domain"
)

// RedisStore keeps snapshots in redis so the hand-off survives across
// storefront processes. Keys expire after ttl; an expired snapshot behaves
// exactly like one that was never written.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient opens and pings a redis connection.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", snapshotKey, sessionID)
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, snap domain.CheckoutSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.CheckoutSnapshot, error) {
	raw, err := s.client.Get(ctx, redisKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoSnapshot
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap domain.CheckoutSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, domain.ErrNoSnapshot
	}
	return &snap, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, redisKey(sessionID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}
