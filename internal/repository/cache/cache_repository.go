package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/destination-service/internal/domain"
	"github.com/destination-service/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetDestination получает дестинацию из кеша
func (r *cacheRepository) GetDestination(ctx context.Context, id string) (*domain.Destination, error) {
	data, err := r.Get(ctx, destinationKey(id))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var dest domain.Destination
	if err := json.Unmarshal(data, &dest); err != nil {
		r.logger.Error("Failed to unmarshal destination from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal destination: %w", err)
	}

	return &dest, nil
}

// SetDestination сохраняет дестинацию в кеше
func (r *cacheRepository) SetDestination(ctx context.Context, dest *domain.Destination, ttl time.Duration) error {
	data, err := json.Marshal(dest)
	if err != nil {
		r.logger.Error("Failed to marshal destination", zap.Error(err))
		return fmt.Errorf("marshal destination: %w", err)
	}

	return r.Set(ctx, destinationKey(dest.ID), data, ttl)
}

// DeleteDestination инвалидирует закешированную дестинацию
func (r *cacheRepository) DeleteDestination(ctx context.Context, id string) error {
	return r.Delete(ctx, destinationKey(id))
}

func destinationKey(id string) string {
	return fmt.Sprintf("destination:%s", id)
}
