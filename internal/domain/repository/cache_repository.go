package repository

import (
	"context"
	"time"

	"github.com/destination-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; (nil, nil) при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetDestination получает дестинацию из кеша; (nil, nil) при промахе
	GetDestination(ctx context.Context, id string) (*domain.Destination, error)

	// SetDestination сохраняет дестинацию в кеше
	SetDestination(ctx context.Context, dest *domain.Destination, ttl time.Duration) error

	// DeleteDestination инвалидирует закешированную дестинацию
	DeleteDestination(ctx context.Context, id string) error
}
