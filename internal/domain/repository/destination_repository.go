package repository

import (
	"context"

	"github.com/destination-service/internal/domain"
)

// DestinationRepository определяет методы для работы с дестинациями
type DestinationRepository interface {
	// List возвращает все дестинации без пагинации
	List(ctx context.Context) ([]domain.Destination, error)

	// GetByID возвращает дестинацию по ID
	GetByID(ctx context.Context, id string) (*domain.Destination, error)

	// Insert сохраняет полностью собранную дестинацию одной вставкой
	Insert(ctx context.Context, dest *domain.Destination) error

	// Update применяет частичное обновление; отсутствующие поля не трогаются
	Update(ctx context.Context, id string, upd domain.DestinationUpdate) error

	// Delete удаляет дестинацию; удаление несуществующего id не ошибка
	Delete(ctx context.Context, id string) error
}
