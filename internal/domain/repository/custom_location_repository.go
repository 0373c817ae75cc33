package repository

import (
	"context"

	"github.com/destination-service/internal/domain"
)

// CustomLocationRepository определяет методы для работы с пользовательскими метками
type CustomLocationRepository interface {
	// List возвращает все метки
	List(ctx context.Context) ([]domain.CustomLocation, error)

	// GetByID возвращает метку по ID
	GetByID(ctx context.Context, id string) (*domain.CustomLocation, error)

	// Insert сохраняет новую метку
	Insert(ctx context.Context, loc *domain.CustomLocation) error

	// Update применяет частичное обновление предоставленных полей
	Update(ctx context.Context, id string, upd domain.CustomLocationUpdate) error

	// Delete удаляет метку; удаление несуществующего id не ошибка
	Delete(ctx context.Context, id string) error
}
