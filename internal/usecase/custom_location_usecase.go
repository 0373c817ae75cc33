package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/destination-service/internal/domain"
	"github.com/destination-service/internal/domain/repository"
	apperrors "github.com/destination-service/internal/pkg/errors"
	"github.com/destination-service/internal/pkg/utils"
	"github.com/destination-service/internal/usecase/dto"
)

// CustomLocationUseCase - CRUD пользовательских меток
type CustomLocationUseCase struct {
	locRepo repository.CustomLocationRepository
	logger  *zap.Logger
}

// NewCustomLocationUseCase создает новый CustomLocationUseCase
func NewCustomLocationUseCase(
	locRepo repository.CustomLocationRepository,
	logger *zap.Logger,
) *CustomLocationUseCase {
	return &CustomLocationUseCase{
		locRepo: locRepo,
		logger:  logger,
	}
}

// Create сохраняет новую метку; name, lat и lon обязательны
func (uc *CustomLocationUseCase) Create(ctx context.Context, req dto.CreateCustomLocationRequest) (*domain.CustomLocation, error) {
	if req.Name == "" || req.Lat == nil || req.Lon == nil {
		return nil, apperrors.ErrMissingFields
	}

	loc := &domain.CustomLocation{
		ID:   utils.NewToken(),
		Name: req.Name,
		Lat:  *req.Lat,
		Lon:  *req.Lon,
	}

	if err := uc.locRepo.Insert(ctx, loc); err != nil {
		return nil, err
	}

	uc.logger.Info("Custom location created", zap.String("id", loc.ID))
	return loc, nil
}

// List возвращает все метки
func (uc *CustomLocationUseCase) List(ctx context.Context) ([]domain.CustomLocation, error) {
	return uc.locRepo.List(ctx)
}

// GetByID возвращает метку по id
func (uc *CustomLocationUseCase) GetByID(ctx context.Context, id string) (*domain.CustomLocation, error) {
	return uc.locRepo.GetByID(ctx, id)
}

// Update применяет частичное слияние предоставленных полей
func (uc *CustomLocationUseCase) Update(ctx context.Context, id string, req dto.UpdateCustomLocationRequest) error {
	upd := domain.CustomLocationUpdate{
		Name: req.Name,
		Lat:  req.Lat,
		Lon:  req.Lon,
	}

	return uc.locRepo.Update(ctx, id, upd)
}

// Delete удаляет метку; удаление несуществующего id не ошибка
func (uc *CustomLocationUseCase) Delete(ctx context.Context, id string) error {
	return uc.locRepo.Delete(ctx, id)
}
