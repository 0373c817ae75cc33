package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/destination-service/internal/domain"
	"github.com/destination-service/internal/domain/repository"
	apperrors "github.com/destination-service/internal/pkg/errors"
	"github.com/destination-service/internal/pkg/utils"
	"github.com/destination-service/internal/usecase/dto"
)

// DestinationUseCase - workflow обогащения и CRUD дестинаций
type DestinationUseCase struct {
	destRepo    repository.DestinationRepository
	cacheRepo   repository.CacheRepository
	geocoder    repository.Geocoder
	weather     repository.WeatherProvider
	places      repository.PlaceProvider
	restaurants repository.RestaurantProvider
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewDestinationUseCase создает новый DestinationUseCase
func NewDestinationUseCase(
	destRepo repository.DestinationRepository,
	cacheRepo repository.CacheRepository,
	geocoder repository.Geocoder,
	weather repository.WeatherProvider,
	places repository.PlaceProvider,
	restaurants repository.RestaurantProvider,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *DestinationUseCase {
	return &DestinationUseCase{
		destRepo:    destRepo,
		cacheRepo:   cacheRepo,
		geocoder:    geocoder,
		weather:     weather,
		places:      places,
		restaurants: restaurants,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Create выполняет workflow обогащения: геокодирование, три независимых
// запроса к провайдерам, расчёт благоприятности, единственная вставка.
// Первый сбой прерывает запрос; до терминальной записи побочных эффектов нет.
func (uc *DestinationUseCase) Create(ctx context.Context, req dto.CreateDestinationRequest) (*domain.Destination, error) {
	city := strings.TrimSpace(req.City)
	if city == "" {
		return nil, apperrors.ErrCityRequired
	}

	point, err := uc.geocoder.Forward(ctx, city)
	if err != nil {
		return nil, err
	}

	// Три вызова не читают результаты друг друга и выполняются конкурентно;
	// первый сбой отменяет остальные
	var (
		weather         *domain.WeatherSnapshot
		pois            []domain.Place
		restaurantsList []domain.Place
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		w, err := uc.weather.Current(gctx, point.Lat, point.Lon)
		if err != nil {
			return err
		}
		weather = w
		return nil
	})

	g.Go(func() error {
		p, err := uc.places.Nearby(gctx, point.Lat, point.Lon)
		if err != nil {
			return err
		}
		pois = p
		return nil
	})

	g.Go(func() error {
		r, err := uc.restaurants.Nearby(gctx, point.Lat, point.Lon)
		if err != nil {
			return err
		}
		restaurantsList = r
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("Enrichment failed",
			zap.String("city", city),
			zap.Error(err))
		return nil, err
	}

	dest := &domain.Destination{
		ID:               utils.NewDestinationID(city),
		City:             city,
		DisplayCity:      city,
		Country:          point.Country,
		Lat:              point.Lat,
		Lon:              point.Lon,
		Weather:          *weather,
		PointsOfInterest: pois,
		Restaurants:      restaurantsList,
		WeatherFavorable: domain.FavorableWeather(*weather),
		UserNote:         "",
	}

	if err := uc.destRepo.Insert(ctx, dest); err != nil {
		return nil, err
	}

	uc.logger.Info("Destination created",
		zap.String("id", dest.ID),
		zap.String("country", dest.Country),
		zap.Bool("weather_favorable", dest.WeatherFavorable))

	return dest, nil
}

// List возвращает все дестинации
func (uc *DestinationUseCase) List(ctx context.Context) ([]domain.Destination, error) {
	return uc.destRepo.List(ctx)
}

// GetByID возвращает дестинацию, сквозь кеш при наличии
func (uc *DestinationUseCase) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	cached, err := uc.cacheRepo.GetDestination(ctx, id)
	if err != nil {
		// Недоступный кеш не роняет чтение
		uc.logger.Warn("Destination cache read failed", zap.String("id", id), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	dest, err := uc.destRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetDestination(ctx, dest, uc.cacheTTL); err != nil {
		uc.logger.Warn("Destination cache write failed", zap.String("id", id), zap.Error(err))
	}

	return dest, nil
}

// GetListItem возвращает элемент спискового поля по позиции
func (uc *DestinationUseCase) GetListItem(ctx context.Context, id, field string, index int) (*domain.Place, error) {
	if index < 0 {
		return nil, apperrors.ErrInvalidIndex
	}

	dest, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, ok := dest.ListField(field)
	if !ok {
		return nil, apperrors.ErrInvalidListField
	}
	if index >= len(items) {
		return nil, apperrors.ErrIndexOutOfRange
	}

	item := items[index]
	return &item, nil
}

// Update применяет частичное обновление. Новое отображаемое имя архивируется
// рядом с исходным городом: "{new} ({original})".
func (uc *DestinationUseCase) Update(ctx context.Context, id string, req dto.UpdateDestinationRequest) error {
	upd := domain.DestinationUpdate{
		UserNote:         req.UserNote,
		PointsOfInterest: req.PointsOfInterest,
		Restaurants:      req.Restaurants,
	}

	if req.DisplayCity != nil {
		existing, err := uc.destRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		annotated := fmt.Sprintf("%s (%s)", *req.DisplayCity, existing.City)
		upd.DisplayCity = &annotated
	}

	if err := uc.destRepo.Update(ctx, id, upd); err != nil {
		return err
	}

	uc.invalidate(ctx, id)
	return nil
}

// RemoveListItem удаляет элемент спискового поля по позиции и перезаписывает
// список целиком. Конкурентные удаления по одному id гоняются на
// read-modify-write: версионирования нет, последняя запись побеждает.
func (uc *DestinationUseCase) RemoveListItem(ctx context.Context, id, field string, index int) error {
	if index < 0 {
		return apperrors.ErrInvalidIndex
	}

	dest, err := uc.destRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	items, ok := dest.ListField(field)
	if !ok {
		return apperrors.ErrInvalidListField
	}
	if index >= len(items) {
		return apperrors.ErrIndexOutOfRange
	}

	remaining := make([]domain.Place, 0, len(items)-1)
	remaining = append(remaining, items[:index]...)
	remaining = append(remaining, items[index+1:]...)

	upd := domain.DestinationUpdate{}
	switch field {
	case domain.FieldPointsOfInterest:
		upd.PointsOfInterest = &remaining
	case domain.FieldRestaurants:
		upd.Restaurants = &remaining
	}

	if err := uc.destRepo.Update(ctx, id, upd); err != nil {
		return err
	}

	uc.invalidate(ctx, id)
	return nil
}

// Delete удаляет дестинацию; идемпотентно
func (uc *DestinationUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.destRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidate(ctx, id)
	return nil
}

func (uc *DestinationUseCase) invalidate(ctx context.Context, id string) {
	if err := uc.cacheRepo.DeleteDestination(ctx, id); err != nil {
		uc.logger.Warn("Destination cache invalidation failed", zap.String("id", id), zap.Error(err))
	}
}
