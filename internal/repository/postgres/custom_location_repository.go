package postgres

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/destination-service/internal/domain"
	"github.com/destination-service/internal/domain/repository"
	apperrors "github.com/destination-service/internal/pkg/errors"
)

type customLocationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCustomLocationRepository(db *DB) repository.CustomLocationRepository {
	return &customLocationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *customLocationRepository) List(ctx context.Context) ([]domain.CustomLocation, error) {
	locations := make([]domain.CustomLocation, 0)

	err := r.db.SelectContext(ctx, &locations,
		`SELECT id, name, lat, lon FROM custom_locations`)
	if err != nil {
		r.logger.Error("Failed to list custom locations", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return locations, nil
}

func (r *customLocationRepository) GetByID(ctx context.Context, id string) (*domain.CustomLocation, error) {
	var loc domain.CustomLocation

	err := r.db.GetContext(ctx, &loc,
		`SELECT id, name, lat, lon FROM custom_locations WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrCustomLocationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get custom location by ID", zap.String("id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &loc, nil
}

func (r *customLocationRepository) Insert(ctx context.Context, loc *domain.CustomLocation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO custom_locations (id, name, lat, lon) VALUES ($1, $2, $3, $4)`,
		loc.ID, loc.Name, loc.Lat, loc.Lon,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			r.logger.Error("Custom location id collision", zap.String("id", loc.ID))
			return apperrors.ErrDuplicateID
		}
		r.logger.Error("Failed to insert custom location", zap.String("id", loc.ID), zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	return nil
}

func (r *customLocationRepository) Update(ctx context.Context, id string, upd domain.CustomLocationUpdate) error {
	if upd.IsEmpty() {
		return nil
	}

	builder := sq.Update("custom_locations").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
	}
	if upd.Lat != nil {
		builder = builder.Set("lat", *upd.Lat)
	}
	if upd.Lon != nil {
		builder = builder.Set("lon", *upd.Lon)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		r.logger.Error("Failed to build update query", zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update custom location", zap.String("id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read rows affected", zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	if affected == 0 {
		return apperrors.ErrCustomLocationNotFound
	}

	return nil
}

func (r *customLocationRepository) Delete(ctx context.Context, id string) error {
	// Удаление идемпотентно: отсутствующий id не ошибка
	_, err := r.db.ExecContext(ctx, `DELETE FROM custom_locations WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete custom location", zap.String("id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	return nil
}
