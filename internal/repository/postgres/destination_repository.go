package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/destination-service/internal/domain"
	"github.com/destination-service/internal/domain/repository"
	apperrors "github.com/destination-service/internal/pkg/errors"
)

// Код unique_violation в PostgreSQL.
const pgUniqueViolation = "23505"

const destinationColumns = `
	id, city, display_city, country, lat, lon,
	weather, points_of_interest, restaurants, weather_favorable, user_note
`

type destinationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewDestinationRepository(db *DB) repository.DestinationRepository {
	return &destinationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *destinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list destinations", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	defer rows.Close()

	destinations := make([]domain.Destination, 0)
	for rows.Next() {
		dest, err := scanDestination(rows)
		if err != nil {
			r.logger.Error("Failed to scan destination", zap.Error(err))
			continue
		}
		destinations = append(destinations, *dest)
	}

	return destinations, nil
}

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`

	dest, err := scanDestination(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrDestinationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get destination by ID", zap.String("id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return dest, nil
}

func (r *destinationRepository) Insert(ctx context.Context, dest *domain.Destination) error {
	weatherJSON, err := json.Marshal(dest.Weather)
	if err != nil {
		return apperrors.ErrDatabaseError
	}
	poisJSON, err := json.Marshal(placesOrEmpty(dest.PointsOfInterest))
	if err != nil {
		return apperrors.ErrDatabaseError
	}
	restaurantsJSON, err := json.Marshal(placesOrEmpty(dest.Restaurants))
	if err != nil {
		return apperrors.ErrDatabaseError
	}

	query := `
		INSERT INTO destinations (
			id, city, display_city, country, lat, lon,
			weather, points_of_interest, restaurants, weather_favorable, user_note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.db.ExecContext(ctx, query,
		dest.ID, dest.City, dest.DisplayCity, dest.Country, dest.Lat, dest.Lon,
		weatherJSON, poisJSON, restaurantsJSON, dest.WeatherFavorable, dest.UserNote,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			r.logger.Error("Destination id collision", zap.String("id", dest.ID))
			return apperrors.ErrDuplicateID
		}
		r.logger.Error("Failed to insert destination", zap.String("id", dest.ID), zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	return nil
}

func (r *destinationRepository) Update(ctx context.Context, id string, upd domain.DestinationUpdate) error {
	if upd.IsEmpty() {
		return nil
	}

	builder := sq.Update("destinations").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	if upd.DisplayCity != nil {
		builder = builder.Set("display_city", *upd.DisplayCity)
	}
	if upd.UserNote != nil {
		builder = builder.Set("user_note", *upd.UserNote)
	}
	if upd.PointsOfInterest != nil {
		poisJSON, err := json.Marshal(placesOrEmpty(*upd.PointsOfInterest))
		if err != nil {
			return apperrors.ErrDatabaseError
		}
		builder = builder.Set("points_of_interest", poisJSON)
	}
	if upd.Restaurants != nil {
		restaurantsJSON, err := json.Marshal(placesOrEmpty(*upd.Restaurants))
		if err != nil {
			return apperrors.ErrDatabaseError
		}
		builder = builder.Set("restaurants", restaurantsJSON)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		r.logger.Error("Failed to build update query", zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update destination", zap.String("id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read rows affected", zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	if affected == 0 {
		return apperrors.ErrDestinationNotFound
	}

	return nil
}

func (r *destinationRepository) Delete(ctx context.Context, id string) error {
	// Удаление идемпотентно: отсутствующий id не ошибка
	_, err := r.db.ExecContext(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete destination", zap.String("id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDestination(row rowScanner) (*domain.Destination, error) {
	var dest domain.Destination
	var weatherJSON, poisJSON, restaurantsJSON []byte

	err := row.Scan(
		&dest.ID, &dest.City, &dest.DisplayCity, &dest.Country, &dest.Lat, &dest.Lon,
		&weatherJSON, &poisJSON, &restaurantsJSON, &dest.WeatherFavorable, &dest.UserNote,
	)
	if err != nil {
		return nil, err
	}

	if len(weatherJSON) > 0 {
		if err := json.Unmarshal(weatherJSON, &dest.Weather); err != nil {
			return nil, err
		}
	}
	if len(poisJSON) > 0 {
		if err := json.Unmarshal(poisJSON, &dest.PointsOfInterest); err != nil {
			return nil, err
		}
	}
	if len(restaurantsJSON) > 0 {
		if err := json.Unmarshal(restaurantsJSON, &dest.Restaurants); err != nil {
			return nil, err
		}
	}

	return &dest, nil
}

// placesOrEmpty нормализует nil в пустой список, чтобы в JSONB не попадал null
func placesOrEmpty(places []domain.Place) []domain.Place {
	if places == nil {
		return []domain.Place{}
	}
	return places
}
