package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/destination-service/internal/domain"
	apperrors "github.com/destination-service/internal/pkg/errors"
	"github.com/destination-service/internal/usecase"
	"github.com/destination-service/internal/usecase/dto"
)

func newCustomLocationUseCase() (*usecase.CustomLocationUseCase, *MockCustomLocationRepository) {
	repo := new(MockCustomLocationRepository)
	uc := usecase.NewCustomLocationUseCase(repo, zap.NewNop())
	return uc, repo
}

func floatPtr(v float64) *float64 { return &v }

func TestCustomLocationUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success assigns opaque id", func(t *testing.T) {
		uc, repo := newCustomLocationUseCase()

		repo.On("Insert", ctx, mock.AnythingOfType("*domain.CustomLocation")).Return(nil)

		loc, err := uc.Create(ctx, dto.CreateCustomLocationRequest{
			Name: "Grandma's house",
			Lat:  floatPtr(51.5074),
			Lon:  floatPtr(-0.1278),
		})

		require.NoError(t, err)
		assert.Len(t, loc.ID, 32)
		assert.Equal(t, "Grandma's house", loc.Name)
		assert.Equal(t, 51.5074, loc.Lat)
		assert.Equal(t, -0.1278, loc.Lon)
		repo.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		uc, repo := newCustomLocationUseCase()

		_, err := uc.Create(ctx, dto.CreateCustomLocationRequest{
			Lat: floatPtr(51.5074),
			Lon: floatPtr(-0.1278),
		})

		assert.ErrorIs(t, err, apperrors.ErrMissingFields)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("missing coordinate", func(t *testing.T) {
		uc, repo := newCustomLocationUseCase()

		_, err := uc.Create(ctx, dto.CreateCustomLocationRequest{
			Name: "Grandma's house",
			Lat:  floatPtr(51.5074),
		})

		assert.ErrorIs(t, err, apperrors.ErrMissingFields)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("zero coordinates are valid", func(t *testing.T) {
		uc, repo := newCustomLocationUseCase()

		repo.On("Insert", ctx, mock.AnythingOfType("*domain.CustomLocation")).Return(nil)

		loc, err := uc.Create(ctx, dto.CreateCustomLocationRequest{
			Name: "Null Island",
			Lat:  floatPtr(0),
			Lon:  floatPtr(0),
		})

		require.NoError(t, err)
		assert.Equal(t, 0.0, loc.Lat)
		assert.Equal(t, 0.0, loc.Lon)
	})
}

func TestCustomLocationUseCase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc, repo := newCustomLocationUseCase()

		expected := &domain.CustomLocation{ID: "abc", Name: "Grandma's house"}
		repo.On("GetByID", ctx, "abc").Return(expected, nil)

		got, err := uc.GetByID(ctx, "abc")

		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newCustomLocationUseCase()

		repo.On("GetByID", ctx, "missing").Return(nil, apperrors.ErrCustomLocationNotFound)

		_, err := uc.GetByID(ctx, "missing")

		assert.ErrorIs(t, err, apperrors.ErrCustomLocationNotFound)
	})
}

func TestCustomLocationUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update forwards only provided fields", func(t *testing.T) {
		uc, repo := newCustomLocationUseCase()

		name := "Summer cabin"
		repo.On("Update", ctx, "abc", mock.MatchedBy(func(upd domain.CustomLocationUpdate) bool {
			return upd.Name != nil && *upd.Name == name && upd.Lat == nil && upd.Lon == nil
		})).Return(nil)

		err := uc.Update(ctx, "abc", dto.UpdateCustomLocationRequest{Name: &name})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		uc, repo := newCustomLocationUseCase()

		repo.On("Update", ctx, "missing", mock.Anything).
			Return(apperrors.ErrCustomLocationNotFound)

		err := uc.Update(ctx, "missing", dto.UpdateCustomLocationRequest{})

		assert.ErrorIs(t, err, apperrors.ErrCustomLocationNotFound)
	})
}

func TestCustomLocationUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	uc, repo := newCustomLocationUseCase()

	// Deleting an unknown id is not an error
	repo.On("Delete", ctx, "missing").Return(nil)

	err := uc.Delete(ctx, "missing")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCustomLocationUseCase_List(t *testing.T) {
	ctx := context.Background()
	uc, repo := newCustomLocationUseCase()

	expected := []domain.CustomLocation{{ID: "abc"}, {ID: "def"}}
	repo.On("List", ctx).Return(expected, nil)

	got, err := uc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
