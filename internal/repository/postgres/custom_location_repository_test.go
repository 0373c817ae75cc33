package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/destination-service/internal/domain"
	"github.com/destination-service/internal/domain/repository"
	apperrors "github.com/destination-service/internal/pkg/errors"
	"github.com/destination-service/internal/repository/postgres"
)

type CustomLocationRepositorySuite struct {
	suite.Suite
	db   *postgres.DB
	repo repository.CustomLocationRepository
	ctx  context.Context
}

func (s *CustomLocationRepositorySuite) SetupSuite() {
	s.db = setupTestDB(s.T())
	s.repo = postgres.NewCustomLocationRepository(s.db)
}

func (s *CustomLocationRepositorySuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *CustomLocationRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	cleanupTables(s.T(), s.db)
}

func (s *CustomLocationRepositorySuite) TestInsertAndGetByID() {
	loc := &domain.CustomLocation{
		ID:   "3f2a9c1d8b7e6f5a4d3c2b1a09876543",
		Name: "Grandma's house",
		Lat:  51.5074,
		Lon:  -0.1278,
	}

	s.Require().NoError(s.repo.Insert(s.ctx, loc))

	got, err := s.repo.GetByID(s.ctx, loc.ID)
	s.Require().NoError(err)
	s.Equal(loc, got)
}

func (s *CustomLocationRepositorySuite) TestGetByIDNotFound() {
	_, err := s.repo.GetByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrCustomLocationNotFound)
}

func (s *CustomLocationRepositorySuite) TestList() {
	s.Require().NoError(s.repo.Insert(s.ctx, &domain.CustomLocation{ID: "a", Name: "one"}))
	s.Require().NoError(s.repo.Insert(s.ctx, &domain.CustomLocation{ID: "b", Name: "two"}))

	locations, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(locations, 2)
}

func (s *CustomLocationRepositorySuite) TestUpdatePartial() {
	loc := &domain.CustomLocation{ID: "a", Name: "cabin", Lat: 60.0, Lon: 10.0}
	s.Require().NoError(s.repo.Insert(s.ctx, loc))

	name := "Summer cabin"
	err := s.repo.Update(s.ctx, loc.ID, domain.CustomLocationUpdate{Name: &name})
	s.Require().NoError(err)

	got, err := s.repo.GetByID(s.ctx, loc.ID)
	s.Require().NoError(err)
	s.Equal("Summer cabin", got.Name)
	s.Equal(60.0, got.Lat)
	s.Equal(10.0, got.Lon)
}

func (s *CustomLocationRepositorySuite) TestUpdateUnknownID() {
	name := "name"
	err := s.repo.Update(s.ctx, "missing", domain.CustomLocationUpdate{Name: &name})
	s.ErrorIs(err, apperrors.ErrCustomLocationNotFound)
}

func (s *CustomLocationRepositorySuite) TestDeleteIdempotent() {
	loc := &domain.CustomLocation{ID: "a", Name: "cabin"}
	s.Require().NoError(s.repo.Insert(s.ctx, loc))

	s.NoError(s.repo.Delete(s.ctx, loc.ID))
	s.NoError(s.repo.Delete(s.ctx, loc.ID))

	_, err := s.repo.GetByID(s.ctx, loc.ID)
	s.ErrorIs(err, apperrors.ErrCustomLocationNotFound)
}

func TestCustomLocationRepositorySuite(t *testing.T) {
	suite.Run(t, new(CustomLocationRepositorySuite))
}
