package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/reelmedia/reel/internal/catalog/repository"
	"github.com/reelmedia/reel/pkg/errors"
	"github.com/reelmedia/reel/test/testutil"
)

type CatalogRepositoryTestSuite struct {
	suite.Suite

	repo repository.Repository
	ctx  context.Context
}

func (suite *CatalogRepositoryTestSuite) SetupTest() {
	suite.repo = repository.NewGormRepository(testutil.NewTestDB(suite.T()))
	suite.ctx = context.Background()
}

func (suite *CatalogRepositoryTestSuite) TestMovieRoundTripKeepsEmbeddedChildren() {
	// Arrange
	movie := testutil.CreateTestMovie("The Long Voyage", 1999)

	// Act
	suite.Require().NoError(suite.repo.CreateMovie(suite.ctx, movie))
	retrieved, err := suite.repo.GetMovie(suite.ctx, movie.ID)

	// Assert
	suite.NoError(err)
	suite.Equal(movie.Title, retrieved.Title)
	suite.Require().Len(retrieved.Actors, 1)
	suite.Equal(movie.Actors[0].ID, retrieved.Actors[0].ID)
	suite.Equal("Sam", retrieved.Actors[0].Name)
	suite.Require().Len(retrieved.Genres, 1)
	suite.Equal("Drama", retrieved.Genres[0].Name)
}

func (suite *CatalogRepositoryTestSuite) TestGetMovie_NotFound() {
	_, err := suite.repo.GetMovie(suite.ctx, uuid.New())

	suite.True(errors.IsNotFound(err))
	suite.Contains(err.Error(), "movie not found")
}

func (suite *CatalogRepositoryTestSuite) TestSaveMovieReplacesDocument() {
	movie := testutil.CreateTestMovie("Old Title", 1990)
	suite.Require().NoError(suite.repo.CreateMovie(suite.ctx, movie))

	movie.Title = "New Title"
	movie.Actors = nil
	suite.Require().NoError(suite.repo.SaveMovie(suite.ctx, movie))

	retrieved, err := suite.repo.GetMovie(suite.ctx, movie.ID)
	suite.NoError(err)
	suite.Equal("New Title", retrieved.Title)
	suite.Empty(retrieved.Actors)
}

func (suite *CatalogRepositoryTestSuite) TestDeleteMovie() {
	movie := testutil.CreateTestMovie("Doomed", 2001)
	suite.Require().NoError(suite.repo.CreateMovie(suite.ctx, movie))

	suite.NoError(suite.repo.DeleteMovie(suite.ctx, movie.ID))

	_, err := suite.repo.GetMovie(suite.ctx, movie.ID)
	suite.True(errors.IsNotFound(err))

	suite.True(errors.IsNotFound(suite.repo.DeleteMovie(suite.ctx, movie.ID)))
}

func (suite *CatalogRepositoryTestSuite) TestStandaloneActorCRUD() {
	actor := testutil.CreateTestActor("Maria")
	suite.Require().NoError(suite.repo.CreateActor(suite.ctx, actor))

	retrieved, err := suite.repo.GetActor(suite.ctx, actor.ID)
	suite.NoError(err)
	suite.Equal("Maria", retrieved.Name)

	retrieved.Country = "Spain"
	suite.Require().NoError(suite.repo.SaveActor(suite.ctx, retrieved))

	updated, err := suite.repo.GetActor(suite.ctx, actor.ID)
	suite.NoError(err)
	suite.Equal("Spain", updated.Country)

	suite.NoError(suite.repo.DeleteActor(suite.ctx, actor.ID))
	_, err = suite.repo.GetActor(suite.ctx, actor.ID)
	suite.True(errors.IsNotFound(err))
}

func (suite *CatalogRepositoryTestSuite) TestCreateGenre_DuplicateName() {
	suite.Require().NoError(suite.repo.CreateGenre(suite.ctx, testutil.CreateTestGenre("Horror")))

	err := suite.repo.CreateGenre(suite.ctx, testutil.CreateTestGenre("Horror"))

	suite.True(errors.IsConflict(err))
}

func (suite *CatalogRepositoryTestSuite) TestListMovies() {
	suite.Require().NoError(suite.repo.CreateMovie(suite.ctx, testutil.CreateTestMovie("One", 1991)))
	suite.Require().NoError(suite.repo.CreateMovie(suite.ctx, testutil.CreateTestMovie("Two", 1992)))

	movies, err := suite.repo.ListMovies(suite.ctx)

	suite.NoError(err)
	suite.Len(movies, 2)
}

func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
