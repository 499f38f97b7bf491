package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/reelmedia/reel/internal/user/repository"
	"github.com/reelmedia/reel/pkg/auth"
	"github.com/reelmedia/reel/pkg/errors"
	"github.com/reelmedia/reel/test/testutil"
)

type UserRepositoryTestSuite struct {
	suite.Suite

	repo repository.Repository
	ctx  context.Context
}

func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.repo = repository.NewGormRepository(testutil.NewTestDB(suite.T()))
	suite.ctx = context.Background()
}

func (suite *UserRepositoryTestSuite) TestCreateAndGetUser() {
	// Arrange
	user := testutil.CreateTestUser("alice", auth.RoleAdmin)

	// Act
	err := suite.repo.CreateUser(suite.ctx, user)

	// Assert
	suite.NoError(err)

	retrieved, err := suite.repo.GetUser(suite.ctx, user.ID)
	suite.NoError(err)
	suite.Equal("alice", retrieved.Username)
	suite.Equal(auth.RoleAdmin, retrieved.Role)
	suite.True(retrieved.CheckPassword("testpass123"))
}

func (suite *UserRepositoryTestSuite) TestCreateUser_DuplicateUsername() {
	// Arrange
	first := testutil.CreateTestUser("alice", auth.RoleUser)
	suite.Require().NoError(suite.repo.CreateUser(suite.ctx, first))

	// Act
	err := suite.repo.CreateUser(suite.ctx, testutil.CreateTestUser("alice", auth.RoleAdmin))

	// Assert
	suite.True(errors.IsConflict(err))

	// The original account's credentials are untouched
	retrieved, err := suite.repo.GetUser(suite.ctx, first.ID)
	suite.NoError(err)
	suite.Equal(auth.RoleUser, retrieved.Role)
	suite.True(retrieved.CheckPassword("testpass123"))
}

func (suite *UserRepositoryTestSuite) TestGetUserByUsername() {
	user := testutil.CreateTestUser("bob", auth.RoleUser)
	suite.Require().NoError(suite.repo.CreateUser(suite.ctx, user))

	retrieved, err := suite.repo.GetUserByUsername(suite.ctx, "bob")
	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)

	_, err = suite.repo.GetUserByUsername(suite.ctx, "ghost")
	suite.True(errors.IsNotFound(err))
}

func (suite *UserRepositoryTestSuite) TestGetUser_NotFound() {
	_, err := suite.repo.GetUser(suite.ctx, uuid.New())

	suite.True(errors.IsNotFound(err))
}

func (suite *UserRepositoryTestSuite) TestUserExists() {
	suite.Require().NoError(suite.repo.CreateUser(suite.ctx, testutil.CreateTestUser("carol", auth.RoleUser)))

	exists, err := suite.repo.UserExists(suite.ctx, "carol")
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.UserExists(suite.ctx, "ghost")
	suite.NoError(err)
	suite.False(exists)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
