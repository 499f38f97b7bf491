package testutil

import (
	"github.com/google/uuid"

	catalogdomain "github.com/reelmedia/reel/internal/catalog/domain"
	userdomain "github.com/reelmedia/reel/internal/user/domain"
	"github.com/reelmedia/reel/pkg/auth"
)

// CreateTestUser creates a user fixture with a hashed password.
func CreateTestUser(username string, role auth.Role) *userdomain.User {
	user := &userdomain.User{
		ID:       uuid.New(),
		Username: username,
		Role:     role,
	}
	_ = user.SetPassword("testpass123")
	return user
}

// CreateTestActor creates an actor fixture.
func CreateTestActor(name string) *catalogdomain.Actor {
	return &catalogdomain.Actor{
		ID:      uuid.New(),
		Name:    name,
		Surname: "Stone",
		Age:     42,
		Country: "USA",
	}
}

// CreateTestGenre creates a genre fixture.
func CreateTestGenre(name string) *catalogdomain.Genre {
	return &catalogdomain.Genre{
		ID:          uuid.New(),
		Name:        name,
		Description: "A " + name + " movie",
	}
}

// CreateTestMovie creates a movie fixture with one embedded actor and
// one embedded genre.
func CreateTestMovie(title string, year int) *catalogdomain.Movie {
	return &catalogdomain.Movie{
		ID:          uuid.New(),
		Title:       title,
		Director:    "Jane Doe",
		ReleaseYear: year,
		Actors: []catalogdomain.Actor{
			{ID: uuid.New(), Name: "Sam", Surname: "Lee", Age: 35, Country: "UK"},
		},
		Genres: []catalogdomain.Genre{
			{ID: uuid.New(), Name: "Drama", Description: "Dramatic"},
		},
	}
}
