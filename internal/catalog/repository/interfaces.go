package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/reelmedia/reel/internal/catalog/domain"
)

// Repository defines the catalog persistence contract: movie
// documents plus the two standalone catalogs.
type Repository interface {
	// Movie documents

	CreateMovie(ctx context.Context, movie *domain.Movie) error
	GetMovie(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
	ListMovies(ctx context.Context) ([]*domain.Movie, error)
	SaveMovie(ctx context.Context, movie *domain.Movie) error
	DeleteMovie(ctx context.Context, id uuid.UUID) error

	// Standalone actors

	CreateActor(ctx context.Context, actor *domain.Actor) error
	GetActor(ctx context.Context, id uuid.UUID) (*domain.Actor, error)
	ListActors(ctx context.Context) ([]*domain.Actor, error)
	SaveActor(ctx context.Context, actor *domain.Actor) error
	DeleteActor(ctx context.Context, id uuid.UUID) error

	// Standalone genres

	CreateGenre(ctx context.Context, genre *domain.Genre) error
	GetGenre(ctx context.Context, id uuid.UUID) (*domain.Genre, error)
	ListGenres(ctx context.Context) ([]*domain.Genre, error)
	SaveGenre(ctx context.Context, genre *domain.Genre) error
	DeleteGenre(ctx context.Context, id uuid.UUID) error
}
