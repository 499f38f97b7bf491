package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/reelmedia/reel/internal/catalog/domain"
	"github.com/reelmedia/reel/pkg/errors"
	"github.com/reelmedia/reel/pkg/store"
)

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM repository
func NewGormRepository(db *gorm.DB) Repository {
	return &GormRepository{db: db}
}

// Movie documents

func (r *GormRepository) CreateMovie(ctx context.Context, movie *domain.Movie) error {
	if err := store.Create(ctx, r.db, movie); err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

func (r *GormRepository) GetMovie(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	movie, err := store.FindByID[domain.Movie](ctx, r.db, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("movie not found")
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return movie, nil
}

func (r *GormRepository) ListMovies(ctx context.Context) ([]*domain.Movie, error) {
	movies, err := store.FindAll[domain.Movie](ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (r *GormRepository) SaveMovie(ctx context.Context, movie *domain.Movie) error {
	if err := store.Save(ctx, r.db, movie); err != nil {
		return fmt.Errorf("failed to save movie: %w", err)
	}
	return nil
}

func (r *GormRepository) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	if err := store.Delete[domain.Movie](ctx, r.db, id); err != nil {
		if errors.IsNotFound(err) {
			return errors.NotFound("movie not found")
		}
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	return nil
}

// Standalone actors

func (r *GormRepository) CreateActor(ctx context.Context, actor *domain.Actor) error {
	if err := store.Create(ctx, r.db, actor); err != nil {
		return fmt.Errorf("failed to create actor: %w", err)
	}
	return nil
}

func (r *GormRepository) GetActor(ctx context.Context, id uuid.UUID) (*domain.Actor, error) {
	actor, err := store.FindByID[domain.Actor](ctx, r.db, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("actor not found")
		}
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}
	return actor, nil
}

func (r *GormRepository) ListActors(ctx context.Context) ([]*domain.Actor, error) {
	actors, err := store.FindAll[domain.Actor](ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}
	return actors, nil
}

func (r *GormRepository) SaveActor(ctx context.Context, actor *domain.Actor) error {
	if err := store.Save(ctx, r.db, actor); err != nil {
		return fmt.Errorf("failed to save actor: %w", err)
	}
	return nil
}

func (r *GormRepository) DeleteActor(ctx context.Context, id uuid.UUID) error {
	if err := store.Delete[domain.Actor](ctx, r.db, id); err != nil {
		if errors.IsNotFound(err) {
			return errors.NotFound("actor not found")
		}
		return fmt.Errorf("failed to delete actor: %w", err)
	}
	return nil
}

// Standalone genres

func (r *GormRepository) CreateGenre(ctx context.Context, genre *domain.Genre) error {
	if err := store.Create(ctx, r.db, genre); err != nil {
		if errors.IsConflict(err) {
			return errors.Conflict("genre name already exists")
		}
		return fmt.Errorf("failed to create genre: %w", err)
	}
	return nil
}

func (r *GormRepository) GetGenre(ctx context.Context, id uuid.UUID) (*domain.Genre, error) {
	genre, err := store.FindByID[domain.Genre](ctx, r.db, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("genre not found")
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}
	return genre, nil
}

func (r *GormRepository) ListGenres(ctx context.Context) ([]*domain.Genre, error) {
	genres, err := store.FindAll[domain.Genre](ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}

func (r *GormRepository) SaveGenre(ctx context.Context, genre *domain.Genre) error {
	if err := store.Save(ctx, r.db, genre); err != nil {
		if errors.IsConflict(err) {
			return errors.Conflict("genre name already exists")
		}
		return fmt.Errorf("failed to save genre: %w", err)
	}
	return nil
}

func (r *GormRepository) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	if err := store.Delete[domain.Genre](ctx, r.db, id); err != nil {
		if errors.IsNotFound(err) {
			return errors.NotFound("genre not found")
		}
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	return nil
}
