package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/reelmedia/reel/internal/catalog/domain"
	"github.com/reelmedia/reel/internal/catalog/repository"
	"github.com/reelmedia/reel/pkg/errors"
	"github.com/reelmedia/reel/pkg/events"
	"github.com/reelmedia/reel/pkg/interfaces"
)

// CatalogService implements the movie catalog operations: movie
// documents, their embedded actor/genre collections and the two
// standalone catalogs.
type CatalogService struct {
	repo     repository.Repository
	eventBus interfaces.EventBus
	logger   interfaces.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	repo repository.Repository,
	eventBus interfaces.EventBus,
	logger interfaces.Logger,
) *CatalogService {
	return &CatalogService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// ListMovies returns all movies matching the filter. Filtering happens
// over the full collection; there is no pagination.
func (s *CatalogService) ListMovies(ctx context.Context, filter domain.MovieFilter) ([]*domain.Movie, error) {
	movies, err := s.repo.ListMovies(ctx)
	if err != nil {
		return nil, err
	}
	if filter.Empty() {
		return movies, nil
	}

	matched := make([]*domain.Movie, 0, len(movies))
	for _, m := range movies {
		if filter.Matches(m) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

// GetMovie retrieves a movie by ID.
func (s *CatalogService) GetMovie(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	return s.repo.GetMovie(ctx, id)
}

// CreateMovie validates and stores a new movie document, assigning
// identifiers to the movie and every embedded entry.
func (s *CatalogService) CreateMovie(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	if movie.Title == "" || movie.Director == "" || movie.ReleaseYear == 0 {
		return nil, errors.BadRequest("title, director and releaseYear are required")
	}
	if movie.Actors == nil || movie.Genres == nil {
		return nil, errors.BadRequest("actors and genres must be arrays")
	}

	movie.ID = uuid.New()
	movie.EnsureChildIDs()

	if err := s.repo.CreateMovie(ctx, movie); err != nil {
		return nil, err
	}

	s.logger.Info("Movie created",
		interfaces.String("movie_id", movie.ID.String()),
		interfaces.String("title", movie.Title))

	s.eventBus.PublishAsync(ctx, events.NewAggregateEvent(events.MovieCreated, movie.ID.String(), map[string]interface{}{
		"title": movie.Title,
	}))

	return movie, nil
}

// UpdateMovie applies a partial update to a movie. Supplied embedded
// collections replace the stored ones wholesale; the whole document is
// then saved, so concurrent updates resolve last-write-wins.
func (s *CatalogService) UpdateMovie(ctx context.Context, id uuid.UUID, update domain.MovieUpdate) (*domain.Movie, error) {
	movie, err := s.repo.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(movie)
	movie.EnsureChildIDs()

	if err := s.repo.SaveMovie(ctx, movie); err != nil {
		return nil, err
	}

	s.eventBus.PublishAsync(ctx, events.NewAggregateEvent(events.MovieUpdated, movie.ID.String(), map[string]interface{}{
		"title": movie.Title,
	}))

	return movie, nil
}

// DeleteMovie removes a movie document and with it every embedded entry.
func (s *CatalogService) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteMovie(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Movie deleted", interfaces.String("movie_id", id.String()))

	s.eventBus.PublishAsync(ctx, events.NewAggregateEvent(events.MovieDeleted, id.String(), nil))

	return nil
}

func validateActor(actor *domain.Actor) error {
	if actor.Name == "" || actor.Surname == "" || actor.Age <= 0 || actor.Country == "" {
		return errors.BadRequest("name, surname, age and country are required")
	}
	return nil
}

func (s *CatalogService) publish(ctx context.Context, eventType, aggregateID string) {
	s.eventBus.PublishAsync(ctx, events.NewAggregateEvent(eventType, aggregateID, nil))
}
