package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/reelmedia/reel/internal/catalog/domain"
	"github.com/reelmedia/reel/pkg/errors"
	"github.com/reelmedia/reel/pkg/events"
)

// Embedded child operations. Every one of them loads the owning movie
// document first, so a missing movie always answers "movie not found"
// while a missing child inside an existing movie answers with the
// child's own message. Changes persist by saving the whole document.

// ListMovieActors returns the actors embedded in a movie.
func (s *CatalogService) ListMovieActors(ctx context.Context, movieID uuid.UUID) ([]domain.Actor, error) {
	movie, err := s.repo.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return movie.Actors, nil
}

// AddMovieActor appends a new actor to a movie's embedded collection.
// The movie is resolved before the body is validated, so a missing
// movie answers not-found even when the body is also invalid.
func (s *CatalogService) AddMovieActor(ctx context.Context, movieID uuid.UUID, actor domain.Actor) (*domain.Actor, error) {
	movie, err := s.repo.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if err := validateActor(&actor); err != nil {
		return nil, err
	}

	actor.ID = uuid.New()
	movie.Actors = append(movie.Actors, actor)

	if err := s.repo.SaveMovie(ctx, movie); err != nil {
		return nil, err
	}

	s.publish(ctx, events.MovieUpdated, movie.ID.String())

	return &actor, nil
}

// GetMovieActor returns one embedded actor.
func (s *CatalogService) GetMovieActor(ctx context.Context, movieID, actorID uuid.UUID) (*domain.Actor, error) {
	movie, err := s.repo.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	actor, ok := movie.FindActor(actorID)
	if !ok {
		return nil, errors.NotFound("actor not found")
	}
	return actor, nil
}

// UpdateMovieActor merges a patch into one embedded actor.
func (s *CatalogService) UpdateMovieActor(ctx context.Context, movieID, actorID uuid.UUID, patch domain.ActorPatch) (*domain.Actor, error) {
	movie, err := s.repo.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	actor, ok := movie.FindActor(actorID)
	if !ok {
		return nil, errors.NotFound("actor not found")
	}

	patch.Apply(actor)

	if err := s.repo.SaveMovie(ctx, movie); err != nil {
		return nil, err
	}

	s.publish(ctx, events.MovieUpdated, movie.ID.String())

	return actor, nil
}

// DeleteMovieActor removes one embedded actor, preserving the order of
// the remaining entries.
func (s *CatalogService) DeleteMovieActor(ctx context.Context, movieID, actorID uuid.UUID) error {
	movie, err := s.repo.GetMovie(ctx, movieID)
	if err != nil {
		return err
	}

	if !movie.RemoveActor(actorID) {
		return errors.NotFound("actor not found")
	}

	if err := s.repo.SaveMovie(ctx, movie); err != nil {
		return err
	}

	s.publish(ctx, events.MovieUpdated, movie.ID.String())

	return nil
}

// ListMovieGenres returns the genres embedded in a movie.
func (s *CatalogService) ListMovieGenres(ctx context.Context, movieID uuid.UUID) ([]domain.Genre, error) {
	movie, err := s.repo.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return movie.Genres, nil
}

// AddMovieGenre appends a new genre to a movie's embedded collection.
func (s *CatalogService) AddMovieGenre(ctx context.Context, movieID uuid.UUID, genre domain.Genre) (*domain.Genre, error) {
	movie, err := s.repo.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	genre.ID = uuid.New()
	movie.Genres = append(movie.Genres, genre)

	if err := s.repo.SaveMovie(ctx, movie); err != nil {
		return nil, err
	}

	s.publish(ctx, events.MovieUpdated, movie.ID.String())

	return &genre, nil
}

// GetMovieGenre returns one embedded genre.
func (s *CatalogService) GetMovieGenre(ctx context.Context, movieID, genreID uuid.UUID) (*domain.Genre, error) {
	movie, err := s.repo.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	genre, ok := movie.FindGenre(genreID)
	if !ok {
		return nil, errors.NotFound("genre not found")
	}
	return genre, nil
}

// UpdateMovieGenre merges a patch into one embedded genre.
func (s *CatalogService) UpdateMovieGenre(ctx context.Context, movieID, genreID uuid.UUID, patch domain.GenrePatch) (*domain.Genre, error) {
	movie, err := s.repo.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	genre, ok := movie.FindGenre(genreID)
	if !ok {
		return nil, errors.NotFound("genre not found")
	}

	patch.Apply(genre)

	if err := s.repo.SaveMovie(ctx, movie); err != nil {
		return nil, err
	}

	s.publish(ctx, events.MovieUpdated, movie.ID.String())

	return genre, nil
}

// DeleteMovieGenre removes one embedded genre, preserving the order of
// the remaining entries.
func (s *CatalogService) DeleteMovieGenre(ctx context.Context, movieID, genreID uuid.UUID) error {
	movie, err := s.repo.GetMovie(ctx, movieID)
	if err != nil {
		return err
	}

	if !movie.RemoveGenre(genreID) {
		return errors.NotFound("genre not found")
	}

	if err := s.repo.SaveMovie(ctx, movie); err != nil {
		return err
	}

	s.publish(ctx, events.MovieUpdated, movie.ID.String())

	return nil
}
