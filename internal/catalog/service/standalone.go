package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/reelmedia/reel/internal/catalog/domain"
	"github.com/reelmedia/reel/pkg/errors"
	"github.com/reelmedia/reel/pkg/events"
)

// Standalone catalog operations. These tables share the actor and
// genre shapes with the embedded collections but are never read or
// written by any movie operation.

// ListActors returns every actor in the standalone catalog.
func (s *CatalogService) ListActors(ctx context.Context) ([]*domain.Actor, error) {
	return s.repo.ListActors(ctx)
}

// CreateActor stores a new standalone actor.
func (s *CatalogService) CreateActor(ctx context.Context, actor *domain.Actor) (*domain.Actor, error) {
	if err := validateActor(actor); err != nil {
		return nil, err
	}

	actor.ID = uuid.New()
	if err := s.repo.CreateActor(ctx, actor); err != nil {
		return nil, err
	}

	s.publish(ctx, events.ActorCreated, actor.ID.String())

	return actor, nil
}

// GetActor retrieves a standalone actor by ID.
func (s *CatalogService) GetActor(ctx context.Context, id uuid.UUID) (*domain.Actor, error) {
	return s.repo.GetActor(ctx, id)
}

// UpdateActor merges a patch into a standalone actor.
func (s *CatalogService) UpdateActor(ctx context.Context, id uuid.UUID, patch domain.ActorPatch) (*domain.Actor, error) {
	actor, err := s.repo.GetActor(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(actor)

	if err := s.repo.SaveActor(ctx, actor); err != nil {
		return nil, err
	}

	s.publish(ctx, events.ActorUpdated, actor.ID.String())

	return actor, nil
}

// DeleteActor removes a standalone actor by ID.
func (s *CatalogService) DeleteActor(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteActor(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, events.ActorDeleted, id.String())

	return nil
}

// ListGenres returns every genre in the standalone catalog.
func (s *CatalogService) ListGenres(ctx context.Context) ([]*domain.Genre, error) {
	return s.repo.ListGenres(ctx)
}

// CreateGenre stores a new standalone genre. Genre names are unique in
// this catalog; a duplicate name is a conflict.
func (s *CatalogService) CreateGenre(ctx context.Context, genre *domain.Genre) (*domain.Genre, error) {
	if genre.Name == "" {
		return nil, errors.BadRequest("name is required")
	}

	genre.ID = uuid.New()
	if err := s.repo.CreateGenre(ctx, genre); err != nil {
		return nil, err
	}

	s.publish(ctx, events.GenreCreated, genre.ID.String())

	return genre, nil
}

// GetGenre retrieves a standalone genre by ID.
func (s *CatalogService) GetGenre(ctx context.Context, id uuid.UUID) (*domain.Genre, error) {
	return s.repo.GetGenre(ctx, id)
}

// UpdateGenre merges a patch into a standalone genre.
func (s *CatalogService) UpdateGenre(ctx context.Context, id uuid.UUID, patch domain.GenrePatch) (*domain.Genre, error) {
	genre, err := s.repo.GetGenre(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(genre)

	if err := s.repo.SaveGenre(ctx, genre); err != nil {
		return nil, err
	}

	s.publish(ctx, events.GenreUpdated, genre.ID.String())

	return genre, nil
}

// DeleteGenre removes a standalone genre by ID.
func (s *CatalogService) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteGenre(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, events.GenreDeleted, id.String())

	return nil
}
