package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reelmedia/reel/internal/catalog/domain"
	"github.com/reelmedia/reel/pkg/errors"
)

// Standalone catalog routes under /api/actors and /api/genres. These
// operate on their own tables and never touch embedded movie copies.

// ListActors handles GET /api/actors.
func (h *Handler) ListActors(c *gin.Context) {
	actors, err := h.svc.ListActors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, actors)
}

// CreateActor handles POST /api/actors.
func (h *Handler) CreateActor(c *gin.Context) {
	var actor domain.Actor
	if err := c.ShouldBindJSON(&actor); err != nil {
		respondError(c, errors.BadRequest("invalid request body"))
		return
	}

	created, err := h.svc.CreateActor(c.Request.Context(), &actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetActor handles GET /api/actors/:id.
func (h *Handler) GetActor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actor, err := h.svc.GetActor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, actor)
}

// UpdateActor handles PUT /api/actors/:id.
func (h *Handler) UpdateActor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req actorPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.BadRequest("invalid request body"))
		return
	}

	patch := domain.ActorPatch{
		Name:    req.Name,
		Surname: req.Surname,
		Age:     req.Age,
		Country: req.Country,
	}

	actor, err := h.svc.UpdateActor(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, actor)
}

// DeleteActor handles DELETE /api/actors/:id.
func (h *Handler) DeleteActor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteActor(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "actor deleted"})
}

// ListGenres handles GET /api/genres.
func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.svc.ListGenres(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

// CreateGenre handles POST /api/genres.
func (h *Handler) CreateGenre(c *gin.Context) {
	var genre domain.Genre
	if err := c.ShouldBindJSON(&genre); err != nil {
		respondError(c, errors.BadRequest("invalid request body"))
		return
	}

	created, err := h.svc.CreateGenre(c.Request.Context(), &genre)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetGenre handles GET /api/genres/:id.
func (h *Handler) GetGenre(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	genre, err := h.svc.GetGenre(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, genre)
}

// UpdateGenre handles PUT /api/genres/:id.
func (h *Handler) UpdateGenre(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req genrePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.BadRequest("invalid request body"))
		return
	}

	patch := domain.GenrePatch{
		Name:        req.Name,
		Description: req.Description,
	}

	genre, err := h.svc.UpdateGenre(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, genre)
}

// DeleteGenre handles DELETE /api/genres/:id.
func (h *Handler) DeleteGenre(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteGenre(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "genre deleted"})
}
