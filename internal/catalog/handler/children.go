package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reelmedia/reel/internal/catalog/domain"
	"github.com/reelmedia/reel/pkg/errors"
)

// Embedded child routes, scoped under /api/movies/:id.

type actorPatchRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Age     *int    `json:"age"`
	Country *string `json:"country"`
}

type genrePatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ListMovieActors handles GET /api/movies/:id/actors.
func (h *Handler) ListMovieActors(c *gin.Context) {
	movieID, ok := parseID(c, "id")
	if !ok {
		return
	}

	actors, err := h.svc.ListMovieActors(c.Request.Context(), movieID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, actors)
}

// AddMovieActor handles POST /api/movies/:id/actors.
func (h *Handler) AddMovieActor(c *gin.Context) {
	movieID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var actor domain.Actor
	if err := c.ShouldBindJSON(&actor); err != nil {
		respondError(c, errors.BadRequest("invalid request body"))
		return
	}

	created, err := h.svc.AddMovieActor(c.Request.Context(), movieID, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetMovieActor handles GET /api/movies/:id/actors/:actorId.
func (h *Handler) GetMovieActor(c *gin.Context) {
	movieID, ok := parseID(c, "id")
	if !ok {
		return
	}
	actorID, ok := parseID(c, "actorId")
	if !ok {
		return
	}

	actor, err := h.svc.GetMovieActor(c.Request.Context(), movieID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, actor)
}

// UpdateMovieActor handles PUT /api/movies/:id/actors/:actorId. Only
// supplied fields change; a value of the wrong JSON type is rejected.
func (h *Handler) UpdateMovieActor(c *gin.Context) {
	movieID, ok := parseID(c, "id")
	if !ok {
		return
	}
	actorID, ok := parseID(c, "actorId")
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

	actor, err := h.svc.UpdateMovieActor(c.Request.Context(), movieID, actorID, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, actor)
}

// DeleteMovieActor handles DELETE /api/movies/:id/actors/:actorId.
func (h *Handler) DeleteMovieActor(c *gin.Context) {
	movieID, ok := parseID(c, "id")
	if !ok {
		return
	}
	actorID, ok := parseID(c, "actorId")
	if !ok {
		return
	}

	if err := h.svc.DeleteMovieActor(c.Request.Context(), movieID, actorID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "actor removed from movie"})
}

// ListMovieGenres handles GET /api/movies/:id/genres.
func (h *Handler) ListMovieGenres(c *gin.Context) {
	movieID, ok := parseID(c, "id")
	if !ok {
		return
	}

	genres, err := h.svc.ListMovieGenres(c.Request.Context(), movieID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, genres)
}

// AddMovieGenre handles POST /api/movies/:id/genres.
func (h *Handler) AddMovieGenre(c *gin.Context) {
	movieID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var genre domain.Genre
	if err := c.ShouldBindJSON(&genre); err != nil {
		respondError(c, errors.BadRequest("invalid request body"))
		return
	}

	created, err := h.svc.AddMovieGenre(c.Request.Context(), movieID, genre)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetMovieGenre handles GET /api/movies/:id/genres/:genreId.
func (h *Handler) GetMovieGenre(c *gin.Context) {
	movieID, ok := parseID(c, "id")
	if !ok {
		return
	}
	genreID, ok := parseID(c, "genreId")
	if !ok {
		return
	}

	genre, err := h.svc.GetMovieGenre(c.Request.Context(), movieID, genreID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, genre)
}

// UpdateMovieGenre handles PUT /api/movies/:id/genres/:genreId.
func (h *Handler) UpdateMovieGenre(c *gin.Context) {
	movieID, ok := parseID(c, "id")
	if !ok {
		return
	}
	genreID, ok := parseID(c, "genreId")
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

	genre, err := h.svc.UpdateMovieGenre(c.Request.Context(), movieID, genreID, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, genre)
}

// DeleteMovieGenre handles DELETE /api/movies/:id/genres/:genreId.
func (h *Handler) DeleteMovieGenre(c *gin.Context) {
	movieID, ok := parseID(c, "id")
	if !ok {
		return
	}
	genreID, ok := parseID(c, "genreId")
	if !ok {
		return
	}

	if err := h.svc.DeleteMovieGenre(c.Request.Context(), movieID, genreID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "genre removed from movie"})
}
