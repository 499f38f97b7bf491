package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/reelmedia/reel/internal/catalog/domain"
	"github.com/reelmedia/reel/pkg/errors"
)

type createMovieRequest struct {
	Title       string          `json:"title"`
	Director    string          `json:"director"`
	ReleaseYear int             `json:"releaseYear"`
	Actors      *[]domain.Actor `json:"actors"      binding:"required"`
	Genres      *[]domain.Genre `json:"genres"      binding:"required"`
}

type updateMovieRequest struct {
	Title       *string         `json:"title"`
	Director    *string         `json:"director"`
	ReleaseYear *int            `json:"releaseYear"`
	Actors      *[]domain.Actor `json:"actors"`
	Genres      *[]domain.Genre `json:"genres"`
}

// ListMovies handles GET /api/movies with its optional query filters.
func (h *Handler) ListMovies(c *gin.Context) {
	filter, err := movieFilterFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	movies, err := h.svc.ListMovies(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, movies)
}

// GetMovie handles GET /api/movies/:id.
func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	movie, err := h.svc.GetMovie(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, movie)
}

// CreateMovie handles POST /api/movies. The actors and genres arrays
// must be present; an empty array is accepted, absence or a non-array
// value is not.
func (h *Handler) CreateMovie(c *gin.Context) {
	var req createMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.BadRequest("title, director, releaseYear, actors and genres are required"))
		return
	}

	movie := &domain.Movie{
		Title:       req.Title,
		Director:    req.Director,
		ReleaseYear: req.ReleaseYear,
		Actors:      *req.Actors,
		Genres:      *req.Genres,
	}

	created, err := h.svc.CreateMovie(c.Request.Context(), movie)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateMovie handles PUT /api/movies/:id. Scalars update partially;
// a supplied actors or genres array replaces the embedded collection
// wholesale.
func (h *Handler) UpdateMovie(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.BadRequest("invalid request body"))
		return
	}

	update := domain.MovieUpdate{
		Title:       req.Title,
		Director:    req.Director,
		ReleaseYear: req.ReleaseYear,
		Actors:      req.Actors,
		Genres:      req.Genres,
	}

	movie, err := h.svc.UpdateMovie(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, movie)
}

// DeleteMovie handles DELETE /api/movies/:id.
func (h *Handler) DeleteMovie(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteMovie(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "movie deleted"})
}

// movieFilterFromQuery parses the optional list filters from the query
// string.
func movieFilterFromQuery(c *gin.Context) (domain.MovieFilter, error) {
	var filter domain.MovieFilter

	if v := c.Query("fromYear"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return filter, errors.BadRequest("fromYear must be a number")
		}
		filter.FromYear = &year
	}
	if v := c.Query("toYear"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return filter, errors.BadRequest("toYear must be a number")
		}
		filter.ToYear = &year
	}
	filter.Title = c.Query("title")
	filter.Genre = c.Query("genre")
	if v := c.Query("actorId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errors.BadRequest("actorId must be a valid id")
		}
		filter.ActorID = &id
	}

	return filter, nil
}
