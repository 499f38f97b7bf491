package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/reelmedia/reel/internal/catalog/service"
	"github.com/reelmedia/reel/pkg/errors"
	"github.com/reelmedia/reel/pkg/interfaces"
)

// Handler exposes the catalog operations over HTTP. Request DTOs do
// the boundary shape validation so the service layer never sees raw
// JSON.
type Handler struct {
	svc    *service.CatalogService
	logger interfaces.Logger
}

// NewHandler creates a new catalog handler.
func NewHandler(svc *service.CatalogService, logger interfaces.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// parseID extracts and parses a uuid path parameter. On failure it
// writes a 400 response and returns false.
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		respondError(c, errors.BadRequest("invalid "+param))
		return uuid.Nil, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	c.JSON(errors.HTTPStatus(err), errors.Body(err))
}
