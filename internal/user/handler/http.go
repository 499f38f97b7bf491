package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reelmedia/reel/internal/user/service"
	"github.com/reelmedia/reel/pkg/auth"
	"github.com/reelmedia/reel/pkg/errors"
	"github.com/reelmedia/reel/pkg/interfaces"
)

// Handler exposes the credential flow over HTTP.
type Handler struct {
	svc    *service.AuthService
	logger interfaces.Logger
}

// NewHandler creates a new user handler.
func NewHandler(svc *service.AuthService, logger interfaces.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/register.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.BadRequest("invalid request body"))
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Username, req.Password, auth.Role(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered",
		"user":    user,
	})
}

// Login handles POST /api/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.BadRequest("invalid request body"))
		return
	}

	token, user, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me handles GET /api/user, echoing the authenticated principal.
func (h *Handler) Me(c *gin.Context) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		respondError(c, errors.Unauthorized("no authenticated user"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": principal})
}

// VerifyToken handles POST /api/verify-token. Unlike gated routes a
// missing token here answers 401, since the endpoint's whole purpose
// is to report token validity.
func (h *Handler) VerifyToken(c *gin.Context) {
	raw := auth.ExtractToken(c.GetHeader("Authorization"))
	if raw == "" {
		respondError(c, errors.Unauthorized("missing token"))
		return
	}

	claims, err := h.svc.VerifyToken(raw)
	if err != nil {
		respondError(c, err)
		return
	}

	principal, err := claims.Principal()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  principal,
	})
}

func respondError(c *gin.Context, err error) {
	c.JSON(errors.HTTPStatus(err), errors.Body(err))
}
