package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cataloghandler "github.com/reelmedia/reel/internal/catalog/handler"
	userhandler "github.com/reelmedia/reel/internal/user/handler"
	"github.com/reelmedia/reel/pkg/auth"
	"github.com/reelmedia/reel/pkg/config"
	"github.com/reelmedia/reel/pkg/database"
	"github.com/reelmedia/reel/pkg/interfaces"
	"github.com/reelmedia/reel/pkg/logger"
	"github.com/reelmedia/reel/pkg/metrics"
)

// route binds one endpoint to its handler and role allow-list. A nil
// allow-list means the endpoint is open.
type route struct {
	method  string
	path    string
	roles   []auth.Role
	handler gin.HandlerFunc
}

// routeTable declares every /api endpoint with its access rule in one
// place.
func routeTable(users *userhandler.Handler, catalog *cataloghandler.Handler) []route {
	return []route{
		// Credential flow
		{http.MethodPost, "/register", nil, users.Register},
		{http.MethodPost, "/login", nil, users.Login},
		{http.MethodPost, "/verify-token", nil, users.VerifyToken},
		{http.MethodGet, "/user", auth.ReadAccess, users.Me},

		// Movies
		{http.MethodGet, "/movies", auth.ReadAccess, catalog.ListMovies},
		{http.MethodGet, "/movies/:id", auth.ReadAccess, catalog.GetMovie},
		{http.MethodPost, "/movies", auth.WriteAccess, catalog.CreateMovie},
		{http.MethodPut, "/movies/:id", auth.WriteAccess, catalog.UpdateMovie},
		{http.MethodDelete, "/movies/:id", auth.WriteAccess, catalog.DeleteMovie},

		// Embedded actors
		{http.MethodGet, "/movies/:id/actors", auth.ReadAccess, catalog.ListMovieActors},
		{http.MethodPost, "/movies/:id/actors", auth.WriteAccess, catalog.AddMovieActor},
		{http.MethodGet, "/movies/:id/actors/:actorId", auth.ReadAccess, catalog.GetMovieActor},
		{http.MethodPut, "/movies/:id/actors/:actorId", auth.WriteAccess, catalog.UpdateMovieActor},
		{http.MethodDelete, "/movies/:id/actors/:actorId", auth.WriteAccess, catalog.DeleteMovieActor},

		// Embedded genres
		{http.MethodGet, "/movies/:id/genres", auth.ReadAccess, catalog.ListMovieGenres},
		{http.MethodPost, "/movies/:id/genres", auth.WriteAccess, catalog.AddMovieGenre},
		{http.MethodGet, "/movies/:id/genres/:genreId", auth.ReadAccess, catalog.GetMovieGenre},
		{http.MethodPut, "/movies/:id/genres/:genreId", auth.WriteAccess, catalog.UpdateMovieGenre},
		{http.MethodDelete, "/movies/:id/genres/:genreId", auth.WriteAccess, catalog.DeleteMovieGenre},

		// Standalone actor catalog
		{http.MethodGet, "/actors", auth.ReadAccess, catalog.ListActors},
		{http.MethodPost, "/actors", auth.WriteAccess, catalog.CreateActor},
		{http.MethodGet, "/actors/:id", auth.ReadAccess, catalog.GetActor},
		{http.MethodPut, "/actors/:id", auth.WriteAccess, catalog.UpdateActor},
		{http.MethodDelete, "/actors/:id", auth.WriteAccess, catalog.DeleteActor},

		// Standalone genre catalog
		{http.MethodGet, "/genres", auth.ReadAccess, catalog.ListGenres},
		{http.MethodPost, "/genres", auth.WriteAccess, catalog.CreateGenre},
		{http.MethodGet, "/genres/:id", auth.ReadAccess, catalog.GetGenre},
		{http.MethodPut, "/genres/:id", auth.WriteAccess, catalog.UpdateGenre},
		{http.MethodDelete, "/genres/:id", auth.WriteAccess, catalog.DeleteGenre},
	}
}

// NewRouter assembles the gin engine: middleware stack, health and
// metrics endpoints and the gated /api route table.
func NewRouter(
	cfg *config.Config,
	log interfaces.Logger,
	gate *auth.Gate,
	users *userhandler.Handler,
	catalog *cataloghandler.Handler,
	db *gorm.DB,
) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.Middleware(log))
	if cfg.Metrics.Enabled {
		engine.Use(metrics.Middleware())
		engine.GET(cfg.Metrics.Path, metrics.Handler())
	}

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/ready", func(c *gin.Context) {
		if err := database.Ping(db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	api := engine.Group("/api")
	for _, r := range routeTable(users, catalog) {
		if r.roles != nil {
			api.Handle(r.method, r.path, gate.Allow(r.roles...), r.handler)
		} else {
			api.Handle(r.method, r.path, r.handler)
		}
	}

	return engine
}
