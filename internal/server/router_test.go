package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	cataloghandler "github.com/reelmedia/reel/internal/catalog/handler"
	catalogrepo "github.com/reelmedia/reel/internal/catalog/repository"
	catalogservice "github.com/reelmedia/reel/internal/catalog/service"
	"github.com/reelmedia/reel/internal/server"
	userhandler "github.com/reelmedia/reel/internal/user/handler"
	userrepo "github.com/reelmedia/reel/internal/user/repository"
	userservice "github.com/reelmedia/reel/internal/user/service"
	"github.com/reelmedia/reel/pkg/auth"
	"github.com/reelmedia/reel/pkg/config"
	"github.com/reelmedia/reel/pkg/events"
	"github.com/reelmedia/reel/pkg/logger"
	"github.com/reelmedia/reel/test/testutil"
)

type RouterTestSuite struct {
	suite.Suite

	engine *gin.Engine
}

func (suite *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()
	db := testutil.NewTestDB(suite.T())
	bus := events.NewLocalEventBus(log)

	tokens := auth.NewTokenManager("router-test-secret", "reel-test", time.Hour)
	gate := auth.NewGate(tokens, log)

	authService := userservice.NewAuthService(userrepo.NewGormRepository(db), tokens, bus, log)
	catalogService := catalogservice.NewCatalogService(catalogrepo.NewGormRepository(db), bus, log)

	cfg := config.Defaults()
	suite.engine = server.NewRouter(
		cfg,
		log,
		gate,
		userhandler.NewHandler(authService, log),
		cataloghandler.NewHandler(catalogService, log),
		db,
	)
}

func (suite *RouterTestSuite) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	suite.engine.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) register(username, role string) {
	w := suite.do(http.MethodPost, "/api/register",
		`{"username": "`+username+`", "password": "secret123", "role": "`+role+`"}`, "")
	suite.Require().Equal(http.StatusCreated, w.Code)
}

func (suite *RouterTestSuite) login(username string) string {
	w := suite.do(http.MethodPost, "/api/login",
		`{"username": "`+username+`", "password": "secret123"}`, "")
	suite.Require().Equal(http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotEmpty(resp.Token)
	return resp.Token
}

func (suite *RouterTestSuite) TestRegisterDuplicateIsConflict() {
	suite.register("alice", "user")

	w := suite.do(http.MethodPost, "/api/register",
		`{"username": "alice", "password": "other", "role": "admin"}`, "")
	suite.Equal(http.StatusConflict, w.Code)

	// The original password still works
	suite.login("alice")
}

func (suite *RouterTestSuite) TestLoginWrongPassword() {
	suite.register("alice", "user")

	w := suite.do(http.MethodPost, "/api/login",
		`{"username": "alice", "password": "wrong"}`, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RouterTestSuite) TestGateSemanticsOnMovies() {
	suite.register("reader", "user")
	readerToken := suite.login("reader")

	// No token at all
	w := suite.do(http.MethodGet, "/api/movies", "", "")
	suite.Equal(http.StatusForbidden, w.Code)

	// Invalid token
	w = suite.do(http.MethodGet, "/api/movies", "", "garbage")
	suite.Equal(http.StatusUnauthorized, w.Code)

	// Valid reader token can read
	w = suite.do(http.MethodGet, "/api/movies", "", readerToken)
	suite.Equal(http.StatusOK, w.Code)

	// ...but cannot write
	w = suite.do(http.MethodPost, "/api/movies", `{
		"title": "Denied", "director": "X", "releaseYear": 2000,
		"actors": [], "genres": []
	}`, readerToken)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RouterTestSuite) TestAdminWriteFlow() {
	suite.register("boss", "admin")
	token := suite.login("boss")

	w := suite.do(http.MethodPost, "/api/movies", `{
		"title": "Approved", "director": "Jane Doe", "releaseYear": 2021,
		"actors": [], "genres": []
	}`, token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var movie struct {
		ID string `json:"id"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &movie))

	w = suite.do(http.MethodDelete, "/api/movies/"+movie.ID, "", token)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RouterTestSuite) TestMe() {
	suite.register("carol", "user")
	token := suite.login("carol")

	w := suite.do(http.MethodGet, "/api/user", "", token)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "carol")
}

func (suite *RouterTestSuite) TestVerifyToken() {
	suite.register("dave", "user")
	token := suite.login("dave")

	// Missing token answers 401, not 403
	w := suite.do(http.MethodPost, "/api/verify-token", "", "")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "missing token")

	w = suite.do(http.MethodPost, "/api/verify-token", "", "garbage")
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodPost, "/api/verify-token", "", token)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "true")
}

func (suite *RouterTestSuite) TestHealthEndpoints() {
	w := suite.do(http.MethodGet, "/health", "", "")
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/ready", "", "")
	suite.Equal(http.StatusOK, w.Code)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
