package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelmedia/reel/pkg/auth"
	"github.com/reelmedia/reel/pkg/logger"
)

func gateEngine(t *testing.T, manager *auth.TokenManager, roles ...auth.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gate := auth.NewGate(manager, logger.NewNoopLogger())
	engine := gin.New()
	engine.GET("/guarded", gate.Allow(roles...), func(c *gin.Context) {
		principal, ok := auth.PrincipalFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": principal.Username})
	})
	return engine
}

func doGet(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestGate_MissingTokenIsForbidden(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "reel-test", time.Hour)
	engine := gateEngine(t, manager, auth.ReadAccess...)

	w := doGet(engine, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGate_InvalidTokenIsUnauthorized(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "reel-test", time.Hour)
	engine := gateEngine(t, manager, auth.ReadAccess...)

	w := doGet(engine, "garbage-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGate_WrongSecretIsUnauthorized(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "reel-test", time.Hour)
	other := auth.NewTokenManager("other-secret", "reel-test", time.Hour)
	engine := gateEngine(t, manager, auth.ReadAccess...)

	token, err := other.Generate(uuid.New(), "alice", auth.RoleAdmin)
	require.NoError(t, err)

	w := doGet(engine, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGate_RoleNotAllowedIsForbidden(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "reel-test", time.Hour)
	engine := gateEngine(t, manager, auth.WriteAccess...)

	token, err := manager.Generate(uuid.New(), "bob", auth.RoleUser)
	require.NoError(t, err)

	w := doGet(engine, token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGate_AllowedRolePasses(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "reel-test", time.Hour)

	cases := []struct {
		name    string
		allowed []auth.Role
		role    auth.Role
	}{
		{"user on read route", auth.ReadAccess, auth.RoleUser},
		{"admin on read route", auth.ReadAccess, auth.RoleAdmin},
		{"admin on write route", auth.WriteAccess, auth.RoleAdmin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := gateEngine(t, manager, tc.allowed...)
			token, err := manager.Generate(uuid.New(), "carol", tc.role)
			require.NoError(t, err)

			w := doGet(engine, token)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "carol")
		})
	}
}

func TestGate_AcceptsBearerPrefix(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "reel-test", time.Hour)
	engine := gateEngine(t, manager, auth.ReadAccess...)

	token, err := manager.Generate(uuid.New(), "dave", auth.RoleUser)
	require.NoError(t, err)

	w := doGet(engine, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}
