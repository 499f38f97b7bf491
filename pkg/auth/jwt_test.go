package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelmedia/reel/pkg/auth"
	"github.com/reelmedia/reel/pkg/errors"
)

func TestTokenRoundTrip(t *testing.T) {
	// Arrange
	manager := auth.NewTokenManager("test-secret", "reel-test", time.Hour)
	userID := uuid.New()

	// Act
	token, err := manager.Generate(userID, "alice", auth.RoleAdmin)
	require.NoError(t, err)

	claims, err := manager.Verify(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, string(auth.RoleAdmin), claims.Role)

	principal, err := claims.Principal()
	require.NoError(t, err)
	assert.Equal(t, userID, principal.ID)
	assert.Equal(t, auth.RoleAdmin, principal.Role)
}

func TestVerify_WrongSecret(t *testing.T) {
	// Arrange
	issuer := auth.NewTokenManager("secret-a", "reel-test", time.Hour)
	verifier := auth.NewTokenManager("secret-b", "reel-test", time.Hour)

	token, err := issuer.Generate(uuid.New(), "alice", auth.RoleUser)
	require.NoError(t, err)

	// Act
	_, err = verifier.Verify(token)

	// Assert
	assert.True(t, errors.IsUnauthorized(err))
}

func TestVerify_ExpiredToken(t *testing.T) {
	// Arrange
	manager := auth.NewTokenManager("test-secret", "reel-test", time.Minute)

	now := time.Now()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Minute)),
		},
		UserID:   uuid.New().String(),
		Username: "alice",
		Role:     string(auth.RoleUser),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	// Act
	_, err = manager.Verify(token)

	// Assert
	assert.True(t, errors.IsUnauthorized(err))
}

func TestVerify_Garbage(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "reel-test", time.Hour)

	_, err := manager.Verify("not-a-token")

	assert.True(t, errors.IsUnauthorized(err))
}

func TestExtractToken(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", auth.ExtractToken("abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", auth.ExtractToken("Bearer abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", auth.ExtractToken("  Bearer abc.def.ghi  "))
	assert.Equal(t, "", auth.ExtractToken(""))
}

func TestDefaultTTL(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "reel-test", 0)

	assert.Equal(t, time.Hour, manager.TTL())
}
