package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/reelmedia/reel/pkg/errors"
)

// TokenKeySize is the byte length of generated signing secrets.
const TokenKeySize = 32

// DefaultTokenTTL is the session token lifetime used when none is configured.
const DefaultTokenTTL = time.Hour

// TokenManager issues and verifies HMAC-signed session tokens.
type TokenManager struct {
	secret string
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a new token manager.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
	}
}

// Claims extends jwt.RegisteredClaims with the session identity.
type Claims struct {
	jwt.RegisteredClaims

	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Principal converts the claims into the request principal.
func (c *Claims) Principal() (Principal, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return Principal{}, errors.Wrap(errors.ErrorTypeUnauthorized, "malformed token subject", err)
	}
	return Principal{
		ID:       id,
		Username: c.Username,
		Role:     Role(c.Role),
	}, nil
}

// Generate issues a signed session token for the given identity.
func (m *TokenManager) Generate(userID uuid.UUID, username string, role Role) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		UserID:   userID.String(),
		Username: username,
		Role:     string(role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Verify parses and validates a session token, returning its claims.
// Any parse, signature or expiry failure surfaces as an unauthorized error.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeUnauthorized, "invalid or expired token", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.Unauthorized("invalid or expired token")
}

// TTL returns the configured token lifetime.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// GenerateSecret generates a random secret for token signing.
func GenerateSecret() string {
	b := make([]byte, TokenKeySize)
	_, _ = rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}
