package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reelmedia/reel/pkg/errors"
	"github.com/reelmedia/reel/pkg/interfaces"
)

// principalKey is the gin context key the gate stores the principal under.
const principalKey = "auth.principal"

// Gate is the access control middleware guarding catalog routes.
//
// The contract is deliberately asymmetric: a request that carries no
// token at all is refused with 403, a token that fails verification
// gets 401, and a verified token whose role is not on the route's
// allow-list gets 403 again.
type Gate struct {
	tokens *TokenManager
	logger interfaces.Logger
}

// NewGate creates a new access control gate.
func NewGate(tokens *TokenManager, logger interfaces.Logger) *Gate {
	return &Gate{tokens: tokens, logger: logger}
}

// Allow returns a gin middleware admitting only the given roles.
func (g *Gate) Allow(roles ...Role) gin.HandlerFunc {
	allowed := make(map[Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		raw := ExtractToken(c.GetHeader("Authorization"))
		if raw == "" {
			abort(c, errors.Forbidden("missing authorization token"))
			return
		}

		claims, err := g.tokens.Verify(raw)
		if err != nil {
			abort(c, err)
			return
		}

		principal, err := claims.Principal()
		if err != nil {
			abort(c, err)
			return
		}

		if !allowed[principal.Role] {
			g.logger.Warn("Role refused by route allow-list",
				interfaces.String("username", principal.Username),
				interfaces.String("role", string(principal.Role)))
			abort(c, errors.Forbidden("insufficient role"))
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// ExtractToken returns the raw token from an Authorization header
// value, stripping an optional Bearer prefix.
func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return header
}

// PrincipalFromContext returns the principal the gate attached to the
// request, or false when the route was not gated.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	principal, ok := v.(Principal)
	return principal, ok
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errors.HTTPStatus(err), errors.Body(err))
}
