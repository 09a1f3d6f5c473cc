package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

// Principal is the authenticated caller extracted from a bearer token.
// Handlers receive it explicitly via GetPrincipal instead of reaching into
// ambient session state.
type Principal struct {
	UserID      uint
	Username    string
	IsSuperuser bool
}

// Authenticate parses an optional Authorization bearer token and, when
// valid, stores the Principal in the request context. It never aborts:
// routes decide for themselves what an anonymous caller gets (the admin
// listing answers 404, not 401, so auth failures must not short-circuit).
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		principal := Principal{}
		if v, ok := claims["user_id"].(float64); ok {
			principal.UserID = uint(v)
		}
		if v, ok := claims["username"].(string); ok {
			principal.Username = v
		}
		if v, ok := claims["superuser"].(bool); ok {
			principal.IsSuperuser = v
		}
		if principal.Username == "" {
			c.Next()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// GetPrincipal returns the authenticated caller, if any.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// SetPrincipal is exposed for handler tests.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}
