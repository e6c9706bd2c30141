package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lineboard/lineboard-backend/internal/pkg/ctxutil"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

// UpdateScope is the capability every write endpoint requires. Tokens are
// issued by the plant's identity service; this service only verifies them.
const UpdateScope = "dashboard:update"

type AuthMiddleware struct {
	log    *logger.Logger
	secret []byte
}

func NewAuthMiddleware(log *logger.Logger, jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		log:    log.With("middleware", "AuthMiddleware"),
		secret: []byte(jwtSecret),
	}
}

// RequireUpdateScope rejects requests whose bearer token is missing,
// unverifiable, or lacks the dashboard:update scope.
func (am *AuthMiddleware) RequireUpdateScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "missing or invalid token", "code": "unauthorized"},
			})
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return am.secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			am.log.Warn("Rejected update token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "missing or invalid token", "code": "unauthorized"},
			})
			return
		}

		if !hasScope(claims, UpdateScope) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": fmt.Sprintf("token lacks %s scope", UpdateScope), "code": "forbidden"},
			})
			return
		}

		subject, _ := claims.GetSubject()
		ctx := ctxutil.WithUpdateScope(c.Request.Context(), subject)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}

// hasScope accepts either an OAuth-style space-separated "scope" string or
// a "scopes" array claim.
func hasScope(claims jwt.MapClaims, want string) bool {
	if raw, ok := claims["scope"].(string); ok {
		for _, s := range strings.Fields(raw) {
			if s == want {
				return true
			}
		}
	}
	if raw, ok := claims["scopes"].([]interface{}); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}
