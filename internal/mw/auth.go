package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UIDKey is the context key the auth middleware stores the caller's uid under.
const UIDKey = "uid"

// TokenParser validates a bearer token and returns the uid it carries.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// Auth extracts a Bearer token, validates it and injects the uid into the
// request context. Requests without a valid token are rejected.
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "auth/missing-token",
					"message": "로그인이 필요합니다.",
				},
			})
			return
		}

		uid, err := parser.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "auth/invalid-token",
					"message": "인증 정보가 올바르지 않습니다. 다시 로그인해주세요.",
				},
			})
			return
		}

		c.Set(UIDKey, uid)
		c.Next()
	}
}

// UID returns the authenticated caller's uid, or "" when unauthenticated.
func UID(c *gin.Context) string {
	return c.GetString(UIDKey)
}
