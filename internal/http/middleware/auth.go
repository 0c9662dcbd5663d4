package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the cookie holding the admin session token. The bearer
// header takes precedence when both are present.
const SessionCookie = "admin_token"

const (
	adminIDKey       = "admin_id"
	adminUsernameKey = "admin_username"
	adminRoleKey     = "admin_role"
)

// RequireAdmin rejects requests without a valid session token.
func RequireAdmin(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				raw = cookie
			}
		}
		if raw == "" {
			abortUnauthorized(c)
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c)
			return
		}
		if id, ok := claims["admin_id"].(float64); ok {
			c.Set(adminIDKey, int64(id))
		}
		if username, ok := claims["username"].(string); ok {
			c.Set(adminUsernameKey, username)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(adminRoleKey, role)
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      "authentification requise",
		"request_id": GetRequestID(c),
	})
}

// AdminUsername returns the authenticated admin's username, "" when absent.
func AdminUsername(c *gin.Context) string {
	if v, ok := c.Get(adminUsernameKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// AdminID returns the authenticated admin's id, 0 when absent.
func AdminID(c *gin.Context) int64 {
	if v, ok := c.Get(adminIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
