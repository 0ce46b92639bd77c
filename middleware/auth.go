package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/soyedarif/ralph-s-crafts-server/auth"
	"github.com/soyedarif/ralph-s-crafts-server/models"
	"github.com/soyedarif/ralph-s-crafts-server/store"
)

// Context key under which the authenticated subject email is stored.
const UserEmailKey = "userEmail"

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
}

func forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// AuthRequired verifies the Bearer token and puts the subject email on the
// context. Downstream handlers must use that email for every authorization
// decision, never one supplied in the path or body.
func AuthRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			unauthorized(c)
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			unauthorized(c)
			return
		}

		email := auth.SubjectEmail(claims)
		if email == "" {
			unauthorized(c)
			return
		}

		c.Set(UserEmailKey, email)
		c.Next()
	}
}

// OptionalAuth attaches the subject email when a valid token is present but
// never aborts. Used by routes that serve both public and scoped reads.
func OptionalAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := tokens.Verify(tokenString); err == nil {
				if email := auth.SubjectEmail(claims); email != "" {
					c.Set(UserEmailKey, email)
				}
			}
		}
		c.Next()
	}
}

// RequireSubjectParam enforces that the authenticated email equals the
// named path parameter. Runs after AuthRequired.
func RequireSubjectParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(UserEmailKey)
		if email == "" || email != c.Param(param) {
			forbidden(c)
			return
		}
		c.Next()
	}
}

// RequireAdmin is a capability check: the caller's stored role must be
// admin. The role comes from the user store, not from the token, so a
// stale token cannot carry a revoked authority.
func RequireAdmin(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(UserEmailKey)
		if email == "" {
			unauthorized(c)
			return
		}
		user, err := st.FindUserByEmail(c.Request.Context(), email)
		if err != nil || user.Role != models.RoleAdmin {
			forbidden(c)
			return
		}
		c.Next()
	}
}
