package middleware

import (
	"net/http"
	"strings"

	"petshop/models"
	"petshop/services/user"
	"petshop/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func identityFromToken(tokenString string) (models.Identity, bool) {
	claims, err := utils.ExtractClaimsFromToken(tokenString)
	if err != nil {
		return models.Identity{}, false
	}
	return models.Identity{
		Authenticated: true,
		UserID:        claims.Subject,
		Email:         claims.Email,
		Admin:         claims.Role == user.RoleAdmin,
	}, true
}

// JWTAuthUserMiddleware requires a valid member or admin session.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		ident, ok := identityFromToken(tokenString)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's identity when a token is
// present, but lets anonymous requests through. Guest booking depends on it.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if ident, ok := identityFromToken(tokenString); ok {
				c.Set(identityKey, ident)
			}
		}
		c.Next()
	}
}

// JWTAuthAdminMiddleware requires a valid session carrying the admin role.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		ident, ok := identityFromToken(tokenString)
		if !ok || !ident.Admin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

// CallerIdentity returns the identity resolved by the auth middleware, or an
// anonymous identity when none was set.
func CallerIdentity(c *gin.Context) models.Identity {
	if v, exists := c.Get(identityKey); exists {
		if ident, ok := v.(models.Identity); ok {
			return ident
		}
	}
	return models.Identity{}
}
