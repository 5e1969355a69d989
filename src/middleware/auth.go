package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var secretKey string

func SetSecretKey(key string) {
	secretKey = key
}

func GetSecretKey() string {
	return secretKey
}

// parseToken validates a bearer token and returns its claims.
func parseToken(authHeader string) (jwt.MapClaims, bool) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().Unix() > int64(exp) {
			return nil, false
		}
	}

	return claims, true
}

func setClaims(ctx *gin.Context, claims jwt.MapClaims) {
	if id, ok := claims["id"].(float64); ok {
		ctx.Set("userId", int(id))
	}
	if admin, ok := claims["admin"].(bool); ok {
		ctx.Set("admin", admin)
	}
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := strings.TrimSpace(ctx.GetHeader("Authorization"))
		if authHeader == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			ctx.Abort()
			return
		}

		claims, ok := parseToken(authHeader)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			ctx.Abort()
			return
		}

		setClaims(ctx, claims)
		ctx.Next()
	}
}

// OptionalAuthMiddleware sets the user claims when a valid token is present
// and lets anonymous requests through. Endpoints behind it pick the local
// store for anonymous callers.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := strings.TrimSpace(ctx.GetHeader("Authorization"))
		if authHeader != "" {
			if claims, ok := parseToken(authHeader); ok {
				setClaims(ctx, claims)
			}
		}
		ctx.Next()
	}
}

// AdminMiddleware rejects non-admin users. Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !ctx.GetBool("admin") {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// CurrentUserID returns the authenticated user id, or 0 for anonymous
// requests.
func CurrentUserID(ctx *gin.Context) int {
	return ctx.GetInt("userId")
}
