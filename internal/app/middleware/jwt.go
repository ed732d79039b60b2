package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"sitegate-http-service/config"
	"sitegate-http-service/internal/error/response"
	"sitegate-http-service/services"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware wires the JWT service used by the auth middlewares
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken strips the "Bearer " prefix from an authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

func authenticate(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		c.Abort()
		return nil, false
	}

	tokenString := extractToken(authHeader)
	token, err := jwtService.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		response.Unauthorized(c)
		c.Abort()
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		response.Unauthorized(c)
		c.Abort()
		return nil, false
	}
	return claims, true
}

func setClaims(c *gin.Context, claims jwt.MapClaims) {
	c.Set("userID", claims["user_id"])
	c.Set("email", claims["email"])
	c.Set("role", claims["role"])
	c.Set("claims", claims)
}

// AuthenticateAdmin only lets admin accounts through
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c)
		if !ok {
			return
		}

		if role, exists := claims["role"].(string); !exists || role != "admin" {
			response.Forbidden(c, "insufficient permissions: requires admin role")
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// AuthenticateOperator lets admin and sos accounts through
func AuthenticateOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c)
		if !ok {
			return
		}

		role, exists := claims["role"].(string)
		if !exists || (role != "admin" && role != "sos") {
			response.Forbidden(c, "insufficient permissions: requires operator role")
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}
