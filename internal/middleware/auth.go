package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
)

const (
	ContextUserID   = "userID"
	ContextClientID = "clientID"
	ContextRoles    = "roles"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Missing Authorization header.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Malformed Authorization header.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Invalid token claims.")
			c.Abort()
			return
		}

		userID, _ := claims["sub"].(string)
		if userID == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "Token has no subject.")
			c.Abort()
			return
		}
		// admins may carry no tenant
		clientID, _ := claims["clientId"].(string)

		var roles []string
		if raw, ok := claims["roles"].([]interface{}); ok {
			for _, r := range raw {
				if s, ok := r.(string); ok {
					roles = append(roles, s)
				}
			}
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextClientID, clientID)
		c.Set(ContextRoles, roles)

		c.Next()
	}
}

// CallerFrom reads the identity AuthMiddleware stored on the request.
func CallerFrom(c *gin.Context) identity.Caller {
	return identity.Caller{
		UserID:   c.GetString(ContextUserID),
		ClientID: c.GetString(ContextClientID),
		Roles:    c.GetStringSlice(ContextRoles),
	}
}
