package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/meeting-scheduler/internal/config"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
)

const (
	ContextAdmin = "admin"

	AdminSubject = "owner"
	AdminRole    = "admin"
	TokenTTL     = 12 * time.Hour
)

// IssueAdminToken signs the token handed out by the admin login.
func IssueAdminToken(cfg *config.Config, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  AdminSubject,
		"role": AdminRole,
		"iat":  now.Unix(),
		"exp":  now.Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func AdminAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header required.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Bearer token required.")
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
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Invalid token.")
			return
		}

		if role, _ := claims["role"].(string); role != AdminRole {
			httperr.Unauthorized(c, "invalid_token_payload", "Invalid token.")
			return
		}

		c.Set(ContextAdmin, true)
		c.Next()
	}
}
