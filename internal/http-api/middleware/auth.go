package middleware

import (
	"errors"
	"net/http"
	"strings"

	"ratemyprompt/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextUserIDKey is where handlers read the resolved caller id.
const ContextUserIDKey = "userID"

// SessionClaims is what the identity provider puts in a session token.
type SessionClaims struct {
	UserID   string
	Email    string
	Name     string
	ImageURL string
}

// RequireAuth is a Gin middleware that authenticates API requests against the
// identity provider's session JWTs. On success it upserts the acting user row
// (sync-on-access) so every downstream write can assume the user exists.
func RequireAuth(sessionSecret string, identity service.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromRequest(c, sessionSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if err := syncAndSet(c, identity, claims); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid session is presented and
// passes the request through anonymously otherwise. Used on routes where
// anonymous access is allowed but authorship should be recorded if known.
func OptionalAuth(sessionSecret string, identity service.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		claims, err := claimsFromRequest(c, sessionSecret)
		if err != nil {
			// A bad token on an anonymous-capable route degrades to
			// anonymous rather than failing the request
			c.Next()
			return
		}

		if err := syncAndSet(c, identity, claims); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func syncAndSet(c *gin.Context, identity service.IdentityService, claims *SessionClaims) error {
	_, err := identity.Sync(c.Request.Context(), service.Identity{
		ID:       claims.UserID,
		Email:    claims.Email,
		Name:     claims.Name,
		ImageURL: claims.ImageURL,
	})
	if err != nil {
		return err
	}

	// Set user info in context for handlers to use
	c.Set(ContextUserIDKey, claims.UserID)
	c.Set("email", claims.Email)
	return nil
}

func claimsFromRequest(c *gin.Context, sessionSecret string) (*SessionClaims, error) {
	// Get token from header
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errors.New("missing authorization header")
	}

	// Extract token (format: "Bearer <token>")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("invalid authorization header format")
	}

	return parseSessionToken(parts[1], sessionSecret)
}

// parseSessionToken validates a provider session JWT and extracts the account
// claims. The provider signs with HS256 over the shared session secret.
func parseSessionToken(tokenString, sessionSecret string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(sessionSecret), nil
	})
	if err != nil {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return nil, errors.New("token missing subject")
	}

	claims := &SessionClaims{UserID: sub}
	claims.Email, _ = mapClaims["email"].(string)
	claims.Name, _ = mapClaims["name"].(string)
	claims.ImageURL, _ = mapClaims["image_url"].(string)
	return claims, nil
}
