package handler

import (
	"fmt"
	"net/http"
	"strings"

	"devblogg/backend/internal/models"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

// PrincipalMiddleware extracts the authenticated principal from the Bearer
// token. Identity issuance happens in the auth service; this middleware only
// trusts the claims it signed: user_id, role and is_banned. The is_banned
// claim goes stale the moment a moderator acts, so the current ban state is
// overlaid from the ban cache on every request.
func (h *Handler) PrincipalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
			return
		}

		principal, err := h.parsePrincipal(authHeader[len("Bearer "):])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
			return
		}

		if h.Bans != nil {
			if banned, err := h.Bans.IsUserBanned(principal.UserID); err == nil {
				principal.IsBanned = banned
			}
			// On a lookup failure the claim value stands; the storage layer
			// has already logged the cause.
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// parsePrincipal validates the token and rebuilds the Principal from claims.
func (h *Handler) parsePrincipal(tokenString string) (models.Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return h.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return models.Principal{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Principal{}, fmt.Errorf("unexpected claims type")
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return models.Principal{}, fmt.Errorf("missing user_id claim")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		role = string(models.RoleUser)
	}
	isBanned, _ := claims["is_banned"].(bool)

	return models.Principal{
		UserID:   userID,
		Role:     models.Role(role),
		IsBanned: isBanned,
	}, nil
}

// principalFrom reads the principal the middleware stored on the context.
func principalFrom(c *gin.Context) models.Principal {
	p, _ := c.Get(principalKey)
	principal, _ := p.(models.Principal)
	return principal
}
