package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"quillhub/internal/http-api/dto"
)

const viewerIDKey = "viewerID"

// Identity resolves the optional caller identity and stores it in the
// request context. Two sources are accepted: a Bearer JWT whose "sub"
// claim is the user UUID, or a bare X-User-ID header. A credential
// that is absent or does not resolve leaves the request anonymous;
// only RequireIdentity rejects.
func Identity(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && jwtSecret != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if userID, err := subjectFromToken(parts[1], jwtSecret); err == nil {
					c.Set(viewerIDKey, userID)
				}
			}
			c.Next()
			return
		}

		if raw := c.GetHeader("X-User-ID"); raw != "" {
			if userID, err := uuid.Parse(raw); err == nil {
				c.Set(viewerIDKey, userID)
			}
		}

		c.Next()
	}
}

func subjectFromToken(tokenString, secret string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, jwt.ErrTokenUnverifiable
	}
	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(subject)
}

// ViewerID returns the resolved caller identity, or nil for anonymous
// requests.
func ViewerID(c *gin.Context) *uuid.UUID {
	value, exists := c.Get(viewerIDKey)
	if !exists {
		return nil
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// RequireIdentity guards write endpoints: anonymous requests get 401.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ViewerID(c) == nil {
			dto.Error(c, http.StatusUnauthorized, "User ID required")
			c.Abort()
			return
		}
		c.Next()
	}
}
