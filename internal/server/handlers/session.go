package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/domain/models"
	"github.com/greencoders/soilcard/internal/service/identity"
)

const sessionKey = "session"

// Headers set by the authenticating gateway after it has verified the ID
// token. This service never sees raw credentials.
const (
	headerUserID = "X-User-Id"
	headerEmail  = "X-User-Email"
)

// SessionMiddleware resolves the verified identity headers into an explicit
// Session, creating the profile on first sign-in. Requests without identity
// headers are rejected; routes mounted outside this middleware stay public.
func SessionMiddleware(svc *identity.Service, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		userID := c.GetHeader(headerUserID)
		email := c.GetHeader(headerEmail)
		if userID == "" || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		profile, err := svc.EnsureProfile(c.Request.Context(), userID, email)
		if err != nil {
			logger.Error("failed resolving profile", zap.String("user_id", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve identity"})
			return
		}

		c.Set(sessionKey, svc.StartSession(profile))
		c.Next()
	}
}

// sessionFrom extracts the Session stored by SessionMiddleware.
func sessionFrom(c *gin.Context) models.Session {
	if v, ok := c.Get(sessionKey); ok {
		if session, ok := v.(models.Session); ok {
			return session
		}
	}
	return models.Session{}
}
