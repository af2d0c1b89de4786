package middleware

import (
	"campportal/internal/config"
	"campportal/internal/service"
	"campportal/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ContextMiddleware resolves the session token header into an identity
// for downstream handlers. It never rejects a request itself; routes
// that need an identity check for one.
type ContextMiddleware struct {
	broker *service.BrokerService
}

func NewContextMiddleware(broker *service.BrokerService) *ContextMiddleware {
	return &ContextMiddleware{
		broker: broker,
	}
}

func (m *ContextMiddleware) Init() error {
	return nil
}

func (m *ContextMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(config.SessionTokenHeader)

		if token == "" {
			c.Next()
			return
		}

		session, err := m.broker.Validate(c.Request.Context(), token)

		if err != nil {
			log.Error().Err(err).Msg("Failed to validate session token")
			utils.SetStoreError(c)
			c.Next()
			return
		}

		if session == nil {
			c.Next()
			return
		}

		utils.SetIdentity(c, &config.Identity{
			UserID:   session.UserID,
			Username: session.Username,
		})
		c.Next()
	}
}
