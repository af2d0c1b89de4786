package middleware

import (
	"net/http"
	"time"

	"campportal/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CorsMiddleware applies the permissive cross-origin policy the portal
// frontend relies on. Preflight OPTIONS requests short-circuit with an
// empty 200.
type CorsMiddleware struct{}

func NewCorsMiddleware() *CorsMiddleware {
	return &CorsMiddleware{}
}

func (m *CorsMiddleware) Init() error {
	return nil
}

func (m *CorsMiddleware) Middleware() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type", "Authorization", config.SessionTokenHeader, config.BotKeyHeader},
		MaxAge:                    5 * time.Minute,
		OptionsResponseStatusCode: http.StatusOK,
	})

	return func(c *gin.Context) {
		// The cors handler only short-circuits OPTIONS requests that
		// carry an Origin header. Answer the rest the same way instead
		// of letting them fall through to a 404.
		if c.Request.Method == http.MethodOptions && c.GetHeader("Origin") == "" {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		handler(c)
	}
}
