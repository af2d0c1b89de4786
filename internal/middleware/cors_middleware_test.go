package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campportal/internal/middleware"

	"github.com/gin-gonic/gin"
	"gotest.tools/v3/assert"
)

func setupCorsEngine(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()

	corsMiddleware := middleware.NewCorsMiddleware()
	assert.NilError(t, corsMiddleware.Init())
	engine.Use(corsMiddleware.Middleware())

	engine.GET("/api/public/gods", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"gods": gin.H{}})
	})

	return engine
}

func TestCorsPreflight(t *testing.T) {
	engine := setupCorsEngine(t)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/api/public/gods", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	engine.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}

// OPTIONS without an Origin header still answers an empty 200, not a
// 404 from the no-route handler.
func TestCorsBareOptions(t *testing.T) {
	engine := setupCorsEngine(t)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/api/public/gods", nil)
	engine.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 0, recorder.Body.Len())
}

func TestCorsActualRequest(t *testing.T) {
	engine := setupCorsEngine(t)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/public/gods", nil)
	req.Header.Set("Origin", "https://example.com")
	engine.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
