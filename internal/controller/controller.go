package controller

import (
	"net/http"
	"strconv"

	"campportal/internal/config"
	"campportal/internal/utils"

	"github.com/gin-gonic/gin"
)

// requireIdentity fetches the resolved identity or writes the failure
// response: 401 when the token was missing or invalid, 503 when the
// store could not be asked.
func requireIdentity(c *gin.Context) (*config.Identity, bool) {
	identity, err := utils.GetIdentity(c)

	if err != nil {
		if utils.HasStoreError(c) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		} else {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		}
		return nil, false
	}

	return identity, true
}

func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return limit
}
