package utils

import (
	"errors"

	"campportal/internal/config"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"
const storeErrorKey = "storeError"

// SetIdentity attaches the resolved principal to the request context.
func SetIdentity(c *gin.Context, identity *config.Identity) {
	c.Set(identityKey, identity)
}

// SetStoreError records that token validation failed because the store
// was unreachable, so protected handlers answer 503 instead of 401.
func SetStoreError(c *gin.Context) {
	c.Set(storeErrorKey, true)
}

func HasStoreError(c *gin.Context) bool {
	_, exists := c.Get(storeErrorKey)
	return exists
}

func GetIdentity(c *gin.Context) (*config.Identity, error) {
	val, exists := c.Get(identityKey)
	if !exists {
		return nil, errors.New("no identity in context")
	}

	identity, ok := val.(*config.Identity)
	if !ok {
		return nil, errors.New("invalid identity in context")
	}

	return identity, nil
}
