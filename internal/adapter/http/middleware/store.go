package middleware

import (
	"net/http"
	"strings"

	"comunikapp/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderStoreID identifies the tenant on every request.
	HeaderStoreID = "X-Store-ID"

	contextStoreIDKey = "store_id"
)

var errMissingStore = pkg.NewDomainErrorSimple("MISSING_STORE", "X-Store-ID header is required", http.StatusBadRequest)

// RequireStore extracts the tenant id from the X-Store-ID header and makes it
// available to the handlers. Requests without it never reach a handler.
func RequireStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := strings.TrimSpace(c.GetHeader(HeaderStoreID))
		if storeID == "" {
			c.AbortWithStatusJSON(errMissingStore.HTTPStatus, errMissingStore.ToHTTPError())
			return
		}
		c.Set(contextStoreIDKey, storeID)
		c.Next()
	}
}

// StoreID returns the tenant id placed on the context by RequireStore.
func StoreID(c *gin.Context) string {
	return c.GetString(contextStoreIDKey)
}
