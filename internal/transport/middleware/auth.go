package middleware

import (
	"net/http"

	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/entity"
	"github.com/jhorlensofteng-web/rifa-maria-iza/pkg/security"

	"github.com/gin-gonic/gin"
)

// AdminKeyContextKey is where the validated key is stored for handlers that
// need to echo it back in redirects and page links.
const AdminKeyContextKey = "admin_key"

// AdminKey guards organizer routes. The key travels as a query parameter on
// page loads and as a form field on posts; anything the checker rejects is
// cut off with 403 before a handler runs.
func AdminKey(checker security.KeyChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Query("key")
		if key == "" {
			key = c.PostForm("key")
		}

		if !checker.Allow(key) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": entity.ErrForbidden.Error()})
			return
		}

		c.Set(AdminKeyContextKey, key)
		c.Next()
	}
}
