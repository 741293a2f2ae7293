package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// idParam validates the :id path segment. Entity ids are UUIDs assigned by
// the database, so anything else is rejected before touching storage.
func idParam(c *gin.Context) (string, bool) {
	value := strings.TrimSpace(c.Param("id"))
	if _, err := uuid.Parse(value); err != nil {
		writeBadRequest(c, "id must be a UUID")
		return "", false
	}
	return value, true
}
