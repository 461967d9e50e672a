package controllers

import (
	"net/http"
	"strconv"

	"cafe-service/services"

	"github.com/gin-gonic/gin"
)

// idParam parses a numeric path parameter; a malformed id answers 400
// directly and returns false.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// respondError maps a ServiceError onto the wire. The retryable flag is only
// emitted for transaction failures so callers know the operation's effect is
// exactly "not attempted".
func respondError(c *gin.Context, serr *services.ServiceError) {
	body := gin.H{
		"error": serr.Message,
		"kind":  serr.Kind,
	}
	if serr.Field != "" {
		body["field"] = serr.Field
	}
	if serr.Retryable() {
		body["retryable"] = true
	}
	c.JSON(serr.StatusCode, body)
}
