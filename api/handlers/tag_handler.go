package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListTags retrieves all tags sorted by name.
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.store.ListTags(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list tags")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve tags"})
		return
	}

	c.JSON(http.StatusOK, tags)
}
