package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IssueToken signs whatever claims the caller supplies, expiring in 1h.
// Identity is asserted, not proven: gating issuance on verified
// credentials is an upstream concern outside this service.
func (h *Handler) IssueToken(c *gin.Context) {
	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		fail(c, http.StatusBadRequest, "email claim is required")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
