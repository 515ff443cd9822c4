package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHardwareInfo handles the GET /hw endpoint.
func (h *APIHandler) GetHardwareInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.collector.Collect(c.Request.Context()))
}

// GetSystemInfo handles the GET /system endpoint.
func (h *APIHandler) GetSystemInfo(c *gin.Context) {
	info, err := h.collector.System(c.Request.Context())
	if err != nil {
		h.logger.Error(err, "system info request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, info)
}
