package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Command names accepted by the invoke endpoint.
const (
	CommandGetHardwareInfo = "get_hardware_info"
	CommandGreet           = "greet"
)

// Invoke handles the POST /invoke/:command endpoint. The body carries the
// command arguments as a JSON object and the response is the bare result.
func (h *APIHandler) Invoke(c *gin.Context) {
	command := c.Param("command")

	switch command {
	case CommandGetHardwareInfo:
		c.JSON(http.StatusOK, h.collector.Collect(c.Request.Context()))
	case CommandGreet:
		var args greetRequest
		// greet with no body behaves like greet with an empty name
		if err := c.ShouldBindJSON(&args); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, h.greeter.Greet(args.Name))
	default:
		h.logger.V(1).Info("unknown command", "command", command)
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("command %s not found", command)})
	}
}
