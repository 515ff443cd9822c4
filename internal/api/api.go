package api

import (
	"context"

	"github.com/hiveden/hwinventory/internal/hw"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"
)

// Collector is the hardware snapshot source used by the handlers.
type Collector interface {
	Collect(ctx context.Context) hw.HardwareSnapshot
	System(ctx context.Context) (hw.SystemInfo, error)
}

// Greeter builds greeting messages.
type Greeter interface {
	Greet(name string) string
}

// APIHandler serves the hardware and greeting operations over HTTP.
type APIHandler struct {
	collector Collector
	greeter   Greeter
	logger    logr.Logger
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(collector Collector, greeter Greeter, logger logr.Logger) *APIHandler {
	return &APIHandler{
		collector: collector,
		greeter:   greeter,
		logger:    logger.WithName("api"),
	}
}

// RegisterRoutes attaches all handlers to r.
func (h *APIHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/hw", h.GetHardwareInfo)
	r.GET("/system", h.GetSystemInfo)

	greetGroup := r.Group("/greet")
	{
		greetGroup.GET("", h.Greet)
		greetGroup.POST("", h.GreetJSON)
	}

	r.POST("/invoke/:command", h.Invoke)
}
