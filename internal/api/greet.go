package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type greetRequest struct {
	Name string `json:"name"`
}

// Greet handles the GET /greet?name= endpoint.
func (h *APIHandler) Greet(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.greeter.Greet(c.Query("name"))})
}

// GreetJSON handles the POST /greet endpoint.
func (h *APIHandler) GreetJSON(c *gin.Context) {
	var reqBody greetRequest
	if err := c.ShouldBindJSON(&reqBody); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.greeter.Greet(reqBody.Name)})
}
