package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Controller struct{}

func NewController() *Controller {
	return &Controller{}
}

func (hc *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", hc.GetHealth)
}

// GetHealth is a pure liveness probe.
func (hc *Controller) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "QueryDoc backend is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
