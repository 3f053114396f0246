package casts

import (
	"github.com/gin-gonic/gin"
)

// SetupCastRoutes configures the cast catalog routes
func SetupCastRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/cast", controller.ListCasts) // GET /api/v1/cast
}
