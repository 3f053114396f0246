package shows

import (
	"github.com/gin-gonic/gin"
)

// SetupShowRoutes configures the show catalog routes
func SetupShowRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/show", controller.ListShows) // GET /api/v1/show
}
