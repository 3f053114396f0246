package slots

import (
	"github.com/gin-gonic/gin"
)

// SetupSlotRoutes configures the date/time slot routes
func SetupSlotRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/time", controller.ListSlots) // GET /api/v1/time
}
