package payments

import (
	"github.com/gin-gonic/gin"
)

// SetupPaymentRoutes configures the payment routes
func SetupPaymentRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/create-checkout-session", controller.CreateCheckoutSession) // POST /api/v1/create-checkout-session
}
