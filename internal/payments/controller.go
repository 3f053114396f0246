package payments

import (
	"net/http"

	"cineshow/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateCheckoutSession handles POST /api/v1/create-checkout-session
func (ctrl *Controller) CreateCheckoutSession(c *gin.Context) {
	var req CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, err.Error())
		return
	}

	sess, err := ctrl.service.CreateCheckoutSession(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadGateway, "Failed to create checkout session", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Checkout session created successfully", sess, nil)
}
