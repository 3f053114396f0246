package slots

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

// ListSlots handles GET /api/v1/time
func (ctrl *Controller) ListSlots(c *gin.Context) {
	records, err := ctrl.service.ListSlots(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list time slots", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Time slots retrieved successfully", records, nil)
}
