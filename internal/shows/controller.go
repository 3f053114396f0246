package shows

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

// ListShows handles GET /api/v1/show
func (ctrl *Controller) ListShows(c *gin.Context) {
	records, err := ctrl.service.ListShows(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list shows", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Shows retrieved successfully", records, nil)
}
