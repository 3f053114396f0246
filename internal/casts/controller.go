package casts

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

// ListCasts handles GET /api/v1/cast
func (ctrl *Controller) ListCasts(c *gin.Context) {
	records, err := ctrl.service.ListCasts(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list casts", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Casts retrieved successfully", records, nil)
}
