package movies

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

// ListMovies handles GET /api/v1/movie
func (ctrl *Controller) ListMovies(c *gin.Context) {
	records, err := ctrl.service.ListMovies(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list movies", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Movies retrieved successfully", records, nil)
}
