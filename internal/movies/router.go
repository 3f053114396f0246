package movies

import (
	"github.com/gin-gonic/gin"
)

// SetupMovieRoutes configures the movie catalog routes
func SetupMovieRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/movie", controller.ListMovies) // GET /api/v1/movie
}
