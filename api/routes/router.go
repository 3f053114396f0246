// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"cineshow/internal/bookings"
	"cineshow/internal/casts"
	"cineshow/internal/movies"
	"cineshow/internal/notifications"
	"cineshow/internal/payments"
	"cineshow/internal/shared/config"
	"cineshow/internal/shared/database"
	"cineshow/internal/shows"
	"cineshow/internal/slots"
	"cineshow/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	cache    cache.Service
	notifier notifications.Producer
}

// NewRouter creates a new router instance. notifier may be nil when Kafka is
// not configured.
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, notifier notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		cache:    cacheService,
		notifier: notifier,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupCatalogRoutes(api)
		r.setupBookingRoutes(api)
		r.setupPaymentRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cineshow-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cineshow-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupCatalogRoutes configures the read-only movie, cast, show and showtime
// listing routes
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	pg := r.db.GetPostgreSQL()
	ttl := r.config.Redis.CacheTTL

	movieService := movies.NewService(movies.NewRepository(pg), r.cache, ttl)
	movies.SetupMovieRoutes(rg, movies.NewController(movieService))

	castService := casts.NewService(casts.NewRepository(pg), r.cache, ttl)
	casts.SetupCastRoutes(rg, casts.NewController(castService))

	showService := shows.NewService(shows.NewRepository(pg), r.cache, ttl)
	shows.SetupShowRoutes(rg, shows.NewController(showService))

	slotService := slots.NewService(slots.NewRepository(pg), r.cache, ttl)
	slots.SetupSlotRoutes(rg, slots.NewController(slotService))
}

// setupBookingRoutes configures booking management routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())

	var claims *bookings.AtomicSeatClaims
	if r.db.GetRedis() != nil {
		claims = bookings.NewAtomicSeatClaims(r.db.GetRedis())
	}

	bookingService := bookings.NewService(
		bookingRepo,
		claims,
		r.config.Redis.SeatClaimTTL,
		r.cache,
		r.notifier,
	)
	bookings.SetupBookingRoutes(rg, bookings.NewController(bookingService))
}

// setupPaymentRoutes configures payment routes
func (r *Router) setupPaymentRoutes(rg *gin.RouterGroup) {
	paymentService := payments.NewService(r.config.Stripe)
	payments.SetupPaymentRoutes(rg, payments.NewController(paymentService))
}
