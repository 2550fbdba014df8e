package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-supra/internal/app/backend"
	"github.com/FACorreiaa/go-supra/internal/app/domain/dishes"
	"github.com/FACorreiaa/go-supra/internal/app/domain/restaurants"
	"github.com/FACorreiaa/go-supra/internal/app/handlers"
	"github.com/FACorreiaa/go-supra/internal/app/middleware"
	"github.com/FACorreiaa/go-supra/internal/app/renderer"
	"github.com/FACorreiaa/go-supra/internal/app/session"
	"github.com/FACorreiaa/go-supra/internal/pkg/cache"
	"github.com/FACorreiaa/go-supra/internal/pkg/config"
)

// Dependencies is everything the routes need, built once at startup.
type Dependencies struct {
	Caches      *cache.CacheManager
	Sessions    *session.Store[*dishes.State]
	Dishes      *dishes.Handler
	Restaurants *restaurants.Handler
}

// NewDependencies wires the backend client, the per-browser state store and
// the page handlers.
func NewDependencies(cfg *config.Config, logger *zap.Logger) *Dependencies {
	caches := cache.NewCacheManager(cfg.Backend.RestaurantCacheTTL, logger)
	client := backend.NewClient(cfg.Backend, caches, logger.Named("backend"))
	fetcher := backend.NewFetcher(client, cfg.Backend.MaxLookups, logger.Named("backend"))

	return NewDependenciesWith(cfg, fetcher, caches, logger)
}

// Fetcher is what both page services need from the backend.
type Fetcher interface {
	dishes.Fetcher
	restaurants.Fetcher
}

// NewDependenciesWith wires the handlers around an arbitrary fetcher.
func NewDependenciesWith(cfg *config.Config, fetcher Fetcher, caches *cache.CacheManager, logger *zap.Logger) *Dependencies {
	if caches == nil {
		caches = cache.NewCacheManager(cfg.Backend.RestaurantCacheTTL, logger)
	}
	states := session.NewStore[*dishes.State](cfg.SessionTTL, []byte(cfg.SessionSecret), dishes.NewState, logger.Named("session"))
	base := handlers.NewBaseHandler(logger)

	dishService := dishes.NewService(fetcher, logger.Named("dishes"))
	restaurantService := restaurants.NewService(fetcher, logger.Named("restaurants"))

	return &Dependencies{
		Caches:      caches,
		Sessions:    states,
		Dishes:      dishes.NewHandler(base, dishService, states.Get, cfg.Suggestions, logger.Named("dishes")),
		Restaurants: restaurants.NewHandler(base, restaurantService, logger.Named("restaurants")),
	}
}

// Setup registers every page and partial on r.
func Setup(r *gin.Engine, deps *Dependencies, logger *zap.Logger) {
	r.HTMLRender = &renderer.HTMLTemplRenderer{FallbackHTMLRenderer: r.HTMLRender}

	r.GET("/healthz", health(deps))

	app := r.Group("/")
	app.Use(deps.Sessions.Middleware()...)
	{
		app.GET("/", deps.Dishes.ShowPage)
		app.GET("/recommendations", deps.Dishes.Recommendations)
		app.POST("/view", deps.Dishes.SetView)

		dishRoutes := app.Group("/dishes")
		dishRoutes.GET("", func(c *gin.Context) { middleware.Redirect(c, "/") })
		dishRoutes.GET("/filter", deps.Dishes.Filter)
		dishRoutes.POST("/search", deps.Dishes.Search)

		app.GET("/restaurants", deps.Restaurants.ShowPage)
		app.POST("/restaurants/search-ai", deps.Restaurants.Search)
	}

	logger.Info("Routes registered")
}

func health(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"sessions": deps.Sessions.Len(),
			"caches":   deps.Caches.GetAllMetrics(),
		})
	}
}
