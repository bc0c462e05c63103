package api

import (
	"errors"
	"net/http"
	"sync/atomic"

	"partymenu/internal/catalog"
	"partymenu/internal/menu"
	"partymenu/internal/models"
	"partymenu/internal/monitoring"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var ErrDishNotFound = errors.New("dish not found")

// CatalogSource loads a fresh catalog, e.g. from the database
type CatalogSource interface {
	LoadCatalog() (*catalog.Catalog, error)
}

// Options configures a MenuAPI
type Options struct {
	Source       CatalogSource
	Monitor      *monitoring.Monitor
	Metrics      *monitoring.Metrics
	Logger       *zap.SugaredLogger
	JWTSecret    string
	AllowOrigins []string
}

// MenuAPI serves the dish list, dish details and ingredient details
type MenuAPI struct {
	Router *gin.Engine

	catalog   atomic.Pointer[catalog.Catalog]
	source    CatalogSource
	monitor   *monitoring.Monitor
	metrics   *monitoring.Metrics
	logger    *zap.SugaredLogger
	jwtSecret string
}

// DishList is the response body of a filter request. An empty list means no
// dish matched; the client decides how to present that.
type DishList struct {
	Dishes []models.Dish `json:"dishes"`
	Count  int           `json:"count"`
}

// IngredientView is a resolved ingredient plus display hints
type IngredientView struct {
	models.IngredientRecord
	HasAllergens bool `json:"hasAllergens"`
	Unknown      bool `json:"unknown"`
}

// NewMenuAPI creates a new menu API serving the given catalog
func NewMenuAPI(c *catalog.Catalog, opts Options) *MenuAPI {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if opts.Monitor == nil {
		opts.Monitor = monitoring.NewMonitor()
	}
	if opts.Metrics == nil {
		opts.Metrics = monitoring.NewMetrics()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if len(opts.AllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: opts.AllowOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		}))
	}

	api := &MenuAPI{
		Router:    router,
		source:    opts.Source,
		monitor:   opts.Monitor,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		jwtSecret: opts.JWTSecret,
	}
	api.catalog.Store(c)
	api.recordCatalog(c)

	api.setupRoutes()
	return api
}

// setupRoutes configures all API endpoints
func (m *MenuAPI) setupRoutes() {
	m.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Party Menu API is running"})
	})

	v1 := m.Router.Group("/api/v1")
	{
		v1.GET("/categories", m.GetCategories)
		v1.GET("/dishes", m.ListDishes)
		v1.GET("/dishes/:id", m.GetDish)
		v1.GET("/dishes/:id/ingredients", m.GetDishIngredients)
		v1.GET("/metrics", m.GetMetrics)
		v1.GET("/ws", m.handleWebSocket)

		admin := v1.Group("/admin")
		admin.Use(AuthMiddleware(m.jwtSecret))
		{
			admin.POST("/reload", m.ReloadCatalog)
		}
	}
}

// Catalog returns the catalog currently being served
func (m *MenuAPI) Catalog() *catalog.Catalog {
	return m.catalog.Load()
}

// Filter runs the dish filter against the current catalog and records it
func (m *MenuAPI) Filter(source string, criteria models.FilterCriteria) DishList {
	dishes := menu.Apply(m.Catalog().Dishes, criteria)
	m.monitor.RecordFilter(source, len(dishes))
	m.metrics.ObserveFilter(source, len(dishes))
	return DishList{Dishes: dishes, Count: len(dishes)}
}

func (m *MenuAPI) recordCatalog(c *catalog.Catalog) {
	m.monitor.RecordMetric("catalog_dishes", len(c.Dishes))
	m.monitor.RecordMetric("catalog_ingredients", len(c.Ingredients))
}

// GetCategories lists the category tabs
func (m *MenuAPI) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": menu.Categories(m.Catalog().Dishes)})
}

// ListDishes filters the catalog by the query string criteria
func (m *MenuAPI) ListDishes(c *gin.Context) {
	var criteria models.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, m.Filter("http", criteria))
}

// GetDish returns a single dish
func (m *MenuAPI) GetDish(c *gin.Context) {
	dish, ok := menu.FindDish(m.Catalog().Dishes, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrDishNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, dish)
}

// GetDishIngredients resolves the dish's ingredients against the ingredient catalog
func (m *MenuAPI) GetDishIngredients(c *gin.Context) {
	current := m.Catalog()
	dish, ok := menu.FindDish(current.Dishes, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrDishNotFound.Error()})
		return
	}

	resolved := menu.Resolve(dish, current.Ingredients)

	views := make([]IngredientView, 0, len(resolved))
	fallbacks := 0
	for _, rec := range resolved {
		unknown := menu.IsFallback(rec)
		if unknown {
			fallbacks++
		}
		views = append(views, IngredientView{
			IngredientRecord: rec,
			HasAllergens:     menu.HasAllergens(rec),
			Unknown:          unknown,
		})
	}

	m.monitor.RecordResolve(dish.ID, len(resolved), fallbacks)
	m.metrics.ObserveResolve(fallbacks)
	if fallbacks > 0 {
		m.logger.Debugw("Ingredients missing from catalog", "dish", dish.ID, "count", fallbacks)
	}

	c.JSON(http.StatusOK, gin.H{
		"dish":        dish.ID,
		"name":        dish.Name,
		"ingredients": views,
		"count":       len(views),
	})
}

// GetMetrics returns the monitor's current values
func (m *MenuAPI) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, m.monitor.GetMetrics())
}

// ReloadCatalog swaps in a freshly loaded catalog
func (m *MenuAPI) ReloadCatalog(c *gin.Context) {
	if m.source == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no catalog source configured"})
		return
	}

	fresh, err := m.source.LoadCatalog()
	if err != nil {
		m.logger.Errorw("Catalog reload failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	m.catalog.Store(fresh)
	// per-dish values describe the old catalog
	m.monitor.Reset()
	m.recordCatalog(fresh)
	m.logger.Infow("Catalog reloaded", "dishes", len(fresh.Dishes), "ingredients", len(fresh.Ingredients))
	c.JSON(http.StatusOK, gin.H{
		"message":     "Catalog reloaded",
		"dishes":      len(fresh.Dishes),
		"ingredients": len(fresh.Ingredients),
	})
}
