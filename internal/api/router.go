package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"solar-optimizer/internal/api/handlers"
	"solar-optimizer/internal/api/middleware"
	"solar-optimizer/internal/api/models"
	"solar-optimizer/internal/pipeline"
	"solar-optimizer/internal/store"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Analyzer  *pipeline.Analyzer
	Store     store.Store
	SitesFile string
	Logger    *slog.Logger
}

func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(d.Logger))
	router.Use(middleware.ErrorHandler(d.Logger))

	analysisHandler := handlers.NewAnalysisHandler(d.Analyzer, d.Store, d.Logger)
	orientationHandler := handlers.NewOrientationHandler(d.Analyzer.Now().Year() - 1)
	sitesHandler := handlers.NewSitesHandler(d.SitesFile, d.Analyzer)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/orientation", orientationHandler.Get)
		v1.GET("/orientation/search", orientationHandler.Search)

		v1.POST("/analysis", analysisHandler.Create)
		v1.GET("/analysis/:id", analysisHandler.Get)
		v1.GET("/analysis/:id/hourly", analysisHandler.Hourly)
		v1.GET("/analysis/:id/export.csv", analysisHandler.ExportCSV)
		v1.GET("/analysis/:id/export.xlsx", analysisHandler.ExportXLSX)

		v1.GET("/sites", sitesHandler.List)
		v1.POST("/rank", sitesHandler.Rank)

		v1.GET("/assumptions", handlers.Assumptions)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "route not found"},
		})
	})
	return router
}
