package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"quoteboard-backend/internal/shared/middleware"
	"quoteboard-backend/pkg/container"
)

// SetupRouter wires the route table. Paths are mounted at the root to keep
// the public API surface unchanged.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupAuthorRoutes(router, c)
	setupListRoutes(router, c)
	setupEntryRoutes(router, c)

	return router
}

// ════════════════════════════════════════════════════════════════
// AUTHOR ROUTES
// ════════════════════════════════════════════════════════════════

func setupAuthorRoutes(r *gin.Engine, c *container.Container) {
	r.POST("/author", c.AuthorHandler.Create)
	r.GET("/author", c.AuthorHandler.GetAll)
	r.GET("/author/:id", c.AuthorHandler.GetByID)
	r.PUT("/author/:id", c.AuthorHandler.Update)
	r.DELETE("/author/:id", c.AuthorHandler.Delete)
	r.GET("/author/:id/lists", c.AuthorListHandler.ListsOfAuthor)
}

// ════════════════════════════════════════════════════════════════
// LIST ROUTES
// ════════════════════════════════════════════════════════════════

func setupListRoutes(r *gin.Engine, c *container.Container) {
	r.POST("/list", c.ListHandler.Create)
	r.GET("/lists", c.ListHandler.GetAll)
	r.GET("/list/:id", c.ListHandler.GetByID)
	r.PUT("/list/:id", c.ListHandler.Update)
	r.DELETE("/list/:id", c.ListHandler.Delete)

	// Membership operations
	r.GET("/list/:id/authors", c.AuthorListHandler.AuthorsOfList)
	r.POST("/list/:id/authors/:authorId", c.AuthorListHandler.Add)
	r.DELETE("/list/:id/authors/:authorId", c.AuthorListHandler.Remove)
}

// ════════════════════════════════════════════════════════════════
// ENTRY ROUTES
// ════════════════════════════════════════════════════════════════

func setupEntryRoutes(r *gin.Engine, c *container.Container) {
	r.POST("/entry", c.EntryHandler.Create)
	r.GET("/entries", c.EntryHandler.GetAll)
	r.GET("/entry/:id", c.EntryHandler.GetByID)
	r.PUT("/entry/:id", c.EntryHandler.Update)
	r.DELETE("/entry/:id", c.EntryHandler.Delete)
}

// ════════════════════════════════════════════════════════════════
// HEALTH CHECK HANDLER
// ════════════════════════════════════════════════════════════════

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		statusCode := http.StatusOK

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.Ping(ctx); err != nil {
			dbStatus = "error: " + err.Error()
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		health["services"] = gin.H{"database": dbStatus}

		c.JSON(statusCode, health)
	}
}
