package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"articles-backend/internal/shared/middleware"
	"articles-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupTagRoutes(v1, c)
		setupArticleRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthorHandler.Login)
		auth.POST("/refresh", c.AuthorHandler.Refresh)
	}
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.GET("/slug/:slug", c.AuthorHandler.GetBySlug)
		authors.GET("/:id/articles", c.ArticleHandler.ByAuthor)

		// Registration is open; it is how the first account comes
		// to exist.
		authors.POST("", c.AuthorHandler.Create)

		authors.PUT("/:id", middleware.Auth(c.JWTManager), c.AuthorHandler.Update)
		authors.DELETE("/:id", middleware.Auth(c.JWTManager), c.AuthorHandler.Delete)
	}
}

func setupTagRoutes(v1 *gin.RouterGroup, c *container.Container) {
	tags := v1.Group("/tags")
	{
		tags.GET("", c.TagHandler.List)
		tags.GET("/:id", c.TagHandler.GetByID)
		tags.GET("/slug/:slug", c.TagHandler.GetBySlug)
		tags.GET("/:id/articles", c.ArticleHandler.ByTag)

		tags.POST("", middleware.Auth(c.JWTManager), c.TagHandler.Create)
		tags.PUT("/:id", middleware.Auth(c.JWTManager), c.TagHandler.Update)
		tags.DELETE("/:id", middleware.Auth(c.JWTManager), c.TagHandler.Delete)
	}
}

func setupArticleRoutes(v1 *gin.RouterGroup, c *container.Container) {
	articles := v1.Group("/articles")
	{
		articles.GET("", c.ArticleHandler.List)
		articles.GET("/:id", c.ArticleHandler.GetByID)
		articles.GET("/slug/:slug", c.ArticleHandler.GetBySlug)

		articles.POST("", middleware.Auth(c.JWTManager), c.ArticleHandler.Create)
		articles.PUT("/:id", middleware.Auth(c.JWTManager), c.ArticleHandler.Update)
		articles.DELETE("/:id", middleware.Auth(c.JWTManager), c.ArticleHandler.Delete)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
