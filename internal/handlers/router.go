package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/StudyTrack/calendar-service/internal/services"
	"github.com/StudyTrack/calendar-service/internal/utils"
)

type HandlerManager struct {
	authHandler     *AuthHandler
	eventHandler    *EventHandler
	taxonomyHandler *TaxonomyHandler
	authMiddleware  *TokenAuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:     NewAuthHandler(serviceManager.Auth(), logger),
		eventHandler:    NewEventHandler(serviceManager.Event(), serviceManager.Export(), logger),
		taxonomyHandler: NewTaxonomyHandler(serviceManager.Taxonomy(), logger),
		authMiddleware:  NewTokenAuthMiddleware(serviceManager.Auth()),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")

	// Auth routes are the only unauthenticated surface
	auth := v1.Group("/auth")
	{
		auth.POST("/register", hm.authHandler.Register)
		auth.POST("/login", hm.authHandler.Login)
		auth.GET("/check-username/:username", hm.authHandler.CheckUsername)
		auth.GET("/check-email/:email", hm.authHandler.CheckEmail)
	}

	// Everything else requires a valid bearer token
	protected := v1.Group("")
	protected.Use(hm.authMiddleware.AuthMiddleware())
	{
		events := protected.Group("/events")
		{
			events.POST("", hm.eventHandler.CreateEvent)
			events.GET("", hm.eventHandler.ListEvents)
			events.GET("/upcoming", hm.eventHandler.UpcomingEvents)
			events.GET("/today", hm.eventHandler.TodayEvents)
			events.GET("/export", hm.eventHandler.ExportEvents)
			events.GET("/:id", hm.eventHandler.GetEvent)
			events.PUT("/:id", hm.eventHandler.UpdateEvent)
			events.DELETE("/:id", hm.eventHandler.DeleteEvent)
		}

		categories := protected.Group("/categories")
		{
			categories.POST("", hm.taxonomyHandler.CreateCategory)
			categories.GET("", hm.taxonomyHandler.ListCategories)
			categories.GET("/:id", hm.taxonomyHandler.GetCategory)
		}

		tags := protected.Group("/tags")
		{
			tags.POST("", hm.taxonomyHandler.CreateTag)
			tags.GET("", hm.taxonomyHandler.ListTags)
			tags.GET("/:id", hm.taxonomyHandler.GetTag)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "calendar-service",
		})
	})
}
