package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dadadu-backend/internal/shared/middleware"
	"dadadu-backend/internal/shared/response"
	"dadadu-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.ClientIPMiddleware(),
	)

	// Wrong verbs answer 405, not 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(ctx *gin.Context) {
		response.MethodNotAllowed(ctx)
	})

	// Referral landing link lives at the root, outside the API prefix:
	// it is pasted into chats and SMS, so it has to stay short.
	router.GET("/invite", c.ReferralHandler.Invite)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupVideoRoutes(v1, c)
		setupPaymentRoutes(v1, c)
		setupUploadRoutes(v1, c)
		setupPostRoutes(v1, c)
	}

	return router
}

// ========================================
// VIDEO ROUTES
// ========================================
func setupVideoRoutes(v1 *gin.RouterGroup, c *container.Container) {
	videos := v1.Group("/videos")
	videos.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		videos.POST("", c.VideoHandler.CreateVideo)
	}
}

// ========================================
// PAYMENT ROUTES
// ========================================
func setupPaymentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	payments := v1.Group("/payments")
	{
		payments.POST("/intent", c.PaymentHandler.CreatePaymentIntent)
	}
}

// ========================================
// UPLOAD ROUTES
// ========================================
func setupUploadRoutes(v1 *gin.RouterGroup, c *container.Container) {
	uploads := v1.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		uploads.POST("/sign", c.UploadHandler.SignUpload)
	}
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	posts.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		posts.POST("/assets", c.PostHandler.RecordAsset)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"error":  "database unreachable",
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
