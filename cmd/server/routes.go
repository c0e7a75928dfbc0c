package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bizfundraiser.backend/internal/interfaces/http/handlers"
	"bizfundraiser.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	userHandler       *handlers.UserHandler
	projectHandler    *handlers.ProjectHandler
	investmentHandler *handlers.InvestmentHandler
	walletHandler     *handlers.WalletHandler
	authMiddleware    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Profile and KYC routes (protected)
		users := v1.Group("/users")
		users.Use(d.authMiddleware)
		{
			users.GET("/profile", d.userHandler.GetProfile)
			users.PUT("/profile", d.userHandler.UpdateProfile)
			users.PUT("/business-profile", d.userHandler.UpdateBusinessProfile)
			users.POST("/complete-kyc", d.userHandler.CompleteKYC)
			users.GET("/all", middleware.RequireAdmin(), d.userHandler.ListUsers)
		}

		// Project routes (protected)
		projects := v1.Group("/projects")
		projects.Use(d.authMiddleware)
		{
			projects.POST("", d.projectHandler.Create)
			projects.GET("", d.projectHandler.List)
			projects.GET("/mine", d.projectHandler.ListMine)
			projects.GET("/:id", d.projectHandler.Get)
			projects.GET("/:id/investments", d.projectHandler.ListInvestments)
			projects.POST("/:id/approve", middleware.RequireAdmin(), d.projectHandler.Approve)
			projects.POST("/:id/reject", middleware.RequireAdmin(), d.projectHandler.Reject)
		}

		// Investment routes (protected)
		investments := v1.Group("/investments")
		investments.Use(d.authMiddleware)
		{
			investments.POST("", d.investmentHandler.Invest)
			investments.GET("", d.investmentHandler.List)
		}

		// Wallet and transaction routes (protected)
		wallet := v1.Group("/wallet")
		wallet.Use(d.authMiddleware)
		{
			wallet.GET("", d.walletHandler.Get)
			wallet.POST("/deposit", d.walletHandler.Deposit)
		}
		v1.GET("/transactions", d.authMiddleware, d.walletHandler.ListTransactions)
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "bizfundraiser-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
