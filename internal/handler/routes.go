package handler

import (
	"github.com/dafibh/dompet/dompet-backend/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes sets up all API routes. Paths are registered without a trailing slash;
// the server strips trailing slashes before routing.
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, credentialLimiter *middleware.RateLimiter, authHandler *AuthHandler, profileHandler *ProfileHandler, categoryHandler *CategoryHandler, transactionHandler *TransactionHandler, budgetHandler *BudgetHandler, analyticsHandler *AnalyticsHandler) {
	// API docs (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/api/docs/openapi.json", ServeOpenAPI3Spec)

	// API version 1
	api := e.Group("/api/v1")

	limited := middleware.RateLimitMiddleware(credentialLimiter)

	// Credential routes (public, rate limited)
	api.POST("/users/register", authHandler.Register, limited)
	api.POST("/auth/token", authHandler.ObtainToken, limited)
	api.POST("/auth/token/refresh", authHandler.RefreshToken, limited)

	// Profile routes (protected)
	users := api.Group("/users")
	users.Use(authMiddleware.Authenticate())
	users.GET("/profile", profileHandler.GetProfile)
	users.PUT("/profile", profileHandler.UpdateProfile)
	users.PATCH("/profile", profileHandler.UpdateProfile)
	users.DELETE("/profile", profileHandler.DeleteAccount)
	users.POST("/change-password", profileHandler.ChangePassword)

	// Category routes (protected)
	categories := api.Group("/categories")
	categories.Use(authMiddleware.Authenticate())
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.PATCH("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Transaction routes (protected)
	transactions := api.Group("/transactions")
	transactions.Use(authMiddleware.Authenticate())
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.PATCH("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes (protected)
	budgets := api.Group("/budgets")
	budgets.Use(authMiddleware.Authenticate())
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.PATCH("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Analytics routes (protected)
	analytics := api.Group("/analytics")
	analytics.Use(authMiddleware.Authenticate())
	analytics.GET("/dashboard", analyticsHandler.GetDashboard)
	analytics.GET("/expenses-by-category", analyticsHandler.GetExpensesByCategory)
	analytics.GET("/spending-trend", analyticsHandler.GetSpendingTrend)
	analytics.GET("/budget-progress", analyticsHandler.GetBudgetProgress)
}
