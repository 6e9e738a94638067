// Package server wires the HTTP API: routing, request decoding and
// error mapping on top of the service layer.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"splitledger/internal/auth"
	"splitledger/internal/middleware"
	"splitledger/internal/service"
)

// RouterDeps holds everything the router needs.
type RouterDeps struct {
	Auth        *service.AuthService
	Groups      *service.GroupService
	Expenses    *service.ExpenseService
	Settlements *service.SettlementService
	JWTManager  *auth.JWTManager
	Currency    string
	Mode        string
}

// NewRouter builds the gin engine with all routes registered. Every
// route under /api/v1 except auth requires a valid bearer token.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := NewAuthHandler(deps.Auth)
	groupHandler := NewGroupHandler(deps.Groups, deps.Currency)
	expenseHandler := NewExpenseHandler(deps.Expenses)
	settlementHandler := NewSettlementHandler(deps.Settlements)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	protected := v1.Group("", middleware.RequireAuth(deps.JWTManager))
	{
		protected.POST("/groups", groupHandler.Create)
		protected.GET("/groups", groupHandler.List)
		protected.GET("/groups/:groupId", groupHandler.Get)
		protected.POST("/groups/:groupId/members", groupHandler.AddMembers)

		protected.POST("/groups/:groupId/expenses", expenseHandler.Create)
		protected.GET("/groups/:groupId/expenses", expenseHandler.List)
		protected.GET("/expenses/:expenseId", expenseHandler.Get)
		protected.PUT("/expenses/:expenseId", expenseHandler.Update)
		protected.POST("/expenses/:expenseId/confirm", expenseHandler.Confirm)
		protected.DELETE("/expenses/:expenseId", expenseHandler.Delete)

		protected.GET("/groups/:groupId/settlement", settlementHandler.Plan)
		protected.POST("/groups/:groupId/settlements", settlementHandler.Record)
		protected.GET("/groups/:groupId/settlements", settlementHandler.List)
	}

	return router
}
