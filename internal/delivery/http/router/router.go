// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"solhub/internal/delivery/http/middleware"
	"solhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EnterpriseHandler *handler.EnterpriseHandler
	UserHandler       *handler.UserHandler
	SolutionHandler   *handler.SolutionHandler
	CategoryHandler   *handler.CategoryHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	enterpriseHandler *handler.EnterpriseHandler
	userHandler       *handler.UserHandler
	solutionHandler   *handler.SolutionHandler
	categoryHandler   *handler.CategoryHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		enterpriseHandler: params.EnterpriseHandler,
		userHandler:       params.UserHandler,
		solutionHandler:   params.SolutionHandler,
		categoryHandler:   params.CategoryHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Two authorization flavors exist behind Authenticate: the strict subject
// check (the :id in the path must BE the token subject) and the generic
// check (any valid token passes, ownership is resolved in the usecase).
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	strictSubject := r.authMiddleware.RequireSubjectParam("id")

	// Enterprise account routes
	enterpriseGroup := e.Group("/enterprises")
	{
		enterpriseGroup.POST("", r.enterpriseHandler.Register)
		enterpriseGroup.POST("/login", r.enterpriseHandler.Login)

		enterpriseGroup.GET("/:id", r.enterpriseHandler.Get, r.authMiddleware.Authenticate, strictSubject)
		enterpriseGroup.PATCH("/:id", r.enterpriseHandler.Update, r.authMiddleware.Authenticate, strictSubject)
		enterpriseGroup.DELETE("/:id", r.enterpriseHandler.Deactivate, r.authMiddleware.Authenticate, strictSubject)

		// User management, performed by the owning enterprise
		enterpriseGroup.POST("/:id/users", r.userHandler.Create, r.authMiddleware.Authenticate, strictSubject)
		enterpriseGroup.GET("/:id/users", r.userHandler.List, r.authMiddleware.Authenticate, strictSubject)
		enterpriseGroup.GET("/:id/users/:userId", r.userHandler.Get, r.authMiddleware.Authenticate, strictSubject)
		enterpriseGroup.PATCH("/:id/users/:userId", r.userHandler.Update, r.authMiddleware.Authenticate, strictSubject)
		enterpriseGroup.DELETE("/:id/users/:userId", r.userHandler.Delete, r.authMiddleware.Authenticate, strictSubject)
		enterpriseGroup.POST("/:id/users/:userId/credentials", r.userHandler.ResendCredentials, r.authMiddleware.Authenticate, strictSubject)

		// Solution collection, readable by the enterprise or its members
		enterpriseGroup.GET("/:id/solutions", r.solutionHandler.List, r.authMiddleware.Authenticate)

		// Categories
		enterpriseGroup.POST("/:id/categories", r.categoryHandler.Create, r.authMiddleware.Authenticate, strictSubject)
		enterpriseGroup.GET("/:id/categories", r.categoryHandler.List, r.authMiddleware.Authenticate, strictSubject)
	}

	// User login
	e.POST("/users/login", r.userHandler.Login)

	// Solution routes
	solutionGroup := e.Group("/solutions")
	solutionGroup.Use(r.authMiddleware.Authenticate)
	{
		solutionGroup.POST("/users/:id", r.solutionHandler.Create, strictSubject)
		solutionGroup.PATCH("/:solutionId/users/:id", r.solutionHandler.Update, strictSubject)
		solutionGroup.GET("/:solutionId", r.solutionHandler.Get)
		solutionGroup.DELETE("/:solutionId/auth/:authId/enterprises/:enterpriseId/users/:userId", r.solutionHandler.Delete)
	}
}
