// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tutoria/config"
	"tutoria/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AIHandler      *handler.AIHandler
	AccountHandler *handler.AccountHandler
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	aiHandler      *handler.AIHandler
	accountHandler *handler.AccountHandler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		aiHandler:      params.AIHandler,
		accountHandler: params.AccountHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Authentication is decided by the route gate before routing, so no group carries its own middleware.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	e.GET("/teste", handler.Teste)

	// Account routes
	e.POST("/register", r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)
	e.POST("/logout", r.accountHandler.Logout)

	meGroup := e.Group("/me")
	{
		meGroup.GET("", r.accountHandler.Me)
		meGroup.PUT("/nome", r.accountHandler.UpdateName)
		meGroup.PUT("/senha", r.accountHandler.UpdatePassword)
	}

	// Study endpoints
	aiGroup := e.Group("/api/ai")
	{
		aiGroup.GET("/health", r.aiHandler.Health)

		aiGroup.POST("/resumir/pdf", r.aiHandler.SummarizePDF)
		aiGroup.POST("/resumir/texto", r.aiHandler.SummarizeText)

		aiGroup.POST("/quiz/pdf", r.aiHandler.QuizPDF)
		aiGroup.POST("/quiz/texto", r.aiHandler.QuizText)

		aiGroup.POST("/flashcards/pdf", r.aiHandler.FlashcardsPDF)
		aiGroup.POST("/flashcards/texto", r.aiHandler.FlashcardsText)

		aiGroup.POST("/perguntar", r.aiHandler.Ask)
		aiGroup.POST("/perguntar/contexto", r.aiHandler.AskWithContext)
		aiGroup.POST("/perguntar/pdf", r.aiHandler.AskWithPDF)
	}
}

// RegisterStatic serves the frontend build at / when a directory is configured.
func (r *router) RegisterStatic(e *echo.Echo) {
	if r.config.HTTP.StaticDir == "" {
		return
	}

	e.Static("/", r.config.HTTP.StaticDir)
}
