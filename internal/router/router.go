package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/grh-platform/grh-lambda/internal/chatbot"
	"github.com/grh-platform/grh-lambda/internal/middlewares"
	"github.com/grh-platform/grh-lambda/internal/quiz"
)

type RouterConfig struct {
	QuizHandler    *quiz.Handler
	ChatbotHandler *chatbot.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", cfg.ChatbotHandler.APIInfo)
	r.Get("/health", cfg.ChatbotHandler.Health)
	r.Post("/ask", cfg.ChatbotHandler.Ask)

	r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))

	return r
}
