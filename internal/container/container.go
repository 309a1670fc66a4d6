package container

import (
	"context"
	"log"
	"os"

	"github.com/grh-platform/grh-lambda/internal/auth"
	"github.com/grh-platform/grh-lambda/internal/chatbot"
	"github.com/grh-platform/grh-lambda/internal/config"
	"github.com/grh-platform/grh-lambda/internal/llm"
	"github.com/grh-platform/grh-lambda/internal/quiz"
	"github.com/grh-platform/grh-lambda/internal/quizgen"
)

type Container struct {
	QuizContainer    *quiz.QuizContainer
	ChatbotContainer *chatbot.ChatbotContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	ctx := context.Background()

	provider, err := llm.NewProviderFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to initialize LLM provider: %v", err)
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		if err := config.Connect(ctx, dsn); err != nil {
			log.Fatalf("failed to connect to DB: %v", err)
		}
		if err := config.DB.AutoMigrate(&quiz.SessionRecord{}, &quiz.Result{}); err != nil {
			log.Fatalf("failed to migrate schema: %v", err)
		}
	}

	generator := quizgen.NewService(provider)

	return &Container{
		QuizContainer:    quiz.NewQuizContainer(config.DB, generator),
		ChatbotContainer: chatbot.NewChatbotContainer(provider),
	}
}
