package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/joho/godotenv"

	"github.com/grh-platform/grh-lambda/internal/config"
	"github.com/grh-platform/grh-lambda/internal/container"
	"github.com/grh-platform/grh-lambda/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()

	r := router.New(router.RouterConfig{
		QuizHandler:    c.QuizContainer.Handler,
		ChatbotHandler: c.ChatbotContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	config.Logger.Infof("Servidor HTTP ouvindo na porta %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		config.Logger.WithError(err).Fatal("Servidor HTTP encerrou com erro")
	}
}
