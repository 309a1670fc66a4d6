package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/grh-platform/grh-lambda/internal/config"
	"github.com/grh-platform/grh-lambda/internal/llm"
)

var ErrNotReady = errors.New("retrieval index not ready")

const (
	retrievalTopK      = 4
	answerTemperature  = 0.0
	answerMaxTokens    = 1024
	answerPromptFormat = `You are a helpful assistant for Global Research Hub (GRH). Answer questions based on the provided context.

If the answer is not in the context, politely say you don't have that information and suggest contacting GRH directly.

Context: %s

Question: %s

Answer (be concise and helpful):`
)

type Readiness struct {
	Index bool `json:"vector_store"`
	Chain bool `json:"retrieval_chain"`
	Ready bool `json:"ready"`
}

type Service interface {
	Ask(ctx context.Context, question string) (string, error)
	Readiness() Readiness
}

type service struct {
	retriever Retriever
	provider  llm.Provider
}

func NewService(retriever Retriever, provider llm.Provider) Service {
	return &service{retriever: retriever, provider: provider}
}

func (s *service) Readiness() Readiness {
	index := s.retriever != nil
	chain := s.retriever != nil && s.provider != nil
	return Readiness{Index: index, Chain: chain, Ready: index && chain}
}

func (s *service) Ask(ctx context.Context, question string) (string, error) {
	logger := config.WithContext(ctx)

	if !s.Readiness().Ready {
		return "", ErrNotReady
	}

	passages, err := s.retriever.Retrieve(ctx, question, retrievalTopK)
	if err != nil {
		logger.WithError(err).Error("[CHATBOT] Falha ao recuperar passagens")
		return "", fmt.Errorf("falha ao recuperar contexto: %w", err)
	}

	contents := make([]string, 0, len(passages))
	for _, passage := range passages {
		contents = append(contents, passage.Content)
	}
	docContext := strings.Join(contents, "\n\n")

	answer, err := s.provider.SendPrompt(ctx, llm.Request{
		User:        fmt.Sprintf(answerPromptFormat, docContext, question),
		Temperature: answerTemperature,
		MaxTokens:   answerMaxTokens,
	})
	if err != nil {
		logger.WithError(err).Error("[CHATBOT] Falha ao gerar resposta")
		return "", fmt.Errorf("falha ao gerar resposta: %w", err)
	}

	return strings.TrimSpace(answer), nil
}
