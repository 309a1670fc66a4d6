package quizgen

import (
	"context"

	"github.com/grh-platform/grh-lambda/internal/config"
	"github.com/grh-platform/grh-lambda/internal/llm"
)

type Service interface {
	GenerateQuestions(ctx context.Context, req GenerateRequest) []Question
	GenerateFeedback(ctx context.Context, in FeedbackInput) string
}

type service struct {
	provider llm.Provider
}

func NewService(provider llm.Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestions(ctx context.Context, req GenerateRequest) []Question {
	log := config.WithContext(ctx)

	if req.NumQuestions <= 0 {
		req.NumQuestions = DefaultNumQuestions
	}

	log.Infof("[QUIZGEN] Gerando %d perguntas para %s...", req.NumQuestions, req.Domain)

	raw, err := s.provider.SendPrompt(ctx, llm.Request{
		System:      questionSystemPrompt,
		User:        BuildQuestionPrompt(req),
		Temperature: 0.5,
		MaxTokens:   4000,
	})
	if err != nil {
		log.WithError(err).Error("[QUIZGEN] Falha na chamada ao modelo")
		return nil
	}

	items, err := ExtractArray(raw)
	if err != nil {
		log.WithError(err).Errorf("[QUIZGEN] Resposta sem array JSON utilizável: %.200s", raw)
		return nil
	}

	var validated []Question
	for i, item := range items {
		q, err := validateQuestion(item)
		if err != nil {
			log.Warnf("[QUIZGEN] Pergunta %d descartada: %v", i, err)
			continue
		}
		validated = append(validated, *q)
	}

	if len(validated) == 0 {
		log.Error("[QUIZGEN] Nenhuma pergunta válida gerada")
		return nil
	}
	if len(validated) > req.NumQuestions {
		validated = validated[:req.NumQuestions]
	}

	log.Infof("[QUIZGEN] Geradas %d perguntas válidas", len(validated))
	return validated
}
