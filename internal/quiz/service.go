package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/grh-platform/grh-lambda/internal/auth"
	"github.com/grh-platform/grh-lambda/internal/config"
	"github.com/grh-platform/grh-lambda/internal/quizgen"
)

var (
	ErrNoSession        = errors.New("no active session")
	ErrGenerationFailed = errors.New("question generation failed")
	ErrQuizIncomplete   = errors.New("quiz not completed")
)

type Generator interface {
	GenerateQuestions(ctx context.Context, req quizgen.GenerateRequest) []quizgen.Question
	GenerateFeedback(ctx context.Context, in quizgen.FeedbackInput) string
}

type Service interface {
	Start(ctx context.Context, req StartQuizRequest) (*StartQuizResponse, error)
	Submit(ctx context.Context, req SubmitAnswerRequest) (*SubmitAnswerResponse, error)
	Results(ctx context.Context, req QuizResultsRequest) (*QuizResultsResponse, error)
	History(ctx context.Context, limit int) ([]*Result, error)
}

type service struct {
	store     Store
	results   ResultRepository
	generator Generator
}

func NewService(store Store, results ResultRepository, generator Generator) Service {
	return &service{
		store:     store,
		results:   results,
		generator: generator,
	}
}

func (s *service) Start(ctx context.Context, req StartQuizRequest) (*StartQuizResponse, error) {
	log := config.WithContext(ctx)

	difficulty := DetermineDifficulty(req.Age, req.Education)

	questions := s.generator.GenerateQuestions(ctx, quizgen.GenerateRequest{
		Domain:          req.Domain,
		DifficultyLevel: string(difficulty.Level),
		NumQuestions:    quizgen.DefaultNumQuestions,
	})
	if len(questions) == 0 {
		log.Error("Não foi possível iniciar o quiz: nenhuma pergunta gerada")
		return nil, ErrGenerationFailed
	}

	session := &Session{
		ID:        uuid.New(),
		Questions: questions,
		Answers:   []int{},
		User: UserMeta{
			Age:       req.Age,
			Education: req.Education,
			Domain:    req.Domain,
		},
		Difficulty: difficulty,
		StartTime:  time.Now(),
	}

	if err := s.store.Put(ctx, session); err != nil {
		log.WithError(err).Error("Erro ao armazenar sessão do quiz")
		return nil, err
	}

	token, err := auth.GenerateSessionToken(session.ID.String(), auth.SessionTokenTTL)
	if err != nil {
		log.WithError(err).Error("Erro ao emitir token de sessão")
		return nil, err
	}

	log.WithField("session_id", session.ID.String()).
		Infof("Quiz iniciado com %d perguntas (%s)", len(questions), difficulty.Level)

	return &StartQuizResponse{
		SessionID:      token,
		TotalQuestions: len(questions),
		QuestionNum:    0,
		Question:       toQuestionPayload(questions[0]),
		Difficulty:     difficulty,
	}, nil
}

func (s *service) Submit(ctx context.Context, req SubmitAnswerRequest) (*SubmitAnswerResponse, error) {
	log := config.WithContext(ctx)

	session, err := s.resolve(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	session.Answers = append(session.Answers, req.Answer)
	if err := s.store.Put(ctx, session); err != nil {
		log.WithError(err).Error("Erro ao atualizar sessão do quiz")
		return nil, err
	}

	if len(session.Answers) >= len(session.Questions) {
		log.WithField("session_id", session.ID.String()).
			Info("Quiz concluído, aguardando busca de resultados")
		return &SubmitAnswerResponse{Completed: true}, nil
	}

	next := len(session.Answers)
	question := toQuestionPayload(session.Questions[next])

	return &SubmitAnswerResponse{
		Completed:   false,
		QuestionNum: next,
		Question:    &question,
	}, nil
}

func (s *service) Results(ctx context.Context, req QuizResultsRequest) (*QuizResultsResponse, error) {
	log := config.WithContext(ctx)

	session, err := s.resolve(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	if len(session.Answers) < len(session.Questions) {
		return nil, ErrQuizIncomplete
	}

	// A sessão é de uso único: removida mesmo que o feedback ou a
	// persistência do resultado falhem.
	defer func() {
		if err := s.store.Delete(ctx, session.ID); err != nil {
			log.WithError(err).Error("Erro ao remover sessão do quiz")
		}
	}()

	correct := 0
	for i, q := range session.Questions {
		if session.Answers[i] == q.Answer {
			correct++
		}
	}

	timeTaken := time.Since(session.StartTime).Seconds()
	score := CalculateScore(correct, len(session.Questions), timeTaken, session.Difficulty.Score)

	feedback := s.generator.GenerateFeedback(ctx, quizgen.FeedbackInput{
		Age:           session.User.Age,
		Education:     session.User.Education,
		Domain:        session.User.Domain,
		AptitudeScore: score.AptitudeScore,
		Accuracy:      score.Accuracy,
		Correct:       score.Correct,
		Total:         score.Total,
		Level:         score.Level,
		Fit:           score.Fit,
		Questions:     session.Questions,
		Answers:       session.Answers,
	})

	result := &Result{
		ID:            uuid.New(),
		SessionID:     session.ID,
		Domain:        session.User.Domain,
		Age:           session.User.Age,
		Education:     session.User.Education,
		AptitudeScore: score.AptitudeScore,
		Accuracy:      score.Accuracy,
		Level:         score.Level,
		Fit:           score.Fit,
		Correct:       score.Correct,
		Total:         score.Total,
		TimeTaken:     score.TimeTaken,
		Feedback:      feedback,
	}
	if err := s.results.Save(result); err != nil {
		log.WithError(err).Error("Erro ao salvar resultado do quiz")
	}

	log.WithField("session_id", session.ID.String()).
		Infof("Resultados calculados: %.2f (%s)", score.AptitudeScore, score.Level)

	return &QuizResultsResponse{Score: score, Feedback: feedback}, nil
}

func (s *service) History(ctx context.Context, limit int) ([]*Result, error) {
	results, err := s.results.ListRecent(limit)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao listar histórico de resultados")
		return nil, err
	}
	return results, nil
}

func (s *service) resolve(ctx context.Context, token string) (*Session, error) {
	claims, err := auth.ValidateSessionToken(token)
	if err != nil {
		return nil, ErrNoSession
	}

	id, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, ErrNoSession
	}

	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoSession
	}

	return session, nil
}

func toQuestionPayload(q quizgen.Question) QuestionPayload {
	return QuestionPayload{Stem: q.Stem, Options: q.Options}
}
