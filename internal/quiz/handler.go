package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grh-platform/grh-lambda/internal/config"
)

const defaultHistoryLimit = 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req StartQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para iniciar quiz")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Start(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrGenerationFailed) {
			config.JSON(w, http.StatusServiceUnavailable, map[string]string{
				"error": "Unable to generate quiz questions. Please try again later.",
			})
			return
		}
		log.WithError(err).Error("Erro ao iniciar quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para enviar resposta")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Submit(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			config.JSON(w, http.StatusNotFound, map[string]string{
				"error": "No active session. Please start a new quiz.",
			})
			return
		}
		log.WithError(err).Error("Erro ao registrar resposta")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuizResultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para buscar resultados")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Results(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoSession):
			config.JSON(w, http.StatusNotFound, map[string]string{
				"error": "No session found.",
			})
		case errors.Is(err, ErrQuizIncomplete):
			config.JSON(w, http.StatusBadRequest, map[string]string{
				"error": "Quiz is not completed yet.",
			})
		default:
			log.WithError(err).Error("Erro ao calcular resultados")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	results, err := h.service.History(r.Context(), defaultHistoryLimit)
	if err != nil {
		log.WithError(err).Error("Erro ao listar histórico")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []*Result{}
	}

	config.JSON(w, http.StatusOK, results)
}
