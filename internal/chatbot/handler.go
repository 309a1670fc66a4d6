package chatbot

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/grh-platform/grh-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para pergunta")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		config.JSON(w, http.StatusBadRequest, map[string]string{
			"error": "Question cannot be empty",
		})
		return
	}

	answer, err := h.service.Ask(r.Context(), req.Question)
	if err != nil {
		if errors.Is(err, ErrNotReady) {
			config.JSON(w, http.StatusServiceUnavailable, map[string]string{
				"error": "RAG system is still initializing. Please try again in a moment.",
			})
			return
		}
		log.WithError(err).Error("Erro ao processar pergunta")
		config.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "An error occurred while processing your question. Please try again.",
		})
		return
	}

	config.JSON(w, http.StatusOK, AnswerResponse{
		Question: req.Question,
		Answer:   answer,
		Status:   "success",
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, HealthResponse{
		Status:     "healthy",
		Components: h.service.Readiness(),
	})
}

func (h *Handler) APIInfo(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, APIInfoResponse{
		Message: "GRH Chatbot API",
		Version: "1.0.0",
		Status:  "active",
		Endpoints: map[string]string{
			"ask":    "/ask",
			"health": "/health",
			"quiz":   "/quiz",
		},
	})
}
