package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/start", h.StartQuiz)
	r.Post("/answer", h.SubmitAnswer)
	r.Post("/results", h.GetResults)
	r.Get("/history", h.ListHistory)

	return r
}
