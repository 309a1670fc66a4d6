package chatbot

type QuestionRequest struct {
	Question string `json:"question"`
}

type AnswerResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Status   string `json:"status"`
}

type HealthResponse struct {
	Status     string    `json:"status"`
	Components Readiness `json:"components"`
}

type APIInfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}
