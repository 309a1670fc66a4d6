package quiz

type StartQuizRequest struct {
	Age       int    `json:"age"`
	Education string `json:"education"`
	Domain    string `json:"domain"`
}

type QuestionPayload struct {
	Stem    string   `json:"stem"`
	Options []string `json:"options"`
}

type StartQuizResponse struct {
	SessionID      string          `json:"session_id"`
	TotalQuestions int             `json:"total_questions"`
	QuestionNum    int             `json:"question_num"`
	Question       QuestionPayload `json:"question"`
	Difficulty     DifficultyInfo  `json:"difficulty"`
}

type SubmitAnswerRequest struct {
	SessionID   string `json:"session_id"`
	QuestionNum int    `json:"question_num"`
	Answer      int    `json:"answer"`
}

type SubmitAnswerResponse struct {
	Completed   bool             `json:"completed"`
	QuestionNum int              `json:"question_num,omitempty"`
	Question    *QuestionPayload `json:"question,omitempty"`
}

type QuizResultsRequest struct {
	SessionID string `json:"session_id"`
}

type QuizResultsResponse struct {
	Score    ScoreData `json:"score"`
	Feedback string    `json:"feedback"`
}
