package quizgen

type Question struct {
	Stem        string   `json:"stem"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation"`
}

type GenerateRequest struct {
	Domain          string
	DifficultyLevel string
	NumQuestions    int
}

type FeedbackInput struct {
	Age           int
	Education     string
	Domain        string
	AptitudeScore float64
	Accuracy      float64
	Correct       int
	Total         int
	Level         string
	Fit           string
	Questions     []Question
	Answers       []int
}
