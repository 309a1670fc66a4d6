package quizgen

import "fmt"

const DefaultNumQuestions = 10

const questionSystemPrompt = "You are an expert in creating research aptitude assessment questions. Always return valid JSON."

const questionPromptTemplate = `Create exactly %d multiple-choice questions for research aptitude in %s.

Difficulty Level: %s

IMPORTANT: Return ONLY a valid JSON array, nothing else. No markdown, no extra text.

[
  {
    "stem": "What is the first step in the scientific method?",
    "options": ["Observation", "Hypothesis", "Experiment", "Conclusion"],
    "answer": 0,
    "explanation": "Observation is typically the first step as it leads to questions and hypotheses."
  },
  ...
]

Requirements:
- Each question must have exactly 4 options
- "answer" must be 0, 1, 2, or 3
- All fields are required`

func BuildQuestionPrompt(req GenerateRequest) string {
	qtd := req.NumQuestions
	if qtd <= 0 {
		qtd = DefaultNumQuestions
	}

	return fmt.Sprintf(questionPromptTemplate, qtd, req.Domain, req.DifficultyLevel)
}
