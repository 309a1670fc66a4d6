package quizgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/grh-platform/grh-lambda/internal/config"
	"github.com/grh-platform/grh-lambda/internal/llm"
)

const FallbackFeedback = "Continue building your research skills and domain expertise!"

const feedbackSystemPrompt = "You are an expert educational psychologist providing personalized career guidance. Be concise and practical."

const maxWrongAnswersInPrompt = 5
const maxStemLengthInPrompt = 80

const feedbackPromptTemplate = `Generate personalized feedback for a research aptitude assessment.

**User Profile:**
- Age: %d
- Education: %s
- Domain: %s

**Results:**
- Score: %.2f/100
- Accuracy: %.2f%%
- Correct: %d/%d
- Performance Level: %s
- Domain Fit: %s

%s

Provide structured feedback with:

1. Overall Performance Analysis (2-3 sentences)
2. Your Strengths (3-4 bullet points)
3. Areas for Improvement (3-4 bullet points)
4. Topic-Specific Study Recommendations (3-4 items)
5. Career Path Guidance in %s (2-3 sentences)

Be encouraging and practical.`

func BuildFeedbackPrompt(in FeedbackInput) string {
	return fmt.Sprintf(feedbackPromptTemplate,
		in.Age, in.Education, in.Domain,
		in.AptitudeScore, in.Accuracy, in.Correct, in.Total, in.Level, in.Fit,
		wrongAnswerDigest(in.Questions, in.Answers),
		in.Domain,
	)
}

type wrongAnswer struct {
	question      string
	yourAnswer    string
	correctAnswer string
	explanation   string
}

func wrongAnswerDigest(questions []Question, answers []int) string {
	n := len(questions)
	if len(answers) < n {
		n = len(answers)
	}

	var wrong []wrongAnswer
	for i := 0; i < n; i++ {
		q := questions[i]
		ans := answers[i]
		if ans == q.Answer {
			continue
		}

		stem := q.Stem
		if runes := []rune(stem); len(runes) > maxStemLengthInPrompt {
			stem = string(runes[:maxStemLengthInPrompt]) + "..."
		}

		yourAnswer := "No answer"
		if ans >= 0 && ans < len(q.Options) {
			yourAnswer = q.Options[ans]
		}

		explanation := q.Explanation
		if explanation == "" {
			explanation = "Review this concept"
		}

		wrong = append(wrong, wrongAnswer{
			question:      stem,
			yourAnswer:    yourAnswer,
			correctAnswer: q.Options[q.Answer],
			explanation:   explanation,
		})
	}

	if len(wrong) == 0 {
		return ""
	}
	if len(wrong) > maxWrongAnswersInPrompt {
		wrong = wrong[:maxWrongAnswersInPrompt]
	}

	var b strings.Builder
	b.WriteString("\n\n**Questions You Got Wrong:**\n\n")
	for idx, item := range wrong {
		fmt.Fprintf(&b, "%d. **Q:** %s\n", idx+1, item.question)
		fmt.Fprintf(&b, "   - **Your Answer:** %s\n", item.yourAnswer)
		fmt.Fprintf(&b, "   - **Correct Answer:** %s\n", item.correctAnswer)
		fmt.Fprintf(&b, "   - **Why:** %s\n\n", item.explanation)
	}
	return b.String()
}

func (s *service) GenerateFeedback(ctx context.Context, in FeedbackInput) string {
	log := config.WithContext(ctx)
	log.Info("[QUIZGEN] Gerando feedback personalizado...")

	raw, err := s.provider.SendPrompt(ctx, llm.Request{
		System:      feedbackSystemPrompt,
		User:        BuildFeedbackPrompt(in),
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil || raw == "" {
		log.WithError(err).Warn("[QUIZGEN] Falha ao gerar feedback, usando mensagem padrão")
		return FallbackFeedback
	}

	return raw
}
