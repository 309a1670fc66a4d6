package quiz

import "math"

type ScoreData struct {
	AptitudeScore float64 `json:"aptitude_score"`
	Accuracy      float64 `json:"accuracy"`
	Level         string  `json:"level"`
	Fit           string  `json:"fit"`
	Correct       int     `json:"correct"`
	Total         int     `json:"total"`
	TimeTaken     float64 `json:"time_taken"`
}

// CalculateScore reproduz a fórmula de aptidão observada no produto:
// accuracy entra tanto no peso direto de 0.6 quanto, indiretamente, no
// adjusted score. Não "corrigir" sem alinhar com o time de psicometria.
func CalculateScore(correct, total int, timeTaken float64, difficultyScore int) ScoreData {
	var accuracy float64
	if total > 0 {
		accuracy = float64(correct) / float64(total) * 100
	}

	avgTime := timeTaken
	if total > 0 {
		avgTime = timeTaken / float64(total)
	}

	var timeScore float64
	switch {
	case avgTime >= 30 && avgTime <= 60:
		timeScore = 100
	case avgTime < 30:
		timeScore = 80
	default:
		timeScore = math.Max(50, 100-(avgTime-60)*2)
	}

	difficultyMultiplier := 1 + float64(difficultyScore)/20
	adjustedScore := accuracy * difficultyMultiplier

	aptitudeScore := accuracy*0.6 + timeScore*0.2 + adjustedScore*0.2

	var level, fit string
	switch {
	case aptitudeScore >= 85:
		level, fit = "Exceptional", "Highly Suitable"
	case aptitudeScore >= 70:
		level, fit = "Strong", "Well Suited"
	case aptitudeScore >= 55:
		level, fit = "Moderate", "Suitable with Development"
	case aptitudeScore >= 40:
		level, fit = "Developing", "Needs Foundation"
	default:
		level, fit = "Beginner", "Requires Development"
	}

	return ScoreData{
		AptitudeScore: round2(aptitudeScore),
		Accuracy:      round2(accuracy),
		Level:         level,
		Fit:           fit,
		Correct:       correct,
		Total:         total,
		TimeTaken:     round2(timeTaken),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
