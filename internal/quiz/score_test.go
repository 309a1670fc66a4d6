package quiz_test

import (
	"testing"

	"github.com/grh-platform/grh-lambda/internal/quiz"
)

func TestCalculateScore(t *testing.T) {
	t.Run("ReferenceScenario", func(t *testing.T) {
		// 8/10 corretas, 450s (média 45s), dificuldade 7:
		// accuracy 80, time 100, multiplier 1.35, adjusted 108,
		// aptitude = 0.6*80 + 0.2*100 + 0.2*108 = 89.6
		score := quiz.CalculateScore(8, 10, 450, 7)

		if score.Accuracy != 80 {
			t.Errorf("Accuracy esperada 80, recebida %v", score.Accuracy)
		}
		if score.AptitudeScore != 89.6 {
			t.Errorf("Aptitude esperada 89.6, recebida %v", score.AptitudeScore)
		}
		if score.Level != "Exceptional" || score.Fit != "Highly Suitable" {
			t.Errorf("Classificação incorreta: %s / %s", score.Level, score.Fit)
		}
		if score.Correct != 8 || score.Total != 10 {
			t.Errorf("Contagens incorretas: %d/%d", score.Correct, score.Total)
		}
		if score.TimeTaken != 450 {
			t.Errorf("TimeTaken esperado 450, recebido %v", score.TimeTaken)
		}
	})

	t.Run("AccuracyDoubleCountIsIntentional", func(t *testing.T) {
		// A fórmula observada soma accuracy duas vezes (peso direto 0.6 e
		// via adjusted score). Este teste fixa o comportamento para que
		// ninguém o "corrija" silenciosamente.
		score := quiz.CalculateScore(10, 10, 450, 10)
		// accuracy 100, time 100, adjusted 150 -> 60 + 20 + 30 = 110
		if score.AptitudeScore != 110 {
			t.Errorf("Aptitude esperada 110, recebida %v", score.AptitudeScore)
		}
	})

	t.Run("TimeScoreBranches", func(t *testing.T) {
		cases := []struct {
			name      string
			timeTaken float64
			total     int
			aptitude  float64
		}{
			// accuracy fixa em 100 com dificuldade 0: aptitude = 80 + 0.2*time
			{"AverageInWindowLow", 300, 10, 100},  // média 30 -> time 100
			{"AverageInWindowHigh", 600, 10, 100}, // média 60 -> time 100
			{"FasterThanWindow", 100, 10, 96},     // média 10 -> time 80
			{"SlowerThanWindow", 700, 10, 96},     // média 70 -> time 80
			{"FloorReached", 850, 10, 90},         // média 85 -> time 50
			{"FlooredAtFifty", 2000, 10, 90},      // média 200 -> time 50
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				score := quiz.CalculateScore(tc.total, tc.total, tc.timeTaken, 0)
				if score.AptitudeScore != tc.aptitude {
					t.Errorf("Aptitude esperada %v, recebida %v", tc.aptitude, score.AptitudeScore)
				}
			})
		}
	})

	t.Run("ZeroTotalGuard", func(t *testing.T) {
		score := quiz.CalculateScore(0, 0, 120, 5)
		if score.Accuracy != 0 {
			t.Errorf("Accuracy deveria ser 0 com total 0, recebida %v", score.Accuracy)
		}
		if score.Total != 0 || score.Correct != 0 {
			t.Errorf("Contagens incorretas: %d/%d", score.Correct, score.Total)
		}
	})

	t.Run("AccuracyAlwaysInRange", func(t *testing.T) {
		for total := 1; total <= 20; total++ {
			for correct := 0; correct <= total; correct++ {
				score := quiz.CalculateScore(correct, total, 60, 5)
				if score.Accuracy < 0 || score.Accuracy > 100 {
					t.Fatalf("Accuracy fora de [0,100] para %d/%d: %v", correct, total, score.Accuracy)
				}
			}
		}
	})

	t.Run("PerformanceLevels", func(t *testing.T) {
		cases := []struct {
			correct int
			level   string
			fit     string
		}{
			{10, "Exceptional", "Highly Suitable"},
			{7, "Strong", "Well Suited"},
			{5, "Moderate", "Suitable with Development"},
			{4, "Developing", "Needs Foundation"},
			{0, "Beginner", "Requires Development"},
		}

		for _, tc := range cases {
			// média 45s e dificuldade 0: aptitude = 0.8*accuracy + 20
			score := quiz.CalculateScore(tc.correct, 10, 450, 0)
			if score.Level != tc.level || score.Fit != tc.fit {
				t.Errorf("Para %d/10 esperava %s/%s, recebi %s/%s",
					tc.correct, tc.level, tc.fit, score.Level, score.Fit)
			}
		}
	})
}
