package quiz_test

import (
	"testing"

	"github.com/grh-platform/grh-lambda/internal/quiz"
)

func TestDetermineDifficulty(t *testing.T) {
	t.Run("KnownScenarios", func(t *testing.T) {
		cases := []struct {
			name      string
			age       int
			education string
			score     int
			level     quiz.DifficultyLevel
		}{
			{"UndergraduateAdult", 20, "Undergraduate", 7, quiz.DifficultyAdvanced},
			{"ChildPrimary", 10, "Primary school", 1, quiz.DifficultyBeginner},
			{"TeenSecondary", 15, "Secondary school", 3, quiz.DifficultyBeginner},
			{"TeenHighSchool", 17, "High school", 4, quiz.DifficultyIntermediate},
			{"GraduateAdult", 30, "Graduate", 10, quiz.DifficultyExpert},
			{"PhDClampedAtTen", 40, "PhD/Research", 10, quiz.DifficultyExpert},
			{"ProfessionalYoungAdult", 24, "Professional", 8, quiz.DifficultyAdvanced},
			{"UnknownEducationDefaults", 20, "Bootcamp", 5, quiz.DifficultyIntermediate},
			{"EmptyEducationDefaults", 30, "", 6, quiz.DifficultyIntermediate},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				info := quiz.DetermineDifficulty(tc.age, tc.education)
				if info.Score != tc.score {
					t.Errorf("Score incorreto para (%d, %q). Esperado: %d, Recebido: %d",
						tc.age, tc.education, tc.score, info.Score)
				}
				if info.Level != tc.level {
					t.Errorf("Nível incorreto para (%d, %q). Esperado: %s, Recebido: %s",
						tc.age, tc.education, tc.level, info.Level)
				}
			})
		}
	})

	t.Run("ScoreAlwaysInRange", func(t *testing.T) {
		educations := []string{
			"Primary school", "Secondary school", "High school", "Undergraduate",
			"Graduate", "PhD/Research", "Professional", "desconhecida", "",
		}
		for _, education := range educations {
			for age := 0; age <= 100; age++ {
				info := quiz.DetermineDifficulty(age, education)
				if info.Score < 0 || info.Score > 10 {
					t.Fatalf("Score fora de [0,10] para (%d, %q): %d", age, education, info.Score)
				}
				if levelForScore(info.Score) != info.Level {
					t.Fatalf("Faixa de nível inconsistente para score %d: %s", info.Score, info.Level)
				}
			}
		}
	})
}

func levelForScore(score int) quiz.DifficultyLevel {
	switch {
	case score <= 3:
		return quiz.DifficultyBeginner
	case score <= 6:
		return quiz.DifficultyIntermediate
	case score <= 8:
		return quiz.DifficultyAdvanced
	default:
		return quiz.DifficultyExpert
	}
}
