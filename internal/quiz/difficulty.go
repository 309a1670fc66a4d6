package quiz

type DifficultyInfo struct {
	Level DifficultyLevel `json:"level"`
	Score int             `json:"score"`
}

var educationScores = map[string]int{
	"Primary school":   1,
	"Secondary school": 2,
	"High school":      3,
	"Undergraduate":    5,
	"Graduate":         7,
	"PhD/Research":     9,
	"Professional":     6,
}

const defaultEducationScore = 3

func DetermineDifficulty(age int, education string) DifficultyInfo {
	eduScore, ok := educationScores[education]
	if !ok {
		eduScore = defaultEducationScore
	}

	ageContrib := 3
	switch {
	case age < 12:
		ageContrib = 0
	case age < 18:
		ageContrib = 1
	case age < 25:
		ageContrib = 2
	}

	total := eduScore + ageContrib
	if total > 10 {
		total = 10
	}

	switch {
	case total <= 3:
		return DifficultyInfo{Level: DifficultyBeginner, Score: total}
	case total <= 6:
		return DifficultyInfo{Level: DifficultyIntermediate, Score: total}
	case total <= 8:
		return DifficultyInfo{Level: DifficultyAdvanced, Score: total}
	default:
		return DifficultyInfo{Level: DifficultyExpert, Score: total}
	}
}
