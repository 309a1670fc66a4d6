package quiz

import (
	"time"

	"github.com/google/uuid"
	"github.com/grh-platform/grh-lambda/internal/quizgen"
	"gorm.io/datatypes"
)

type UserMeta struct {
	Age       int    `json:"age"`
	Education string `json:"education"`
	Domain    string `json:"domain"`
}

type Session struct {
	ID         uuid.UUID
	Questions  []quizgen.Question
	Answers    []int
	User       UserMeta
	Difficulty DifficultyInfo
	StartTime  time.Time
}

type SessionRecord struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Questions       datatypes.JSON `gorm:"type:jsonb;not null"`
	Answers         datatypes.JSON `gorm:"type:jsonb;not null"`
	Age             int            `gorm:"not null"`
	Education       string         `gorm:"type:text;not null"`
	Domain          string         `gorm:"type:text;not null"`
	DifficultyLevel string         `gorm:"type:text;not null"`
	DifficultyScore int            `gorm:"not null"`
	StartTime       time.Time      `gorm:"not null"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

func (SessionRecord) TableName() string { return "quiz_sessions" }

type Result struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID     uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	Domain        string    `gorm:"type:text;not null" json:"domain"`
	Age           int       `gorm:"not null" json:"age"`
	Education     string    `gorm:"type:text;not null" json:"education"`
	AptitudeScore float64   `gorm:"not null" json:"aptitude_score"`
	Accuracy      float64   `gorm:"not null" json:"accuracy"`
	Level         string    `gorm:"type:text;not null" json:"level"`
	Fit           string    `gorm:"type:text;not null" json:"fit"`
	Correct       int       `gorm:"not null" json:"correct"`
	Total         int       `gorm:"not null" json:"total"`
	TimeTaken     float64   `gorm:"not null" json:"time_taken"`
	Feedback      string    `gorm:"type:text" json:"feedback"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Result) TableName() string { return "quiz_results" }
