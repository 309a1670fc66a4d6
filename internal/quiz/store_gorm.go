package quiz

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Put(ctx context.Context, session *Session) error {
	questions, err := json.Marshal(session.Questions)
	if err != nil {
		return err
	}
	answers, err := json.Marshal(session.Answers)
	if err != nil {
		return err
	}

	record := SessionRecord{
		ID:              session.ID,
		Questions:       questions,
		Answers:         answers,
		Age:             session.User.Age,
		Education:       session.User.Education,
		Domain:          session.User.Domain,
		DifficultyLevel: string(session.Difficulty.Level),
		DifficultyScore: session.Difficulty.Score,
		StartTime:       session.StartTime,
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&record).Error
}

func (s *gormStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	var record SessionRecord
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	session := &Session{
		ID: record.ID,
		User: UserMeta{
			Age:       record.Age,
			Education: record.Education,
			Domain:    record.Domain,
		},
		Difficulty: DifficultyInfo{
			Level: DifficultyLevel(record.DifficultyLevel),
			Score: record.DifficultyScore,
		},
		StartTime: record.StartTime,
	}

	if err := json.Unmarshal(record.Questions, &session.Questions); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(record.Answers, &session.Answers); err != nil {
		return nil, err
	}
	if session.Answers == nil {
		session.Answers = []int{}
	}

	return session, nil
}

func (s *gormStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&SessionRecord{}, "id = ?", id).Error
}
