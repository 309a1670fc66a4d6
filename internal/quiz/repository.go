package quiz

import (
	"sync"

	"gorm.io/gorm"
)

type ResultRepository interface {
	Save(result *Result) error
	ListRecent(limit int) ([]*Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Save(result *Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) ListRecent(limit int) ([]*Result, error) {
	var results []*Result
	if err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

type memoryResultRepository struct {
	mu      sync.RWMutex
	results []*Result
}

func NewMemoryResultRepository() ResultRepository {
	return &memoryResultRepository{}
}

func (r *memoryResultRepository) Save(result *Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append([]*Result{result}, r.results...)
	return nil
}

func (r *memoryResultRepository) ListRecent(limit int) ([]*Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit > len(r.results) {
		limit = len(r.results)
	}
	out := make([]*Result, limit)
	copy(out, r.results[:limit])
	return out, nil
}
