package quiz

import "gorm.io/gorm"

type QuizContainer struct {
	Handler *Handler
	Service Service
}

func NewQuizContainer(db *gorm.DB, generator Generator) *QuizContainer {
	var store Store
	var results ResultRepository

	if db != nil {
		store = NewGormStore(db)
		results = NewResultRepository(db)
	} else {
		store = NewMemoryStore()
		results = NewMemoryResultRepository()
	}

	service := NewService(store, results, generator)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
