package quiz_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/grh-platform/grh-lambda/internal/quiz"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := quiz.NewMemoryStore()

	session := &quiz.Session{
		ID:        uuid.New(),
		Questions: stubQuestions(2),
		Answers:   []int{},
		User:      quiz.UserMeta{Age: 20, Education: "Undergraduate", Domain: "Biology"},
		StartTime: time.Now(),
	}

	t.Run("GetMissingReturnsNil", func(t *testing.T) {
		got, err := store.Get(ctx, uuid.New())
		if err != nil {
			t.Fatalf("Get falhou: %v", err)
		}
		if got != nil {
			t.Error("Sessão inexistente deveria retornar nil")
		}
	})

	t.Run("PutAndGet", func(t *testing.T) {
		if err := store.Put(ctx, session); err != nil {
			t.Fatalf("Put falhou: %v", err)
		}

		got, err := store.Get(ctx, session.ID)
		if err != nil {
			t.Fatalf("Get falhou: %v", err)
		}
		if got == nil || got.ID != session.ID {
			t.Fatalf("Sessão recuperada incorreta: %+v", got)
		}
		if len(got.Questions) != 2 {
			t.Errorf("Perguntas não preservadas: %d", len(got.Questions))
		}
	})

	t.Run("UpdateViaPut", func(t *testing.T) {
		session.Answers = append(session.Answers, 1)
		if err := store.Put(ctx, session); err != nil {
			t.Fatalf("Put de atualização falhou: %v", err)
		}

		got, _ := store.Get(ctx, session.ID)
		if got == nil || len(got.Answers) != 1 {
			t.Fatalf("Atualização não persistida: %+v", got)
		}
	})

	t.Run("GetAfterDelete", func(t *testing.T) {
		if err := store.Delete(ctx, session.ID); err != nil {
			t.Fatalf("Delete falhou: %v", err)
		}

		got, err := store.Get(ctx, session.ID)
		if err != nil {
			t.Fatalf("Get falhou: %v", err)
		}
		if got != nil {
			t.Error("Sessão removida deveria retornar nil")
		}
	})
}
