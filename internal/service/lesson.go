package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/grammar-genius/internal/domain/entities"
)

const exitLabel = "Exit"

type LessonRepository interface {
	GetByKey(_ context.Context, key string) (*entities.Lesson, error)
	GetAll(_ context.Context) ([]*entities.Lesson, error)
	ExitKey() string
}

type LessonService struct {
	repository LessonRepository
}

func NewLessonService(repository LessonRepository) *LessonService {
	return &LessonService{repository: repository}
}

func (s *LessonService) GetByKey(ctx context.Context, key string) (*entities.Lesson, error) {
	return s.repository.GetByKey(ctx, key)
}

func (s *LessonService) GetAll(ctx context.Context) ([]*entities.Lesson, error) {
	return s.repository.GetAll(ctx)
}

func (s *LessonService) ExitKey() string {
	return s.repository.ExitKey()
}

// Menu returns one item per lesson in menu order followed by the exit item.
func (s *LessonService) Menu(ctx context.Context) ([]entities.MenuItem, error) {
	lessons, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get lessons: %w", err)
	}

	items := make([]entities.MenuItem, 0, len(lessons)+1)
	for _, l := range lessons {
		items = append(items, entities.MenuItem{Key: l.Key, Label: l.Name})
	}
	items = append(items, entities.MenuItem{Key: s.repository.ExitKey(), Label: exitLabel})

	return items, nil
}
