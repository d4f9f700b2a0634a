package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/grammar-genius/internal/domain/entities"
	"github.com/aliskhannn/grammar-genius/internal/repository"
)

type failingLessonRepository struct {
	err error
}

func (r failingLessonRepository) GetByKey(context.Context, string) (*entities.Lesson, error) {
	return nil, r.err
}

func (r failingLessonRepository) GetAll(context.Context) ([]*entities.Lesson, error) {
	return nil, r.err
}

func (r failingLessonRepository) ExitKey() string { return "1" }

func TestMenu(t *testing.T) {
	repo, err := repository.NewLessonRepository("")
	require.NoError(t, err)

	items, err := NewLessonService(repo).Menu(context.Background())
	require.NoError(t, err)

	want := []entities.MenuItem{
		{Key: "1", Label: "Present Simple"},
		{Key: "2", Label: "Past Simple"},
		{Key: "3", Label: "Present Continuous"},
		{Key: "4", Label: "Past Continuous"},
		{Key: "5", Label: "Present Perfect"},
		{Key: "6", Label: "Future Simple"},
		{Key: "7", Label: "Future Continuous"},
		{Key: "8", Label: "Exit"},
	}
	assert.Equal(t, want, items)
}

func TestMenuKeysResolve(t *testing.T) {
	repo, err := repository.NewLessonRepository("")
	require.NoError(t, err)
	svc := NewLessonService(repo)

	items, err := svc.Menu(context.Background())
	require.NoError(t, err)

	for _, item := range items {
		_, err := svc.GetByKey(context.Background(), item.Key)
		if item.Key == svc.ExitKey() {
			assert.ErrorIs(t, err, repository.ErrLessonNotFound, "exit key must not name a lesson")
			continue
		}
		assert.NoError(t, err, "menu key %q", item.Key)
	}
}

func TestMenuRepositoryError(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewLessonService(failingLessonRepository{err: boom}).Menu(context.Background())
	assert.ErrorIs(t, err, boom)
}
