package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/grammar-genius/internal/domain/entities"
)

func TestBuiltinLessons(t *testing.T) {
	repo, err := NewLessonRepository("")
	require.NoError(t, err)

	lessons, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, lessons, 7)

	for i, l := range lessons {
		assert.Equal(t, string(rune('1'+i)), l.Key, "lessons must be in key order")
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.Explanation)
		assert.NotEmpty(t, l.Examples, "lesson %s has no examples", l.Key)
	}

	assert.Equal(t, "8", repo.ExitKey())
}

func TestGetByKey(t *testing.T) {
	repo, err := NewLessonRepository("")
	require.NoError(t, err)

	tests := []struct {
		key      string
		name     string
		examples int
	}{
		{key: "1", name: "Present Simple", examples: 5},
		{key: "2", name: "Past Simple", examples: 5},
		{key: "3", name: "Present Continuous", examples: 5},
		{key: "4", name: "Past Continuous", examples: 5},
		{key: "5", name: "Present Perfect", examples: 5},
		{key: "6", name: "Future Simple", examples: 5},
		{key: "7", name: "Future Continuous", examples: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := repo.GetByKey(context.Background(), tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.name, l.Name)
			assert.Len(t, l.Examples, tt.examples)
		})
	}
}

func TestGetByKeyNotFound(t *testing.T) {
	repo, err := NewLessonRepository("")
	require.NoError(t, err)

	for _, key := range []string{"", "0", "8", "9", " 1", "1 ", "Present Simple"} {
		_, err := repo.GetByKey(context.Background(), key)
		assert.ErrorIs(t, err, ErrLessonNotFound, "key %q", key)
	}
}

func TestNewLessonRepositoryValidation(t *testing.T) {
	valid := func(key string) *entities.Lesson {
		return &entities.Lesson{Key: key, Name: "Tense " + key, Examples: []string{"x"}}
	}

	tests := []struct {
		name    string
		lessons []*entities.Lesson
		wantErr error
	}{
		{name: "empty", lessons: nil, wantErr: ErrNoLessons},
		{name: "non-numeric key", lessons: []*entities.Lesson{valid("a")}, wantErr: ErrInvalidLessonKey},
		{name: "zero key", lessons: []*entities.Lesson{valid("0")}, wantErr: ErrInvalidLessonKey},
		{name: "padded key", lessons: []*entities.Lesson{valid("01")}, wantErr: ErrInvalidLessonKey},
		{name: "duplicate key", lessons: []*entities.Lesson{valid("1"), valid("1")}, wantErr: ErrInvalidLessonKey},
		{
			name:    "no examples",
			lessons: []*entities.Lesson{{Key: "1", Name: "Tense"}},
			wantErr: ErrInvalidLesson,
		},
		{
			name:    "no name",
			lessons: []*entities.Lesson{{Key: "1", Examples: []string{"x"}}},
			wantErr: ErrInvalidLesson,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLessonRepository(tt.lessons)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExitKeyFollowsLargestKey(t *testing.T) {
	repo, err := newLessonRepository([]*entities.Lesson{
		{Key: "10", Name: "Ten", Examples: []string{"x"}},
		{Key: "2", Name: "Two", Examples: []string{"x"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "11", repo.ExitKey())

	lessons, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "2", lessons[0].Key)
	assert.Equal(t, "10", lessons[1].Key)
}

func TestNewLessonRepositoryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lessons.json")
	content := `{"lessons":[{"key":"1","name":"Past Perfect","explanation":"Before another past action.","examples":["I had left."]}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	repo, err := NewLessonRepository(path)
	require.NoError(t, err)

	l, err := repo.GetByKey(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Past Perfect", l.Name)
	assert.Equal(t, "2", repo.ExitKey())
}

func TestNewLessonRepositoryBadFile(t *testing.T) {
	_, err := NewLessonRepository(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = NewLessonRepository(path)
	require.Error(t, err)
}
