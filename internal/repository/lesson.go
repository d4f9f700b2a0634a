package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/aliskhannn/grammar-genius/internal/domain/entities"
)

var (
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrInvalidLessonKey = errors.New("invalid lesson key")
	ErrInvalidLesson    = errors.New("invalid lesson")
	ErrNoLessons        = errors.New("no lessons")
)

//go:embed data/lessons.json
var builtinLessons []byte

// LessonRepository provides read-only access to the tense lessons.
// Lessons are loaded once and never mutated afterwards.
type LessonRepository struct {
	lessons []*entities.Lesson // sorted by numeric key
	byKey   map[string]*entities.Lesson
	exitKey string
}

// NewLessonRepository creates a LessonRepository.
// An empty path selects the built-in lessons; otherwise lessons are read
// from the JSON file at path.
func NewLessonRepository(path string) (*LessonRepository, error) {
	data := builtinLessons
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read lessons file: %w", err)
		}
	}

	lessons, err := parseLessons(data)
	if err != nil {
		return nil, err
	}

	return newLessonRepository(lessons)
}

func newLessonRepository(lessons []*entities.Lesson) (*LessonRepository, error) {
	if len(lessons) == 0 {
		return nil, ErrNoLessons
	}

	byKey := make(map[string]*entities.Lesson, len(lessons))
	numbers := make(map[*entities.Lesson]int, len(lessons))
	maxKey := 0

	for _, l := range lessons {
		if l == nil {
			return nil, fmt.Errorf("%w: empty entry", ErrInvalidLesson)
		}

		n, err := parseKey(l.Key)
		if err != nil {
			return nil, err
		}
		if _, ok := byKey[l.Key]; ok {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidLessonKey, l.Key)
		}
		if l.Name == "" {
			return nil, fmt.Errorf("%w: lesson %q has no name", ErrInvalidLesson, l.Key)
		}
		if len(l.Examples) == 0 {
			return nil, fmt.Errorf("%w: lesson %q has no examples", ErrInvalidLesson, l.Key)
		}

		byKey[l.Key] = l
		numbers[l] = n
		maxKey = max(maxKey, n)
	}

	sorted := slices.Clone(lessons)
	slices.SortFunc(sorted, func(a, b *entities.Lesson) int {
		return numbers[a] - numbers[b]
	})

	return &LessonRepository{
		lessons: sorted,
		byKey:   byKey,
		exitKey: strconv.Itoa(maxKey + 1),
	}, nil
}

// GetByKey returns the lesson with the specified menu key.
// If there is no such lesson, it returns ErrLessonNotFound.
func (r *LessonRepository) GetByKey(_ context.Context, key string) (*entities.Lesson, error) {
	l, ok := r.byKey[key]
	if !ok {
		return nil, ErrLessonNotFound
	}

	return l, nil
}

// GetAll retrieves all lessons in menu order.
func (r *LessonRepository) GetAll(_ context.Context) ([]*entities.Lesson, error) {
	return r.lessons, nil
}

// ExitKey returns the menu key that ends the game.
// It is one past the largest lesson key, so it never collides with a lesson.
func (r *LessonRepository) ExitKey() string {
	return r.exitKey
}

func parseLessons(data []byte) ([]*entities.Lesson, error) {
	var wrapper struct {
		Lessons []*entities.Lesson `json:"lessons"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lessons JSON: %w", err)
	}

	return wrapper.Lessons, nil
}

// parseKey accepts positive decimal integers in canonical form only,
// so "01" and "+1" are rejected and keys compare equal to what users type.
func parseKey(key string) (int, error) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || strconv.Itoa(n) != key {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLessonKey, key)
	}

	return n, nil
}
