package repository

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNoEncouragements = errors.New("encouragement table is empty")

//go:embed data/encouragements.json
var builtinEncouragements []byte

// EncouragementRepository holds the motivational messages shown after
// each answer, ordered from mild to most enthusiastic.
type EncouragementRepository struct {
	messages []string
}

// NewEncouragementRepository creates an EncouragementRepository with the built-in messages.
func NewEncouragementRepository() (*EncouragementRepository, error) {
	var wrapper struct {
		Encouragements []string `json:"encouragements"`
	}
	if err := json.Unmarshal(builtinEncouragements, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal encouragements JSON: %w", err)
	}

	return newEncouragementRepository(wrapper.Encouragements)
}

func newEncouragementRepository(messages []string) (*EncouragementRepository, error) {
	if len(messages) == 0 {
		return nil, ErrNoEncouragements
	}

	return &EncouragementRepository{messages: messages}, nil
}

// Get returns the message for the 0-based question index.
// Indices past the end reuse the last message; negative indices get the first.
func (r *EncouragementRepository) Get(index int) string {
	index = min(max(index, 0), len(r.messages)-1)
	return r.messages[index]
}

// Len returns the number of distinct messages.
func (r *EncouragementRepository) Len() int {
	return len(r.messages)
}
