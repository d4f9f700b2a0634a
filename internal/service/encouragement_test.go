package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/grammar-genius/internal/repository"
)

func TestForQuestion(t *testing.T) {
	repo, err := repository.NewEncouragementRepository()
	require.NoError(t, err)
	svc := NewEncouragementService(repo)

	ctx := context.Background()
	assert.Equal(t, "You're on fire! 🔥", svc.ForQuestion(ctx, 0))
	assert.Equal(t, "Keep smashing it, language legend! 💥", svc.ForQuestion(ctx, 1))
	assert.Equal(t, svc.ForQuestion(ctx, repo.Len()-1), svc.ForQuestion(ctx, repo.Len()+5))
}
