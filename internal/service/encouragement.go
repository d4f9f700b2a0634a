package service

import "context"

type EncouragementRepository interface {
	Get(index int) string
}

type EncouragementService struct {
	repository EncouragementRepository
}

func NewEncouragementService(repository EncouragementRepository) *EncouragementService {
	return &EncouragementService{repository: repository}
}

// ForQuestion returns the encouragement shown after the 0-based question index.
func (s *EncouragementService) ForQuestion(_ context.Context, index int) string {
	return s.repository.Get(index)
}
