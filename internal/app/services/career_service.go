package services

import (
	"context"
	"fmt"

	"github.com/usc-bienestar/backend/internal/app/models"
)

// CareerService exposes the career catalog
type CareerService interface {
	List(ctx context.Context) ([]*models.Career, error)
}

// careerServiceImpl implements the CareerService interface
type careerServiceImpl struct {
	careers CareerStore
}

// NewCareerService creates a new career service instance
func NewCareerService(careers CareerStore) CareerService {
	return &careerServiceImpl{careers: careers}
}

func (s *careerServiceImpl) List(ctx context.Context) ([]*models.Career, error) {
	careers, err := s.careers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing careers: %w", err)
	}
	return careers, nil
}
