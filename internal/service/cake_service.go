package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bespoke-cakes/backend/internal/model"
	"github.com/bespoke-cakes/backend/internal/repository"
)

var ErrNotFound = errors.New("not found")

type CakeService interface {
	List(ctx context.Context, category string, featured *bool) ([]model.Cake, error)
	GetBySlug(ctx context.Context, slug string) (*model.Cake, error)
}

type cakeService struct {
	repo repository.CakeRepository
}

func NewCakeService(repo repository.CakeRepository) CakeService {
	return &cakeService{repo: repo}
}

func (s *cakeService) List(ctx context.Context, category string, featured *bool) ([]model.Cake, error) {
	filter := repository.CakeFilter{Featured: featured}
	if c := strings.TrimSpace(category); c != "" {
		filter.Category = &c
	}
	return s.repo.List(ctx, filter)
}

func (s *cakeService) GetBySlug(ctx context.Context, slug string) (*model.Cake, error) {
	cake, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if cake == nil {
		return nil, ErrNotFound
	}
	return cake, nil
}
