package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bespoke-cakes/backend/internal/model"
	"github.com/bespoke-cakes/backend/internal/repository"
)

type fakeRepo struct {
	cakes     []model.Cake
	bySlug    *model.Cake
	err       error
	gotFilter repository.CakeFilter
	gotSlug   string
}

func (f *fakeRepo) List(ctx context.Context, filter repository.CakeFilter) ([]model.Cake, error) {
	f.gotFilter = filter
	return f.cakes, f.err
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*model.Cake, error) {
	f.gotSlug = slug
	return f.bySlug, f.err
}

func TestListBuildsFilter(t *testing.T) {
	repo := &fakeRepo{cakes: []model.Cake{{Name: "X"}}}
	svc := NewCakeService(repo)

	featured := true
	cakes, err := svc.List(context.Background(), " Signature ", &featured)
	require.NoError(t, err)
	require.Len(t, cakes, 1)

	require.NotNil(t, repo.gotFilter.Category)
	require.Equal(t, "Signature", *repo.gotFilter.Category)
	require.NotNil(t, repo.gotFilter.Featured)
	require.True(t, *repo.gotFilter.Featured)
}

func TestListEmptyCategoryImposesNoConstraint(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewCakeService(repo)

	_, err := svc.List(context.Background(), "", nil)
	require.NoError(t, err)
	require.Nil(t, repo.gotFilter.Category)
	require.Nil(t, repo.gotFilter.Featured)
}

func TestGetBySlugMapsMissToNotFound(t *testing.T) {
	svc := NewCakeService(&fakeRepo{})

	_, err := svc.GetBySlug(context.Background(), "nonexistent-slug")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetBySlugHit(t *testing.T) {
	repo := &fakeRepo{bySlug: &model.Cake{Slug: "berry-velvet", BasePrice: 78}}
	svc := NewCakeService(repo)

	cake, err := svc.GetBySlug(context.Background(), "berry-velvet")
	require.NoError(t, err)
	require.Equal(t, "berry-velvet", cake.Slug)
	require.Equal(t, "berry-velvet", repo.gotSlug)
}

func TestGetBySlugPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewCakeService(&fakeRepo{err: boom})

	_, err := svc.GetBySlug(context.Background(), "berry-velvet")
	require.ErrorIs(t, err, boom)
}
