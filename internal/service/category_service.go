package service

import (
	"context"
	"time"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/alimikegami/seller-dashboard/internal/repository"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/rs/zerolog/log"
)

const categoriesCacheKey = "categories:all"

type CategoryServiceImpl struct {
	repo  repository.CategoryRepository
	cache Cache
	ttl   time.Duration
}

// CreateCategoryService accepts a nil cache, in which case every call reads
// from the database.
func CreateCategoryService(repo repository.CategoryRepository, cache Cache, ttl time.Duration) CategoryService {
	return &CategoryServiceImpl{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (res []domain.Category, err error) {
	if s.cache != nil {
		if err = s.cache.Get(ctx, categoriesCacheKey, &res); err == nil {
			return res, nil
		}
		log.Ctx(ctx).Debug().Err(err).Str("component", "GetCategories").Msg("category cache unavailable")
	}

	res, err = s.load(ctx)
	if err != nil {
		return nil, err
	}

	s.store(ctx, res)

	return res, nil
}

func (s *CategoryServiceImpl) RefreshCategoryCache(ctx context.Context) (err error) {
	if s.cache == nil {
		return nil
	}

	res, err := s.load(ctx)
	if err != nil {
		return err
	}

	return s.cache.Set(ctx, categoriesCacheKey, res, s.ttl)
}

func (s *CategoryServiceImpl) load(ctx context.Context) ([]domain.Category, error) {
	res, err := s.repo.GetCategories(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return nil, errs.ErrFetchCategories
	}

	if res == nil {
		res = []domain.Category{}
	}

	return res, nil
}

func (s *CategoryServiceImpl) store(ctx context.Context, res []domain.Category) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, categoriesCacheKey, res, s.ttl); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "GetCategories").Msg("category cache not updated")
	}
}
