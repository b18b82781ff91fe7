package services

import (
	"context"
	"errors"
	"time"

	"github.com/sikarir/sikarir-backend/internal/cache"
	"github.com/sikarir/sikarir-backend/internal/models"
	mongorepo "github.com/sikarir/sikarir-backend/internal/repositories/mongo"
	"github.com/sikarir/sikarir-backend/internal/utils"
)

const catalogCacheTTL = 10 * time.Minute

// CatalogService serves the careers/majors reference data. List always
// returns the complete collection; pagination is a handler concern.
type CatalogService interface {
	ListCareers(ctx context.Context) ([]models.Career, error)
	ListMajors(ctx context.Context) ([]models.Major, error)
	SearchCareers(ctx context.Context, q string) ([]models.Career, error)
	SearchMajors(ctx context.Context, q string) ([]models.Major, error)
	GetCareer(ctx context.Context, id string) (*models.Career, error)
	GetMajor(ctx context.Context, id string) (*models.Major, error)
}

type catalogService struct {
	careers mongorepo.CareerRepository
	majors  mongorepo.MajorRepository
	cache   cache.Cache
}

func NewCatalogService(careers mongorepo.CareerRepository, majors mongorepo.MajorRepository, c cache.Cache) CatalogService {
	return &catalogService{careers: careers, majors: majors, cache: c}
}

func (s *catalogService) ListCareers(ctx context.Context) ([]models.Career, error) {
	const op = "CatalogService.ListCareers"

	var cached []models.Career
	if s.cache != nil {
		if hit, err := s.cache.GetJSON(ctx, cache.KeyCareers, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := s.careers.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list careers", err)
	}
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cache.KeyCareers, out, catalogCacheTTL)
	}
	return out, nil
}

func (s *catalogService) ListMajors(ctx context.Context) ([]models.Major, error) {
	const op = "CatalogService.ListMajors"

	var cached []models.Major
	if s.cache != nil {
		if hit, err := s.cache.GetJSON(ctx, cache.KeyMajors, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := s.majors.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list majors", err)
	}
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cache.KeyMajors, out, catalogCacheTTL)
	}
	return out, nil
}

func (s *catalogService) SearchCareers(ctx context.Context, q string) ([]models.Career, error) {
	const op = "CatalogService.SearchCareers"

	if q == "" {
		return s.ListCareers(ctx)
	}
	out, err := s.careers.SearchByName(ctx, q)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to search careers", err)
	}
	return out, nil
}

func (s *catalogService) SearchMajors(ctx context.Context, q string) ([]models.Major, error) {
	const op = "CatalogService.SearchMajors"

	if q == "" {
		return s.ListMajors(ctx)
	}
	out, err := s.majors.SearchByName(ctx, q)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to search majors", err)
	}
	return out, nil
}

func (s *catalogService) GetCareer(ctx context.Context, id string) (*models.Career, error) {
	const op = "CatalogService.GetCareer"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	c, err := s.careers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "career not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get career", err)
	}
	return c, nil
}

func (s *catalogService) GetMajor(ctx context.Context, id string) (*models.Major, error) {
	const op = "CatalogService.GetMajor"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	m, err := s.majors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "major not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get major", err)
	}
	return m, nil
}
