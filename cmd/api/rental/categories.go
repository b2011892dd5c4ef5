package rental

import (
	"context"
	"errors"
)

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (Category, error) {
	if err := s.validator.ValidateCategory(req); err != nil {
		return Category{}, err
	}

	_, err := s.repo.GetCategoryByName(ctx, req.Name)
	switch {
	case err == nil:
		return Category{}, ErrResponseCategoryNameConflict
	case !errors.Is(err, ErrResponseCategoryNotFound):
		return Category{}, fromRepository("GetCategoryByName", err)
	}

	created, err := s.repo.CreateCategory(ctx, Category{Name: req.Name})
	if err != nil {
		return Category{}, fromRepository("CreateCategory", err)
	}
	return created, nil
}

func (s *Service) ListCategories(ctx context.Context, page Page) ([]Category, error) {
	categories, err := s.repo.ListCategories(ctx, normalizePage(page))
	if err != nil {
		return nil, fromRepository("ListCategories", err)
	}
	return categories, nil
}

/* Applies the default limit to an unset page. */
func normalizePage(p Page) Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	return p
}
