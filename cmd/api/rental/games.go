package rental

import (
	"context"
	"errors"
)

func (s *Service) CreateGame(ctx context.Context, req CreateGameRequest) (Game, error) {
	if err := s.validator.ValidateGame(req); err != nil {
		return Game{}, err
	}

	category, err := s.repo.GetCategoryByID(ctx, *req.CategoryID)
	if err != nil {
		if errors.Is(err, ErrResponseCategoryNotFound) {
			return Game{}, ErrResponseGameCategoryUnknown
		}
		return Game{}, fromRepository("GetCategoryByID", err)
	}

	_, err = s.repo.GetGameByName(ctx, req.Name)
	switch {
	case err == nil:
		return Game{}, ErrResponseGameNameConflict
	case !errors.Is(err, ErrResponseGameNotFound):
		return Game{}, fromRepository("GetGameByName", err)
	}

	created, err := s.repo.CreateGame(ctx, Game{
		Name:         req.Name,
		Image:        req.Image,
		StockTotal:   *req.StockTotal,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		PricePerDay:  *req.PricePerDay,
	})
	if err != nil {
		return Game{}, fromRepository("CreateGame", err)
	}
	return created, nil
}

func (s *Service) GetGame(ctx context.Context, id int) (Game, error) {
	g, err := s.repo.GetGameByID(ctx, id)
	if err != nil {
		return Game{}, fromRepository("GetGameByID", err)
	}
	return g, nil
}

func (s *Service) ListGames(ctx context.Context, namePrefix string, page Page) ([]Game, error) {
	games, err := s.repo.ListGames(ctx, namePrefix, normalizePage(page))
	if err != nil {
		return nil, fromRepository("ListGames", err)
	}
	return games, nil
}
