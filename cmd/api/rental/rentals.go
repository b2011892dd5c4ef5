package rental

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

// MaxAmount is the largest count or price the storage columns hold.
const MaxAmount = math.MaxInt32

/* Opens a rental for a customer. The stock check and the insert share one transaction
holding the game row, so concurrent creations cannot both take the last unit. */
func (s *Service) CreateRental(ctx context.Context, req CreateRentalRequest) (Rental, error) {
	if err := s.validator.ValidateRental(req); err != nil {
		return Rental{}, err
	}

	txRepo, tx, err := s.repo.BeginTx(ctx, nil)
	if err != nil {
		return Rental{}, fromRepository("BeginTx", err)
	}
	defer tx.Rollback()

	customer, err := txRepo.GetCustomerByID(ctx, *req.CustomerID)
	if err != nil {
		if errors.Is(err, ErrResponseCustomerNotFound) {
			return Rental{}, ErrResponseRentalCustomerUnknown
		}
		return Rental{}, fromRepository("GetCustomerByID", err)
	}

	game, err := txRepo.LockGame(ctx, *req.GameID)
	if err != nil {
		if errors.Is(err, ErrResponseGameNotFound) {
			return Rental{}, ErrResponseRentalGameUnknown
		}
		return Rental{}, fromRepository("LockGame", err)
	}

	rented, err := txRepo.CountRentalsByGame(ctx, game.ID, s.stockScope == StockScopeOpen)
	if err != nil {
		return Rental{}, fromRepository("CountRentalsByGame", err)
	}
	if rented >= game.StockTotal {
		return Rental{}, ErrResponseInsufficientStock
	}
	if game.PricePerDay > 0 && *req.DaysRented > MaxAmount/game.PricePerDay {
		return Rental{}, ErrResponseRentalEntryInvalid.WithDetail(fmt.Sprintf("originalPrice must be at most %d", MaxAmount))
	}

	created, err := txRepo.CreateRental(ctx, Rental{
		CustomerID:    customer.ID,
		GameID:        game.ID,
		RentDate:      Day(s.now()),
		DaysRented:    *req.DaysRented,
		OriginalPrice: *req.DaysRented * game.PricePerDay,
	})
	if err != nil {
		return Rental{}, fromRepository("CreateRental", err)
	}

	if err := tx.Commit(); err != nil {
		return Rental{}, fromRepository("Commit", err)
	}

	created.Customer = CustomerSummary{ID: customer.ID, Name: customer.Name}
	created.Game = GameSummary{ID: game.ID, Name: game.Name, CategoryID: game.CategoryID, CategoryName: game.CategoryName}

	s.notify("rental_created", func(ctx context.Context) error {
		return s.ntfy.RentalCreated(ctx, created)
	})
	return created, nil
}

/* Closes an active rental, charging the delay fee. A returned rental is terminal. */
func (s *Service) ReturnRental(ctx context.Context, id int) (Rental, error) {
	current, err := s.repo.GetRentalByID(ctx, id)
	if err != nil {
		return Rental{}, fromRepository("GetRentalByID", err)
	}
	if current.Returned() {
		return Rental{}, ErrResponseRentalAlreadyReturned
	}

	game, err := s.repo.GetGameByID(ctx, current.GameID)
	if err != nil {
		return Rental{}, fromRepository("GetGameByID", err)
	}

	now := s.now()
	returned, err := s.repo.ReturnRental(ctx, id, Day(now), DelayFee(current.RentDate, now, game.PricePerDay))
	if err != nil {
		return Rental{}, fromRepository("ReturnRental", err)
	}
	returned.Customer = current.Customer
	returned.Game = current.Game

	s.notify("rental_returned", func(ctx context.Context) error {
		return s.ntfy.RentalReturned(ctx, returned)
	})
	return returned, nil
}

/* Deletes an active rental. Missing and returned rentals both fail as not found. */
func (s *Service) CancelRental(ctx context.Context, id int) error {
	current, err := s.repo.GetRentalByID(ctx, id)
	if err != nil {
		return fromRepository("GetRentalByID", err)
	}
	if current.Returned() {
		return ErrResponseRentalNotCancellable
	}

	if err := s.repo.DeleteRental(ctx, id); err != nil {
		return fromRepository("DeleteRental", err)
	}
	return nil
}

func (s *Service) GetRental(ctx context.Context, id int) (Rental, error) {
	r, err := s.repo.GetRentalByID(ctx, id)
	if err != nil {
		return Rental{}, fromRepository("GetRentalByID", err)
	}
	return r, nil
}

func (s *Service) ListRentals(ctx context.Context, filter RentalsFilter) ([]Rental, error) {
	filter.Page = normalizePage(filter.Page)
	rentals, err := s.repo.ListRentals(ctx, filter)
	if err != nil {
		return nil, fromRepository("ListRentals", err)
	}
	return rentals, nil
}

/* Charges pricePerDay for every whole day elapsed since rentDate, counting from the
start of the rental rather than from the end of the agreed term. Returns nil when no
whole day has elapsed. The fee saturates at MaxAmount. */
func DelayFee(rentDate, now time.Time, pricePerDay int) *int {
	elapsedDays := int64(now.Sub(rentDate) / day)
	if elapsedDays <= 0 {
		return nil
	}
	fee := MaxAmount
	if pricePerDay > 0 && elapsedDays <= int64(MaxAmount/pricePerDay) {
		fee = int(elapsedDays) * pricePerDay
	}
	return &fee
}
