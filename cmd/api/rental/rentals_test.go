package rental_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/games-rental/cmd/api/rental"
	"github.com/games-rental/cmd/api/rental/mocks"
	"github.com/matryer/is"
	gomock "go.uber.org/mock/gomock"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit() error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback() error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

var (
	ana   = rental.Customer{ID: 1, Name: "Ana", CPF: "12345678901"}
	catan = rental.Game{ID: 1, Name: "Catan", StockTotal: 1, CategoryID: 1, CategoryName: "Strategy", PricePerDay: 10}
)

func rentalRequest(days int) rental.CreateRentalRequest {
	return rental.CreateRentalRequest{CustomerID: toPointer(ana.ID), GameID: toPointer(catan.ID), DaysRented: toPointer(days)}
}

/* Wires a transactional repository behind mockRepo.BeginTx. */
func expectTx(t *testing.T, mockRepo *mocks.MockRepository) (*mocks.MockRepository, *fakeTx) {
	txRepo := mocks.NewMockRepository(gomock.NewController(t))
	tx := &fakeTx{}
	mockRepo.EXPECT().BeginTx(gomock.Any(), gomock.Any()).Return(txRepo, tx, nil)
	return txRepo, tx
}

func TestCreateRental(t *testing.T) {

	t.Run("creates a rental priced by days and game price", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{})
		txRepo, tx := expectTx(t, mockRepo)

		txRepo.EXPECT().GetCustomerByID(gomock.Any(), 1).Return(ana, nil)
		txRepo.EXPECT().LockGame(gomock.Any(), 1).Return(catan, nil)
		txRepo.EXPECT().CountRentalsByGame(gomock.Any(), 1, true).Return(0, nil)
		txRepo.EXPECT().CreateRental(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, r rental.Rental) (rental.Rental, error) {
			is.Equal(r.OriginalPrice, 30)
			is.Equal(r.DaysRented, 3)
			is.True(r.RentDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
			is.True(r.ReturnDate == nil)
			is.True(r.DelayFee == nil)
			r.ID = 1
			return r, nil
		})

		created, err := mS.CreateRental(ctx, rentalRequest(3))
		is.NoErr(err)
		is.Equal(created.ID, 1)
		is.Equal(created.OriginalPrice, 30)
		is.Equal(created.Customer, rental.CustomerSummary{ID: 1, Name: "Ana"})
		is.Equal(created.Game, rental.GameSummary{ID: 1, Name: "Catan", CategoryID: 1, CategoryName: "Strategy"})
		is.True(tx.committed)
	})

	t.Run("no stock left is a capacity error", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{})
		txRepo, tx := expectTx(t, mockRepo)

		txRepo.EXPECT().GetCustomerByID(gomock.Any(), 1).Return(ana, nil)
		txRepo.EXPECT().LockGame(gomock.Any(), 1).Return(catan, nil)
		txRepo.EXPECT().CountRentalsByGame(gomock.Any(), 1, true).Return(1, nil)

		_, err := mS.CreateRental(ctx, rentalRequest(1))
		is.True(errors.Is(err, rental.ErrResponseInsufficientStock))
		is.Equal(rental.KindOf(err), rental.KindCapacity)
		is.True(tx.rolledBack)
	})

	t.Run("counting every rental ever made when the scope is all", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{StockScope: rental.StockScopeAll})
		txRepo, _ := expectTx(t, mockRepo)

		txRepo.EXPECT().GetCustomerByID(gomock.Any(), 1).Return(ana, nil)
		txRepo.EXPECT().LockGame(gomock.Any(), 1).Return(catan, nil)
		txRepo.EXPECT().CountRentalsByGame(gomock.Any(), 1, false).Return(1, nil)

		_, err := mS.CreateRental(ctx, rentalRequest(1))
		is.True(errors.Is(err, rental.ErrResponseInsufficientStock))
	})

	t.Run("an unknown customer is a validation error", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{})
		txRepo, _ := expectTx(t, mockRepo)

		txRepo.EXPECT().GetCustomerByID(gomock.Any(), 1).Return(rental.Customer{}, rental.ErrResponseCustomerNotFound)

		_, err := mS.CreateRental(ctx, rentalRequest(1))
		is.True(errors.Is(err, rental.ErrResponseRentalCustomerUnknown))
		is.Equal(rental.KindOf(err), rental.KindValidation)
	})

	t.Run("an unknown game is a validation error", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{})
		txRepo, _ := expectTx(t, mockRepo)

		txRepo.EXPECT().GetCustomerByID(gomock.Any(), 1).Return(ana, nil)
		txRepo.EXPECT().LockGame(gomock.Any(), 1).Return(rental.Game{}, rental.ErrResponseGameNotFound)

		_, err := mS.CreateRental(ctx, rentalRequest(1))
		is.True(errors.Is(err, rental.ErrResponseRentalGameUnknown))
	})

	t.Run("a price above the storage range is a validation error", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{})
		txRepo, tx := expectTx(t, mockRepo)

		txRepo.EXPECT().GetCustomerByID(gomock.Any(), 1).Return(ana, nil)
		txRepo.EXPECT().LockGame(gomock.Any(), 1).Return(catan, nil)
		txRepo.EXPECT().CountRentalsByGame(gomock.Any(), 1, true).Return(0, nil)

		_, err := mS.CreateRental(ctx, rentalRequest(rental.MaxAmount/catan.PricePerDay+1))
		is.True(errors.Is(err, rental.ErrResponseRentalEntryInvalid))
		is.Equal(err.Error(), "rental entry is invalid: originalPrice must be at most 2147483647")
		is.True(tx.rolledBack)
	})

	t.Run("the largest price that fits is accepted", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{})
		txRepo, _ := expectTx(t, mockRepo)

		days := rental.MaxAmount / catan.PricePerDay
		txRepo.EXPECT().GetCustomerByID(gomock.Any(), 1).Return(ana, nil)
		txRepo.EXPECT().LockGame(gomock.Any(), 1).Return(catan, nil)
		txRepo.EXPECT().CountRentalsByGame(gomock.Any(), 1, true).Return(0, nil)
		txRepo.EXPECT().CreateRental(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, r rental.Rental) (rental.Rental, error) {
			return r, nil
		})

		created, err := mS.CreateRental(ctx, rentalRequest(days))
		is.NoErr(err)
		is.Equal(created.OriginalPrice, days*catan.PricePerDay)
	})

	t.Run("days beyond the storage range never open a transaction", func(t *testing.T) {
		is := is.New(t)
		mS, _ := newService(t, rental.Options{})

		_, err := mS.CreateRental(ctx, rentalRequest(math.MaxInt64/5))
		is.True(errors.Is(err, rental.ErrResponseRentalEntryInvalid))
		is.Equal(rental.KindOf(err), rental.KindValidation)
	})

	t.Run("invalid days never open a transaction", func(t *testing.T) {
		is := is.New(t)
		mS, _ := newService(t, rental.Options{})

		_, err := mS.CreateRental(ctx, rentalRequest(0))
		is.True(errors.Is(err, rental.ErrResponseRentalEntryInvalid))
	})

	t.Run("notifies the creation", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockRepository(ctrl)
		mockNtfy := mocks.NewMockNotifier(ctrl)
		mS := rental.NewService(mockRepo, mockNtfy, rental.Options{Now: clock, Logger: quietLogger})
		txRepo, _ := expectTx(t, mockRepo)

		txRepo.EXPECT().GetCustomerByID(gomock.Any(), 1).Return(ana, nil)
		txRepo.EXPECT().LockGame(gomock.Any(), 1).Return(catan, nil)
		txRepo.EXPECT().CountRentalsByGame(gomock.Any(), 1, true).Return(0, nil)
		txRepo.EXPECT().CreateRental(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, r rental.Rental) (rental.Rental, error) {
			r.ID = 7
			return r, nil
		})

		sent := make(chan rental.Rental, 1)
		mockNtfy.EXPECT().RentalCreated(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, r rental.Rental) error {
			sent <- r
			return errors.New("ntfy is down")
		})

		created, err := mS.CreateRental(ctx, rentalRequest(2))
		is.NoErr(err)

		select {
		case r := <-sent:
			is.Equal(r.ID, created.ID)
			is.Equal(r.Game.Name, "Catan")
		case <-time.After(time.Second):
			t.Fatal("notification not sent")
		}
	})
}

func TestReturnRental(t *testing.T) {
	open := rental.Rental{
		ID:            1,
		CustomerID:    1,
		GameID:        1,
		RentDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DaysRented:    3,
		OriginalPrice: 30,
		Customer:      rental.CustomerSummary{ID: 1, Name: "Ana"},
		Game:          rental.GameSummary{ID: 1, Name: "Catan", CategoryID: 1, CategoryName: "Strategy"},
	}

	t.Run("charges every elapsed day on return", func(t *testing.T) {
		is := is.New(t)
		fiveDaysLater := time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC)
		mS, mockRepo := newService(t, rental.Options{Now: func() time.Time { return fiveDaysLater }})

		returnDate := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
		mockRepo.EXPECT().GetRentalByID(gomock.Any(), 1).Return(open, nil)
		mockRepo.EXPECT().GetGameByID(gomock.Any(), 1).Return(catan, nil)
		mockRepo.EXPECT().ReturnRental(gomock.Any(), 1, returnDate, toPointer(50)).DoAndReturn(
			func(ctx context.Context, id int, returnDate time.Time, fee *int) (rental.Rental, error) {
				r := open
				r.ReturnDate = &returnDate
				r.DelayFee = fee
				return r, nil
			})

		returned, err := mS.ReturnRental(ctx, 1)
		is.NoErr(err)
		is.Equal(*returned.DelayFee, 50)
		is.True(returned.Returned())
		is.Equal(returned.Customer.Name, "Ana")
	})

	t.Run("a same day return has no fee", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{})

		mockRepo.EXPECT().GetRentalByID(gomock.Any(), 1).Return(open, nil)
		mockRepo.EXPECT().GetGameByID(gomock.Any(), 1).Return(catan, nil)
		mockRepo.EXPECT().ReturnRental(gomock.Any(), 1, gomock.Any(), gomock.Nil()).Return(open, nil)

		_, err := mS.ReturnRental(ctx, 1)
		is.NoErr(err)
	})

	t.Run("returning twice is a conflict", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{})

		returned := open
		returned.ReturnDate = toPointer(open.RentDate)
		mockRepo.EXPECT().GetRentalByID(gomock.Any(), 1).Return(returned, nil)

		_, err := mS.ReturnRental(ctx, 1)
		is.True(errors.Is(err, rental.ErrResponseRentalAlreadyReturned))
		is.Equal(rental.KindOf(err), rental.KindConflict)
	})

	t.Run("a missing rental is not found", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{})

		mockRepo.EXPECT().GetRentalByID(gomock.Any(), 9).Return(rental.Rental{}, rental.ErrResponseRentalNotFound)

		_, err := mS.ReturnRental(ctx, 9)
		is.Equal(rental.KindOf(err), rental.KindNotFound)
	})
}

func TestCancelRental(t *testing.T) {

	t.Run("deletes an open rental", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{})

		mockRepo.EXPECT().GetRentalByID(gomock.Any(), 1).Return(rental.Rental{ID: 1}, nil)
		mockRepo.EXPECT().DeleteRental(gomock.Any(), 1).Return(nil)

		is.NoErr(mS.CancelRental(ctx, 1))
	})

	t.Run("a returned rental cannot be cancelled", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{})

		mockRepo.EXPECT().GetRentalByID(gomock.Any(), 1).Return(rental.Rental{ID: 1, ReturnDate: toPointer(fixedNow)}, nil)

		err := mS.CancelRental(ctx, 1)
		is.True(errors.Is(err, rental.ErrResponseRentalNotCancellable))
		is.Equal(rental.KindOf(err), rental.KindNotFound)
	})

	t.Run("a missing rental is not found", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{})

		mockRepo.EXPECT().GetRentalByID(gomock.Any(), 2).Return(rental.Rental{}, rental.ErrResponseRentalNotFound)

		err := mS.CancelRental(ctx, 2)
		is.Equal(rental.KindOf(err), rental.KindNotFound)
	})
}

func TestListRentals(t *testing.T) {
	is := is.New(t)
	mS, mockRepo := newService(t, rental.Options{})

	want := rental.RentalsFilter{CustomerID: 1, Page: rental.Page{Limit: rental.DefaultLimit}}
	mockRepo.EXPECT().ListRentals(gomock.Any(), want).Return([]rental.Rental{{ID: 1}}, nil)

	rentals, err := mS.ListRentals(ctx, rental.RentalsFilter{CustomerID: 1})
	is.NoErr(err)
	is.Equal(len(rentals), 1)
}

func TestDelayFee(t *testing.T) {
	is := is.New(t)
	rentDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	is.True(rental.DelayFee(rentDate, rentDate.Add(23*time.Hour), 10) == nil)
	is.Equal(*rental.DelayFee(rentDate, rentDate.AddDate(0, 0, 1), 10), 10)
	is.Equal(*rental.DelayFee(rentDate, rentDate.AddDate(0, 0, 5).Add(15*time.Hour), 10), 50)

	// Saturates instead of wrapping.
	is.Equal(*rental.DelayFee(rentDate, rentDate.AddDate(0, 0, 2), rental.MaxAmount), rental.MaxAmount)
	is.Equal(*rental.DelayFee(rentDate, rentDate.AddDate(200, 0, 0), 100000), rental.MaxAmount)
	is.Equal(*rental.DelayFee(rentDate, rentDate.AddDate(0, 0, 1), rental.MaxAmount), rental.MaxAmount)
}
