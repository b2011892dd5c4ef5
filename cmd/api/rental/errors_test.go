package rental_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/games-rental/cmd/api/rental"
	"github.com/matryer/is"
	gomock "go.uber.org/mock/gomock"
)

func TestErrResponse(t *testing.T) {

	t.Run("a detailed copy still matches its base error", func(t *testing.T) {
		is := is.New(t)

		err := fmt.Errorf("storing: %w", rental.ErrResponseGameEntryInvalid.WithDetail("name is required"))
		is.True(errors.Is(err, rental.ErrResponseGameEntryInvalid))
		is.True(!errors.Is(err, rental.ErrResponseCategoryEntryInvalid))
		is.Equal(rental.KindOf(err), rental.KindValidation)
	})

	t.Run("foreign errors are storage failures", func(t *testing.T) {
		is := is.New(t)

		is.Equal(rental.KindOf(errors.New("boom")), rental.KindStorage)
	})

	t.Run("capacity keeps its own code", func(t *testing.T) {
		is := is.New(t)

		is.Equal(rental.ErrResponseInsufficientStock.Code, 144)
		is.Equal(rental.KindOf(rental.ErrResponseInsufficientStock), rental.KindCapacity)
	})

	t.Run("a context error from storage is a timeout keeping its cause", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newService(t, rental.Options{})

		mockRepo.EXPECT().GetRentalByID(gomock.Any(), 1).Return(rental.Rental{}, fmt.Errorf("querying rental: %w", context.DeadlineExceeded))

		_, err := mS.GetRental(ctx, 1)
		is.Equal(rental.KindOf(err), rental.KindTimeout)
		is.True(errors.Is(err, rental.ErrResponseRequestTimeout))
		is.True(errors.Is(err, context.DeadlineExceeded))
		is.Equal(err.Error(), "error from context: timeout on call to GetRentalByID: querying rental: context deadline exceeded")
	})
}
