package notifications

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/games-rental/cmd/api/rental"
	"github.com/matryer/is"
)

type published struct {
	path string
	body string
}

/* Starts a fake ntfy server answering with status and recording every message it gets. */
func newNtfyServer(t *testing.T, status int) (*httptest.Server, chan published) {
	t.Helper()
	got := make(chan published, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got <- published{path: r.URL.Path, body: string(body)}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

var testRental = rental.Rental{
	ID:            1,
	DaysRented:    3,
	OriginalPrice: 30,
	DelayFee:      toPointer(50),
	Customer:      rental.CustomerSummary{ID: 1, Name: "Ana"},
	Game:          rental.GameSummary{ID: 1, Name: "Catan"},
}

func TestRentalCreated(t *testing.T) {

	t.Run("publishes to the rental created topic", func(t *testing.T) {
		is := is.New(t)
		srv, got := newNtfyServer(t, http.StatusOK)
		ntfy := NewNtfy(true, srv.URL+"/games", srv.Client())

		err := ntfy.RentalCreated(context.Background(), testRental)
		is.NoErr(err)

		msg := <-got
		is.Equal(msg.path, "/games_Rental_created")
		is.Equal(msg.body, "New rental created:\nGame: Catan\nCustomer: Ana\nDays rented: 3\nPrice: 30")
	})

	t.Run("a non 200 answer is reported", func(t *testing.T) {
		is := is.New(t)
		srv, _ := newNtfyServer(t, http.StatusTooManyRequests)
		ntfy := NewNtfy(true, srv.URL+"/games", srv.Client())

		err := ntfy.RentalCreated(context.Background(), testRental)
		var failed rental.ErrNotificationFailed
		is.True(errors.As(err, &failed))
	})

	t.Run("expected context timeout error", func(t *testing.T) {
		is := is.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		t.Cleanup(srv.Close)
		ntfy := NewNtfy(true, srv.URL+"/games", srv.Client())

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Millisecond)
		defer cancel()

		err := ntfy.RentalCreated(ctx, testRental)
		is.True(errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("disabled notifications send nothing", func(t *testing.T) {
		is := is.New(t)

		ntfy := NewNtfy(false, "http://127.0.0.1:1", nil)
		is.NoErr(ntfy.RentalCreated(context.Background(), testRental))
	})
}

func TestRentalReturned(t *testing.T) {
	is := is.New(t)
	srv, got := newNtfyServer(t, http.StatusOK)
	ntfy := NewNtfy(true, srv.URL+"/games", srv.Client())

	err := ntfy.RentalReturned(context.Background(), testRental)
	is.NoErr(err)

	msg := <-got
	is.Equal(msg.path, "/games_Rental_returned")
	is.Equal(msg.body, "Rental returned:\nGame: Catan\nCustomer: Ana\nDelay fee: 50")
}

func toPointer[T any](v T) *T {
	return &v
}
