package rental_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/games-rental/cmd/api/rental"
	"github.com/matryer/is"
)

var fixedNow = time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestValidateCategory(t *testing.T) {
	v := rental.NewValidator(true, clock)

	t.Run("an empty name is refused", func(t *testing.T) {
		is := is.New(t)

		err := v.ValidateCategory(rental.CreateCategoryRequest{Name: ""})
		is.True(errors.Is(err, rental.ErrResponseCategoryEntryInvalid))
		is.Equal(err.Error(), "category entry is invalid: name is required")
	})

	t.Run("a name is enough", func(t *testing.T) {
		is := is.New(t)

		is.NoErr(v.ValidateCategory(rental.CreateCategoryRequest{Name: "Strategy"}))
	})
}

func TestValidateGame(t *testing.T) {
	valid := func() rental.CreateGameRequest {
		return rental.CreateGameRequest{
			Name:        "Catan",
			Image:       "https://img.example/catan.PNG",
			StockTotal:  toPointer(2),
			CategoryID:  toPointer(1),
			PricePerDay: toPointer(150),
		}
	}

	t.Run("a complete game passes", func(t *testing.T) {
		is := is.New(t)

		is.NoErr(rental.NewValidator(true, clock).ValidateGame(valid()))
	})

	t.Run("stock and price must be positive", func(t *testing.T) {
		is := is.New(t)

		req := valid()
		req.StockTotal = toPointer(0)
		req.PricePerDay = toPointer(-1)
		err := rental.NewValidator(true, clock).ValidateGame(req)
		is.Equal(err.Error(), "game entry is invalid: stockTotal must be at least 1; pricePerDay must be at least 1")
	})

	t.Run("stock and price must fit the storage columns", func(t *testing.T) {
		is := is.New(t)

		req := valid()
		req.StockTotal = toPointer(rental.MaxAmount + 1)
		req.PricePerDay = toPointer(math.MaxInt64)
		err := rental.NewValidator(true, clock).ValidateGame(req)
		is.Equal(err.Error(), "game entry is invalid: stockTotal must be at most 2147483647; pricePerDay must be at most 2147483647")

		req = valid()
		req.StockTotal = toPointer(rental.MaxAmount)
		req.PricePerDay = toPointer(rental.MaxAmount)
		is.NoErr(rental.NewValidator(true, clock).ValidateGame(req))
	})

	t.Run("missing numbers are required", func(t *testing.T) {
		is := is.New(t)

		req := valid()
		req.CategoryID = nil
		err := rental.NewValidator(true, clock).ValidateGame(req)
		is.Equal(err.Error(), "game entry is invalid: categoryId is required")
	})

	t.Run("the image must be an http url of a png or jpg", func(t *testing.T) {
		is := is.New(t)

		req := valid()
		req.Image = "ftp://img.example/catan.gif"
		err := rental.NewValidator(true, clock).ValidateGame(req)
		is.Equal(err.Error(), "game entry is invalid: image must be an http(s) url ending in .png or .jpg")
	})

	t.Run("the image may be omitted only when not required", func(t *testing.T) {
		is := is.New(t)

		req := valid()
		req.Image = ""
		err := rental.NewValidator(true, clock).ValidateGame(req)
		is.Equal(err.Error(), "game entry is invalid: image is required")

		is.NoErr(rental.NewValidator(false, clock).ValidateGame(req))
	})
}

func TestValidateCustomer(t *testing.T) {
	v := rental.NewValidator(true, clock)
	valid := rental.CustomerRequest{Name: "Ana", Phone: "21999999999", CPF: "12345678901", Birthday: "1990-05-17"}

	t.Run("a complete customer passes", func(t *testing.T) {
		is := is.New(t)

		is.NoErr(v.ValidateCustomer(valid))

		tenDigits := valid
		tenDigits.Phone = "2133334444"
		is.NoErr(v.ValidateCustomer(tenDigits))
	})

	t.Run("every field is required", func(t *testing.T) {
		is := is.New(t)

		err := v.ValidateCustomer(rental.CustomerRequest{})
		is.Equal(err.Error(), "customer entry is invalid: name is required; phone is required; cpf is required; birthday is required")
	})

	t.Run("phone has 10 or 11 digits", func(t *testing.T) {
		is := is.New(t)

		short := valid
		short.Phone = "213333444"
		is.Equal(v.ValidateCustomer(short).Error(), "customer entry is invalid: phone must have at least 10 characters")

		long := valid
		long.Phone = "219999999999"
		is.Equal(v.ValidateCustomer(long).Error(), "customer entry is invalid: phone must have at most 11 characters")

		letters := valid
		letters.Phone = "21999999abc"
		is.Equal(v.ValidateCustomer(letters).Error(), "customer entry is invalid: phone must contain only digits")
	})

	t.Run("cpf has exactly 11 digits", func(t *testing.T) {
		is := is.New(t)

		req := valid
		req.CPF = "1234567890"
		is.Equal(v.ValidateCustomer(req).Error(), "customer entry is invalid: cpf must have exactly 11 characters")
	})

	t.Run("birthday is a past or present date", func(t *testing.T) {
		is := is.New(t)

		today := valid
		today.Birthday = "2024-03-01"
		is.NoErr(v.ValidateCustomer(today))

		tomorrow := valid
		tomorrow.Birthday = "2024-03-02"
		is.Equal(v.ValidateCustomer(tomorrow).Error(), "customer entry is invalid: birthday must not be in the future")

		garbage := valid
		garbage.Birthday = "17/05/1990"
		is.Equal(v.ValidateCustomer(garbage).Error(), "customer entry is invalid: birthday must be a date formatted as YYYY-MM-DD")
	})
}

func TestValidateRental(t *testing.T) {
	v := rental.NewValidator(true, clock)

	t.Run("days rented must be positive", func(t *testing.T) {
		is := is.New(t)

		err := v.ValidateRental(rental.CreateRentalRequest{CustomerID: toPointer(1), GameID: toPointer(1), DaysRented: toPointer(0)})
		is.Equal(err.Error(), "rental entry is invalid: daysRented must be at least 1")
	})

	t.Run("days rented must fit the storage columns", func(t *testing.T) {
		is := is.New(t)

		err := v.ValidateRental(rental.CreateRentalRequest{CustomerID: toPointer(1), GameID: toPointer(1), DaysRented: toPointer(math.MaxInt64 / 5)})
		is.Equal(err.Error(), "rental entry is invalid: daysRented must be at most 2147483647")
		is.Equal(rental.KindOf(err), rental.KindValidation)
	})

	t.Run("references are required", func(t *testing.T) {
		is := is.New(t)

		err := v.ValidateRental(rental.CreateRentalRequest{DaysRented: toPointer(3)})
		is.Equal(err.Error(), "rental entry is invalid: customerId is required; gameId is required")
		is.Equal(rental.KindOf(err), rental.KindValidation)
	})
}
