package rental

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var imageURLPattern = regexp.MustCompile(`(?i)^https?://.*\.(?:png|jpg)$`)

// Validator checks inbound requests before they reach the repository. It never touches storage.
type Validator struct {
	validate      *validator.Validate
	imageRequired bool
}

func NewValidator(imageRequired bool, now func() time.Time) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
		return imageURLPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(DateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		return !d.After(Day(now()))
	})

	return &Validator{validate: v, imageRequired: imageRequired}
}

type CreateCategoryRequest struct {
	Name string `label:"name" validate:"required"`
}

type CreateGameRequest struct {
	Name        string `label:"name" validate:"required"`
	Image       string `label:"image" validate:"omitempty,imageurl"`
	StockTotal  *int   `label:"stockTotal" validate:"required,min=1,max=2147483647"`
	CategoryID  *int   `label:"categoryId" validate:"required"`
	PricePerDay *int   `label:"pricePerDay" validate:"required,min=1,max=2147483647"`
}

type CustomerRequest struct {
	Name     string `label:"name" validate:"required"`
	Phone    string `label:"phone" validate:"required,number,min=10,max=11"`
	CPF      string `label:"cpf" validate:"required,number,len=11"`
	Birthday string `label:"birthday" validate:"required,datetime=2006-01-02,notfuture"`
}

type UpdateCustomerRequest struct {
	ID int
	CustomerRequest
}

type CreateRentalRequest struct {
	CustomerID *int `label:"customerId" validate:"required"`
	GameID     *int `label:"gameId" validate:"required"`
	DaysRented *int `label:"daysRented" validate:"required,min=1,max=2147483647"`
}

func (v *Validator) ValidateCategory(req CreateCategoryRequest) error {
	return v.check(req, ErrResponseCategoryEntryInvalid)
}

func (v *Validator) ValidateGame(req CreateGameRequest) error {
	if err := v.check(req, ErrResponseGameEntryInvalid); err != nil {
		return err
	}
	if v.imageRequired && req.Image == "" {
		return ErrResponseGameEntryInvalid.WithDetail("image is required")
	}
	return nil
}

func (v *Validator) ValidateCustomer(req CustomerRequest) error {
	return v.check(req, ErrResponseCustomerEntryInvalid)
}

func (v *Validator) ValidateRental(req CreateRentalRequest) error {
	return v.check(req, ErrResponseRentalEntryInvalid)
}

func (v *Validator) check(req any, base ErrResponse) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return base.WithDetail(err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return base.WithDetail(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must have at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s characters", fe.Field(), fe.Param())
	case "number":
		return fmt.Sprintf("%s must contain only digits", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as YYYY-MM-DD", fe.Field())
	case "notfuture":
		return fmt.Sprintf("%s must not be in the future", fe.Field())
	case "imageurl":
		return fmt.Sprintf("%s must be an http(s) url ending in .png or .jpg", fe.Field())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
