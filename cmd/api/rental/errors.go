package rental

import (
	"context"
	"errors"
	"fmt"
)

// Kind groups error codes by the outcome a caller must be able to tell apart.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindCapacity
	KindStorage
	KindTimeout
)

type ErrResponse struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
	Kind    Kind   `json:"-"`
}

func (e ErrResponse) Error() string {
	return e.Message
}

/* Matches any ErrResponse with the same code, so copies carrying extra details still match the base value. */
func (e ErrResponse) Is(target error) bool {
	t, ok := target.(ErrResponse)
	return ok && t.Code == e.Code
}

/* Returns a copy of the error with detail appended to the message. */
func (e ErrResponse) WithDetail(detail string) ErrResponse {
	e.Message = e.Message + detail
	return e
}

var ErrResponseEntryInvalidJSON = ErrResponse{100, "invalid json request.", KindValidation}
var ErrResponseIdInvalidFormat = ErrResponse{101, "the endpoint is not a valid format ID. Must be a positive integer.", KindValidation}
var ErrResponseQueryPageInvalid = ErrResponse{102, "query parameters 'offset' and 'limit' must be non negative integers.", KindValidation}
var ErrResponseQueryFilterInvalid = ErrResponse{103, "query parameters 'customerId' and 'gameId' must be positive integers.", KindValidation}
var ErrResponseFromRepository = ErrResponse{104, "error from repository: ", KindStorage}
var ErrResponseRequestTimeout = ErrResponse{105, "error from context:", KindTimeout}

var ErrResponseCategoryEntryInvalid = ErrResponse{110, "category entry is invalid: ", KindValidation}
var ErrResponseCategoryNameConflict = ErrResponse{111, "there is already a category with this name.", KindConflict}
var ErrResponseCategoryNotFound = ErrResponse{112, "category not found", KindNotFound}

var ErrResponseGameEntryInvalid = ErrResponse{120, "game entry is invalid: ", KindValidation}
var ErrResponseGameNameConflict = ErrResponse{121, "there is already a game with this name.", KindConflict}
var ErrResponseGameNotFound = ErrResponse{122, "game not found", KindNotFound}
var ErrResponseGameCategoryUnknown = ErrResponse{123, "the category of the game does not exist.", KindValidation}

var ErrResponseCustomerEntryInvalid = ErrResponse{130, "customer entry is invalid: ", KindValidation}
var ErrResponseCustomerCPFConflict = ErrResponse{131, "there is already a customer with this cpf.", KindConflict}
var ErrResponseCustomerNotFound = ErrResponse{132, "customer not found", KindNotFound}

var ErrResponseRentalEntryInvalid = ErrResponse{140, "rental entry is invalid: ", KindValidation}
var ErrResponseRentalNotFound = ErrResponse{141, "rental not found", KindNotFound}
var ErrResponseRentalCustomerUnknown = ErrResponse{142, "the customer of the rental does not exist.", KindValidation}
var ErrResponseRentalGameUnknown = ErrResponse{143, "the game of the rental does not exist.", KindValidation}
var ErrResponseInsufficientStock = ErrResponse{144, "there is no stock available for this game.", KindCapacity}
var ErrResponseRentalAlreadyReturned = ErrResponse{145, "rental was already returned.", KindConflict}
var ErrResponseRentalNotCancellable = ErrResponse{146, "rental not found or already returned", KindNotFound}

type ErrNotificationFailed struct {
	statusCode int
}

func (e ErrNotificationFailed) Error() string {
	return fmt.Sprintf("ntfy wrong response - want: 200 OK, got: %d", e.statusCode)
}

func NewErrNotificationFailed(statusCode int) ErrNotificationFailed {
	return ErrNotificationFailed{statusCode: statusCode}
}

/* Returns the Kind of err, KindStorage when err is not an ErrResponse. */
func KindOf(err error) Kind {
	var errR ErrResponse
	if errors.As(err, &errR) {
		return errR.Kind
	}
	return KindStorage
}

/* Folds an error coming from the repository into the error returned by the service.
Domain errors pass through, context errors become timeouts still wrapping their cause,
and anything else is opaque. */
func fromRepository(op string, err error) error {
	var errR ErrResponse
	if errors.As(err, &errR) {
		return errR
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrResponseRequestTimeout.WithDetail(" timeout on call to "+op), err)
	}
	return ErrResponseFromRepository.WithDetail(err.Error())
}
