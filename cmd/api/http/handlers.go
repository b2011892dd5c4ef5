package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/games-rental/cmd/api/rental"
)

type RentalHandler struct {
	rentalService  rental.ServiceAPI
	requestTimeout time.Duration
	log            *slog.Logger
}

func NewRentalHandler(rentalService rental.ServiceAPI, requestTimeout time.Duration, logger *slog.Logger) *RentalHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RentalHandler{
		rentalService:  rentalService,
		requestTimeout: requestTimeout,
		log:            logger,
	}
}

/* Writes err with the status its kind maps to. Storage failures are logged and hidden from the caller. */
func (h *RentalHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := h.logger(r)

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		logger.Warn("request did not finish in time", "err", err)
		cause := context.DeadlineExceeded
		if errors.Is(err, context.Canceled) {
			cause = context.Canceled
		}
		responseJSON(w, r, http.StatusGatewayTimeout, rental.ErrResponseRequestTimeout.WithDetail(" "+cause.Error()))
		return
	}

	var errR rental.ErrResponse
	if !errors.As(err, &errR) || errR.Kind == rental.KindStorage {
		logger.Error("request failed", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	logger.Debug("request refused", "err", err)
	responseJSON(w, r, statusFor(errR.Kind), errR)
}

func statusFor(kind rental.Kind) int {
	switch kind {
	case rental.KindValidation, rental.KindCapacity:
		return http.StatusBadRequest
	case rental.KindNotFound:
		return http.StatusNotFound
	case rental.KindConflict:
		return http.StatusConflict
	case rental.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

const maxBodyBytes = 1 << 20

/* Reads the JSON body into entry, answering 400 itself when it cannot, or 413 when the body is over maxBodyBytes. */
func decodeEntry(w http.ResponseWriter, r *http.Request, entry any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(entry); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		responseJSON(w, r, status, rental.ErrResponseEntryInvalidJSON.WithDetail(err.Error()))
		return false
	}
	return true
}

/* Parses a positive integer id, answering 400 itself when it cannot. */
func parseId(w http.ResponseWriter, r *http.Request, idStr string) (int, bool) {
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		responseJSON(w, r, http.StatusBadRequest, rental.ErrResponseIdInvalidFormat)
		return 0, false
	}
	return id, true
}

/* Isolates the ID from the URL. */
func isolateId(w http.ResponseWriter, r *http.Request, prefix string) (int, bool) {
	justId, _ := strings.CutPrefix(r.URL.Path, prefix)
	return parseId(w, r, justId)
}

/* Validates and prepares the offset and limit parameters of the query. Missing values stay zero. */
func extractPageParams(query url.Values) (page rental.Page, valid bool) {
	var err error
	if s := query.Get("offset"); s != "" {
		page.Offset, err = strconv.Atoi(s)
		if err != nil || page.Offset < 0 {
			return rental.Page{}, false
		}
	}
	if s := query.Get("limit"); s != "" {
		page.Limit, err = strconv.Atoi(s)
		if err != nil || page.Limit < 0 {
			return rental.Page{}, false
		}
	}
	return page, true
}

/* Reads an optional positive integer filter. Missing values are zero. */
func extractIdFilter(query url.Values, key string) (int, bool) {
	s := query.Get(key)
	if s == "" {
		return 0, true
	}
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

/*Writes a JSON response into a http.ResponseWriter. */
func responseJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		requestLogger(r, slog.Default()).Error("encoding response", "err", err)
	}
}

func formatDate(t time.Time) string {
	return t.Format(rental.DateLayout)
}
