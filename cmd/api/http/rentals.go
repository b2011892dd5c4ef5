package http

import (
	"net/http"
	"strings"

	"github.com/games-rental/cmd/api/rental"
)

/* Addresses a call to "/rentals" according to the requested action.  */
func (h *RentalHandler) rentals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listRentals(w, r)
	case http.MethodPost:
		h.createRental(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

/* Addresses "/rentals/{id}" and "/rentals/{id}/return". */
func (h *RentalHandler) rentalById(w http.ResponseWriter, r *http.Request) {
	rest, _ := strings.CutPrefix(r.URL.Path, "/rentals/")
	idStr, action, _ := strings.Cut(rest, "/")

	switch {
	case action == "" && r.Method == http.MethodGet:
		if id, ok := parseId(w, r, idStr); ok {
			h.getRentalById(w, r, id)
		}
	case action == "" && r.Method == http.MethodDelete:
		if id, ok := parseId(w, r, idStr); ok {
			h.cancelRental(w, r, id)
		}
	case action == "return" && r.Method == http.MethodPost:
		if id, ok := parseId(w, r, idStr); ok {
			h.returnRental(w, r, id)
		}
	case action == "" || action == "return":
		w.WriteHeader(http.StatusMethodNotAllowed)
	default:
		http.NotFound(w, r)
	}
}

type RentalEntry struct {
	CustomerID *int `json:"customerId"`
	GameID     *int `json:"gameId"`
	DaysRented *int `json:"daysRented"`
}

type RentalCustomerResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type RentalGameResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

type RentalResponse struct {
	ID            int                    `json:"id"`
	CustomerID    int                    `json:"customerId"`
	GameID        int                    `json:"gameId"`
	RentDate      string                 `json:"rentDate"`
	DaysRented    int                    `json:"daysRented"`
	ReturnDate    *string                `json:"returnDate"`
	OriginalPrice int                    `json:"originalPrice"`
	DelayFee      *int                   `json:"delayFee"`
	Customer      RentalCustomerResponse `json:"customer"`
	Game          RentalGameResponse     `json:"game"`
}

func rentalToResponse(rt rental.Rental) RentalResponse {
	resp := RentalResponse{
		ID:            rt.ID,
		CustomerID:    rt.CustomerID,
		GameID:        rt.GameID,
		RentDate:      formatDate(rt.RentDate),
		DaysRented:    rt.DaysRented,
		OriginalPrice: rt.OriginalPrice,
		DelayFee:      rt.DelayFee,
		Customer:      RentalCustomerResponse{ID: rt.Customer.ID, Name: rt.Customer.Name},
		Game: RentalGameResponse{
			ID:           rt.Game.ID,
			Name:         rt.Game.Name,
			CategoryID:   rt.Game.CategoryID,
			CategoryName: rt.Game.CategoryName,
		},
	}
	if rt.ReturnDate != nil {
		d := formatDate(*rt.ReturnDate)
		resp.ReturnDate = &d
	}
	return resp
}

func (h *RentalHandler) createRental(w http.ResponseWriter, r *http.Request) {
	var entry RentalEntry
	if !decodeEntry(w, r, &entry) {
		return
	}

	req := rental.CreateRentalRequest{
		CustomerID: entry.CustomerID,
		GameID:     entry.GameID,
		DaysRented: entry.DaysRented,
	}
	created, err := h.rentalService.CreateRental(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	responseJSON(w, r, http.StatusCreated, rentalToResponse(created))
}

func (h *RentalHandler) getRentalById(w http.ResponseWriter, r *http.Request, id int) {
	rt, err := h.rentalService.GetRental(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	responseJSON(w, r, http.StatusOK, rentalToResponse(rt))
}

func (h *RentalHandler) returnRental(w http.ResponseWriter, r *http.Request, id int) {
	returned, err := h.rentalService.ReturnRental(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	responseJSON(w, r, http.StatusOK, rentalToResponse(returned))
}

func (h *RentalHandler) cancelRental(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.rentalService.CancelRental(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

/* Returns the rentals, optionally narrowed by "customerId" and "gameId". */
func (h *RentalHandler) listRentals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, valid := extractPageParams(query)
	if !valid {
		responseJSON(w, r, http.StatusBadRequest, rental.ErrResponseQueryPageInvalid)
		return
	}
	customerID, okCustomer := extractIdFilter(query, "customerId")
	gameID, okGame := extractIdFilter(query, "gameId")
	if !okCustomer || !okGame {
		responseJSON(w, r, http.StatusBadRequest, rental.ErrResponseQueryFilterInvalid)
		return
	}

	filter := rental.RentalsFilter{CustomerID: customerID, GameID: gameID, Page: page}
	rentals, err := h.rentalService.ListRentals(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	results := []RentalResponse{}
	for _, rt := range rentals {
		results = append(results, rentalToResponse(rt))
	}
	responseJSON(w, r, http.StatusOK, results)
}
