package http

import (
	"net/http"

	"github.com/games-rental/cmd/api/rental"
)

/* Addresses a call to "/categories" according to the requested action.  */
func (h *RentalHandler) categories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listCategories(w, r)
	case http.MethodPost:
		h.createCategory(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

type CategoryEntry struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func categoryToResponse(c rental.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func (h *RentalHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var entry CategoryEntry
	if !decodeEntry(w, r, &entry) {
		return
	}

	created, err := h.rentalService.CreateCategory(r.Context(), rental.CreateCategoryRequest{Name: entry.Name})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	responseJSON(w, r, http.StatusCreated, categoryToResponse(created))
}

func (h *RentalHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	page, valid := extractPageParams(r.URL.Query())
	if !valid {
		responseJSON(w, r, http.StatusBadRequest, rental.ErrResponseQueryPageInvalid)
		return
	}

	categories, err := h.rentalService.ListCategories(r.Context(), page)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	results := []CategoryResponse{}
	for _, c := range categories {
		results = append(results, categoryToResponse(c))
	}
	responseJSON(w, r, http.StatusOK, results)
}
