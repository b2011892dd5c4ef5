package http

import (
	"net/http"

	"github.com/games-rental/cmd/api/rental"
)

/* Addresses a call to "/customers" according to the requested action.  */
func (h *RentalHandler) customers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listCustomers(w, r)
	case http.MethodPost:
		h.createCustomer(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

/* Addresses a call to "/customers/(expected id here)" according to the requested action.  */
func (h *RentalHandler) customerById(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getCustomerById(w, r)
	case http.MethodPut:
		h.updateCustomer(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

type CustomerEntry struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	CPF      string `json:"cpf"`
	Birthday string `json:"birthday"`
}

type CustomerResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	CPF      string `json:"cpf"`
	Birthday string `json:"birthday"`
}

func customerToResponse(c rental.Customer) CustomerResponse {
	return CustomerResponse{
		ID:       c.ID,
		Name:     c.Name,
		Phone:    c.Phone,
		CPF:      c.CPF,
		Birthday: formatDate(c.Birthday),
	}
}

func entryToCustomerReq(e CustomerEntry) rental.CustomerRequest {
	return rental.CustomerRequest{
		Name:     e.Name,
		Phone:    e.Phone,
		CPF:      e.CPF,
		Birthday: e.Birthday,
	}
}

func (h *RentalHandler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var entry CustomerEntry
	if !decodeEntry(w, r, &entry) {
		return
	}

	created, err := h.rentalService.CreateCustomer(r.Context(), entryToCustomerReq(entry))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	responseJSON(w, r, http.StatusCreated, customerToResponse(created))
}

func (h *RentalHandler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := isolateId(w, r, "/customers/")
	if !ok {
		return
	}

	var entry CustomerEntry
	if !decodeEntry(w, r, &entry) {
		return
	}

	req := rental.UpdateCustomerRequest{ID: id, CustomerRequest: entryToCustomerReq(entry)}
	updated, err := h.rentalService.UpdateCustomer(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	responseJSON(w, r, http.StatusOK, customerToResponse(updated))
}

func (h *RentalHandler) getCustomerById(w http.ResponseWriter, r *http.Request) {
	id, ok := isolateId(w, r, "/customers/")
	if !ok {
		return
	}

	c, err := h.rentalService.GetCustomer(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	responseJSON(w, r, http.StatusOK, customerToResponse(c))
}

/* Returns the customers whose cpf starts with the "cpf" query parameter. */
func (h *RentalHandler) listCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, valid := extractPageParams(query)
	if !valid {
		responseJSON(w, r, http.StatusBadRequest, rental.ErrResponseQueryPageInvalid)
		return
	}

	customers, err := h.rentalService.ListCustomers(r.Context(), query.Get("cpf"), page)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	results := []CustomerResponse{}
	for _, c := range customers {
		results = append(results, customerToResponse(c))
	}
	responseJSON(w, r, http.StatusOK, results)
}
