package http

import (
	"net/http"

	"github.com/games-rental/cmd/api/rental"
)

/* Addresses a call to "/games" according to the requested action.  */
func (h *RentalHandler) games(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listGames(w, r)
	case http.MethodPost:
		h.createGame(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

/* Addresses a call to "/games/(expected id here)" according to the requested action.  */
func (h *RentalHandler) gameById(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getGameById(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

type GameEntry struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	StockTotal  *int   `json:"stockTotal"`
	CategoryID  *int   `json:"categoryId"`
	PricePerDay *int   `json:"pricePerDay"`
}

type GameResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	StockTotal   int    `json:"stockTotal"`
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	PricePerDay  int    `json:"pricePerDay"`
}

func gameToResponse(g rental.Game) GameResponse {
	return GameResponse{
		ID:           g.ID,
		Name:         g.Name,
		Image:        g.Image,
		StockTotal:   g.StockTotal,
		CategoryID:   g.CategoryID,
		CategoryName: g.CategoryName,
		PricePerDay:  g.PricePerDay,
	}
}

func (h *RentalHandler) createGame(w http.ResponseWriter, r *http.Request) {
	var entry GameEntry
	if !decodeEntry(w, r, &entry) {
		return
	}

	req := rental.CreateGameRequest{
		Name:        entry.Name,
		Image:       entry.Image,
		StockTotal:  entry.StockTotal,
		CategoryID:  entry.CategoryID,
		PricePerDay: entry.PricePerDay,
	}
	created, err := h.rentalService.CreateGame(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	responseJSON(w, r, http.StatusCreated, gameToResponse(created))
}

func (h *RentalHandler) getGameById(w http.ResponseWriter, r *http.Request) {
	id, ok := isolateId(w, r, "/games/")
	if !ok {
		return
	}

	g, err := h.rentalService.GetGame(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	responseJSON(w, r, http.StatusOK, gameToResponse(g))
}

/* Returns the games whose name starts with the "name" query parameter, ignoring case. */
func (h *RentalHandler) listGames(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, valid := extractPageParams(query)
	if !valid {
		responseJSON(w, r, http.StatusBadRequest, rental.ErrResponseQueryPageInvalid)
		return
	}

	games, err := h.rentalService.ListGames(r.Context(), query.Get("name"), page)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	results := []GameResponse{}
	for _, g := range games {
		results = append(results, gameToResponse(g))
	}
	responseJSON(w, r, http.StatusOK, results)
}
