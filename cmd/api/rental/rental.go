package rental

import (
	"time"
)

// DateLayout is the wire format of every calendar date handled by the service.
const DateLayout = "2006-01-02"

// DefaultLimit is the page size used when a list request does not set one.
const DefaultLimit = 1000

type Category struct {
	ID   int
	Name string
}

type Game struct {
	ID           int
	Name         string
	Image        string
	StockTotal   int
	CategoryID   int
	CategoryName string
	PricePerDay  int
}

type Customer struct {
	ID       int
	Name     string
	Phone    string
	CPF      string
	Birthday time.Time
}

type Rental struct {
	ID            int
	CustomerID    int
	GameID        int
	RentDate      time.Time
	DaysRented    int
	ReturnDate    *time.Time
	OriginalPrice int
	DelayFee      *int
	Customer      CustomerSummary
	Game          GameSummary
}

/* Reports whether the rental reached its terminal state. */
func (r Rental) Returned() bool {
	return r.ReturnDate != nil
}

type CustomerSummary struct {
	ID   int
	Name string
}

type GameSummary struct {
	ID           int
	Name         string
	CategoryID   int
	CategoryName string
}

type Page struct {
	Offset int
	Limit  int
}

type RentalsFilter struct {
	CustomerID int
	GameID     int
	Page
}

/* Truncates t to the calendar day it falls on, in UTC. */
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
