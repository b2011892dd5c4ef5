package rental

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"log/slog"
	"time"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_rental.go -package=mocks

type ServiceAPI interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (Category, error)
	ListCategories(ctx context.Context, page Page) ([]Category, error)

	CreateGame(ctx context.Context, req CreateGameRequest) (Game, error)
	GetGame(ctx context.Context, id int) (Game, error)
	ListGames(ctx context.Context, namePrefix string, page Page) ([]Game, error)

	CreateCustomer(ctx context.Context, req CustomerRequest) (Customer, error)
	UpdateCustomer(ctx context.Context, req UpdateCustomerRequest) (Customer, error)
	GetCustomer(ctx context.Context, id int) (Customer, error)
	ListCustomers(ctx context.Context, cpfPrefix string, page Page) ([]Customer, error)

	CreateRental(ctx context.Context, req CreateRentalRequest) (Rental, error)
	ReturnRental(ctx context.Context, id int) (Rental, error)
	CancelRental(ctx context.Context, id int) error
	GetRental(ctx context.Context, id int) (Rental, error)
	ListRentals(ctx context.Context, filter RentalsFilter) ([]Rental, error)
}

type Repository interface {
	CreateCategory(ctx context.Context, c Category) (Category, error)
	GetCategoryByID(ctx context.Context, id int) (Category, error)
	GetCategoryByName(ctx context.Context, name string) (Category, error)
	ListCategories(ctx context.Context, page Page) ([]Category, error)

	CreateGame(ctx context.Context, g Game) (Game, error)
	GetGameByID(ctx context.Context, id int) (Game, error)
	GetGameByName(ctx context.Context, name string) (Game, error)
	ListGames(ctx context.Context, namePrefix string, page Page) ([]Game, error)
	LockGame(ctx context.Context, id int) (Game, error)

	CreateCustomer(ctx context.Context, c Customer) (Customer, error)
	GetCustomerByID(ctx context.Context, id int) (Customer, error)
	GetCustomerByCPF(ctx context.Context, cpf string) (Customer, error)
	UpdateCustomer(ctx context.Context, c Customer) (Customer, error)
	ListCustomers(ctx context.Context, cpfPrefix string, page Page) ([]Customer, error)

	CreateRental(ctx context.Context, r Rental) (Rental, error)
	GetRentalByID(ctx context.Context, id int) (Rental, error)
	ListRentals(ctx context.Context, filter RentalsFilter) ([]Rental, error)
	CountRentalsByGame(ctx context.Context, gameID int, openOnly bool) (int, error)
	ReturnRental(ctx context.Context, id int, returnDate time.Time, delayFee *int) (Rental, error)
	DeleteRental(ctx context.Context, id int) error

	BeginTx(ctx context.Context, opts *sql.TxOptions) (Repository, driver.Tx, error)
}

type Notifier interface {
	RentalCreated(ctx context.Context, r Rental) error
	RentalReturned(ctx context.Context, r Rental) error
}

// StockScope selects which rentals count against a game's stock.
type StockScope string

const (
	StockScopeOpen StockScope = "open"
	StockScopeAll  StockScope = "all"
)

type Options struct {
	StockScope           StockScope
	ImageRequired        bool
	NotificationsTimeout time.Duration
	Logger               *slog.Logger
	Now                  func() time.Time
}

type Service struct {
	repo                 Repository
	ntfy                 Notifier
	validator            *Validator
	stockScope           StockScope
	notificationsTimeout time.Duration
	log                  *slog.Logger
	now                  func() time.Time
}

func NewService(repo Repository, ntfy Notifier, opts Options) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.StockScope == "" {
		opts.StockScope = StockScopeOpen
	}
	if opts.NotificationsTimeout <= 0 {
		opts.NotificationsTimeout = 2 * time.Second
	}

	return &Service{
		repo:                 repo,
		ntfy:                 ntfy,
		validator:            NewValidator(opts.ImageRequired, opts.Now),
		stockScope:           opts.StockScope,
		notificationsTimeout: opts.NotificationsTimeout,
		log:                  opts.Logger,
		now:                  opts.Now,
	}
}

/* Runs send in the background with its own timeout, detached from the request context. */
func (s *Service) notify(event string, send func(ctx context.Context) error) {
	if s.ntfy == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notificationsTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			s.log.Warn("notification not delivered", "event", event, "err", err)
		}
	}()
}
