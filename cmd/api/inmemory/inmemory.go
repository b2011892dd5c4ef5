package inmemory

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/games-rental/cmd/api/rental"
	"github.com/hashicorp/go-memdb"
)

type InMemoryStore struct {
	db  *memdb.MemDB
	exc *memdb.Txn
}

func NewInMemoryStore() (*InMemoryStore, error) {
	// Define the schema
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			"sequence": {
				Name: "sequence",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Table"},
					},
				},
			},
			"category": {
				Name: "category",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
					"name": {
						Name:    "name",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Name"},
					},
				},
			},
			"game": {
				Name: "game",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
					"name": {
						Name:    "name",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Name"},
					},
				},
			},
			"customer": {
				Name: "customer",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
					"cpf": {
						Name:    "cpf",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "CPF"},
					},
				},
			},
			"rental": {
				Name: "rental",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
					"game_id": {
						Name:    "game_id",
						Unique:  false,
						Indexer: &memdb.IntFieldIndex{Field: "GameID"},
					},
				},
			},
		},
	}

	errV := schema.Validate()
	if errV != nil {
		slog.Error("schema validating error", "err", errV)
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}
	return &InMemoryStore{db: db, exc: nil}, nil
}

type sequence struct {
	Table string
	Value int
}

type storedGame struct {
	ID          int
	Name        string
	Image       string
	StockTotal  int
	CategoryID  int
	PricePerDay int
}

type storedRental struct {
	ID            int
	CustomerID    int
	GameID        int
	RentDate      time.Time
	DaysRented    int
	ReturnDate    *time.Time
	OriginalPrice int
	DelayFee      *int
}

/* Returns the transaction a method must work on. Inside BeginTx that is the shared
transaction, and committing it is left to its owner. */
func (store *InMemoryStore) txn(write bool) (txn *memdb.Txn, insideTx bool) {
	if store.exc != nil {
		return store.exc, true
	}
	return store.db.Txn(write), false
}

/* Hands out the next identifier of table, like a serial column. */
func nextID(txn *memdb.Txn, table string) (int, error) {
	raw, err := txn.First("sequence", "id", table)
	if err != nil {
		return 0, err
	}
	seq := sequence{Table: table}
	if raw != nil {
		seq = raw.(sequence)
	}
	seq.Value++
	if err := txn.Insert("sequence", seq); err != nil {
		return 0, err
	}
	return seq.Value, nil
}

/* Cuts a slice sorted by id to the requested page. */
func paginate[T any](items []T, page rental.Page) []T {
	if page.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if page.Limit > 0 && page.Offset+page.Limit < end {
		end = page.Offset + page.Limit
	}
	return items[page.Offset:end]
}

// -- Categories --

func (store *InMemoryStore) CreateCategory(ctx context.Context, c rental.Category) (rental.Category, error) {
	txn, insideTx := store.txn(true)
	if !insideTx {
		defer txn.Abort()
	}

	raw, err := txn.First("category", "name", c.Name)
	if err != nil {
		return rental.Category{}, fmt.Errorf("storing category on db: %w", err)
	}
	if raw != nil {
		return rental.Category{}, fmt.Errorf("storing category on db: %w", rental.ErrResponseCategoryNameConflict)
	}

	c.ID, err = nextID(txn, "category")
	if err != nil {
		return rental.Category{}, fmt.Errorf("storing category on db: %w", err)
	}
	if err := txn.Insert("category", c); err != nil {
		return rental.Category{}, fmt.Errorf("storing category on db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	return c, nil
}

func (store *InMemoryStore) GetCategoryByID(ctx context.Context, id int) (rental.Category, error) {
	txn, insideTx := store.txn(false)
	if !insideTx {
		defer txn.Abort()
	}
	return firstCategory(txn, "id", id)
}

func (store *InMemoryStore) GetCategoryByName(ctx context.Context, name string) (rental.Category, error) {
	txn, insideTx := store.txn(false)
	if !insideTx {
		defer txn.Abort()
	}
	return firstCategory(txn, "name", name)
}

func firstCategory(txn *memdb.Txn, index string, arg any) (rental.Category, error) {
	raw, err := txn.First("category", index, arg)
	if err != nil {
		return rental.Category{}, fmt.Errorf("searching category by %s: %w", index, err)
	}
	if raw == nil {
		return rental.Category{}, fmt.Errorf("searching category by %s: %w", index, rental.ErrResponseCategoryNotFound)
	}
	return raw.(rental.Category), nil
}

func (store *InMemoryStore) ListCategories(ctx context.Context, page rental.Page) ([]rental.Category, error) {
	txn, insideTx := store.txn(false)
	if !insideTx {
		defer txn.Abort()
	}

	it, err := txn.Get("category", "id")
	if err != nil {
		return nil, fmt.Errorf("listing categories from db: %w", err)
	}
	categories := []rental.Category{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		categories = append(categories, obj.(rental.Category))
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })

	return paginate(categories, page), nil
}

// -- Games --

func (store *InMemoryStore) CreateGame(ctx context.Context, g rental.Game) (rental.Game, error) {
	txn, insideTx := store.txn(true)
	if !insideTx {
		defer txn.Abort()
	}

	raw, err := txn.First("game", "name", g.Name)
	if err != nil {
		return rental.Game{}, fmt.Errorf("storing game on db: %w", err)
	}
	if raw != nil {
		return rental.Game{}, fmt.Errorf("storing game on db: %w", rental.ErrResponseGameNameConflict)
	}
	category, err := firstCategory(txn, "id", g.CategoryID)
	if err != nil {
		return rental.Game{}, fmt.Errorf("storing game on db: %w", err)
	}

	g.ID, err = nextID(txn, "game")
	if err != nil {
		return rental.Game{}, fmt.Errorf("storing game on db: %w", err)
	}
	stored := storedGame{
		ID:          g.ID,
		Name:        g.Name,
		Image:       g.Image,
		StockTotal:  g.StockTotal,
		CategoryID:  g.CategoryID,
		PricePerDay: g.PricePerDay,
	}
	if err := txn.Insert("game", stored); err != nil {
		return rental.Game{}, fmt.Errorf("storing game on db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	g.CategoryName = category.Name
	return g, nil
}

func (store *InMemoryStore) GetGameByID(ctx context.Context, id int) (rental.Game, error) {
	txn, insideTx := store.txn(false)
	if !insideTx {
		defer txn.Abort()
	}
	return firstGame(txn, "id", id)
}

func (store *InMemoryStore) GetGameByName(ctx context.Context, name string) (rental.Game, error) {
	txn, insideTx := store.txn(false)
	if !insideTx {
		defer txn.Abort()
	}
	return firstGame(txn, "name", name)
}

/* Reads the game for an update. Write transactions are exclusive in go-memdb, so the
read inside BeginTx already holds every other writer off. */
func (store *InMemoryStore) LockGame(ctx context.Context, id int) (rental.Game, error) {
	return store.GetGameByID(ctx, id)
}

func firstGame(txn *memdb.Txn, index string, arg any) (rental.Game, error) {
	raw, err := txn.First("game", index, arg)
	if err != nil {
		return rental.Game{}, fmt.Errorf("searching game by %s: %w", index, err)
	}
	if raw == nil {
		return rental.Game{}, fmt.Errorf("searching game by %s: %w", index, rental.ErrResponseGameNotFound)
	}
	return joinGame(txn, raw.(storedGame)), nil
}

func joinGame(txn *memdb.Txn, stored storedGame) rental.Game {
	g := rental.Game{
		ID:          stored.ID,
		Name:        stored.Name,
		Image:       stored.Image,
		StockTotal:  stored.StockTotal,
		CategoryID:  stored.CategoryID,
		PricePerDay: stored.PricePerDay,
	}
	if c, err := firstCategory(txn, "id", stored.CategoryID); err == nil {
		g.CategoryName = c.Name
	}
	return g
}

func (store *InMemoryStore) ListGames(ctx context.Context, namePrefix string, page rental.Page) ([]rental.Game, error) {
	txn, insideTx := store.txn(false)
	if !insideTx {
		defer txn.Abort()
	}

	it, err := txn.Get("game", "id")
	if err != nil {
		return nil, fmt.Errorf("listing games from db: %w", err)
	}
	namePrefix = strings.ToLower(namePrefix)
	games := []rental.Game{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		g := obj.(storedGame)
		if !strings.HasPrefix(strings.ToLower(g.Name), namePrefix) {
			continue
		}
		games = append(games, joinGame(txn, g))
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })

	return paginate(games, page), nil
}

// -- Customers --

func (store *InMemoryStore) CreateCustomer(ctx context.Context, c rental.Customer) (rental.Customer, error) {
	txn, insideTx := store.txn(true)
	if !insideTx {
		defer txn.Abort()
	}

	raw, err := txn.First("customer", "cpf", c.CPF)
	if err != nil {
		return rental.Customer{}, fmt.Errorf("storing customer on db: %w", err)
	}
	if raw != nil {
		return rental.Customer{}, fmt.Errorf("storing customer on db: %w", rental.ErrResponseCustomerCPFConflict)
	}

	c.ID, err = nextID(txn, "customer")
	if err != nil {
		return rental.Customer{}, fmt.Errorf("storing customer on db: %w", err)
	}
	if err := txn.Insert("customer", c); err != nil {
		return rental.Customer{}, fmt.Errorf("storing customer on db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	return c, nil
}

func (store *InMemoryStore) GetCustomerByID(ctx context.Context, id int) (rental.Customer, error) {
	txn, insideTx := store.txn(false)
	if !insideTx {
		defer txn.Abort()
	}
	return firstCustomer(txn, "id", id)
}

func (store *InMemoryStore) GetCustomerByCPF(ctx context.Context, cpf string) (rental.Customer, error) {
	txn, insideTx := store.txn(false)
	if !insideTx {
		defer txn.Abort()
	}
	return firstCustomer(txn, "cpf", cpf)
}

func firstCustomer(txn *memdb.Txn, index string, arg any) (rental.Customer, error) {
	raw, err := txn.First("customer", index, arg)
	if err != nil {
		return rental.Customer{}, fmt.Errorf("searching customer by %s: %w", index, err)
	}
	if raw == nil {
		return rental.Customer{}, fmt.Errorf("searching customer by %s: %w", index, rental.ErrResponseCustomerNotFound)
	}
	return raw.(rental.Customer), nil
}

func (store *InMemoryStore) UpdateCustomer(ctx context.Context, c rental.Customer) (rental.Customer, error) {
	txn, insideTx := store.txn(true)
	if !insideTx {
		defer txn.Abort()
	}

	if _, err := firstCustomer(txn, "id", c.ID); err != nil {
		return rental.Customer{}, fmt.Errorf("updating customer on db: %w", err)
	}
	raw, err := txn.First("customer", "cpf", c.CPF)
	if err != nil {
		return rental.Customer{}, fmt.Errorf("updating customer on db: %w", err)
	}
	if raw != nil && raw.(rental.Customer).ID != c.ID {
		return rental.Customer{}, fmt.Errorf("updating customer on db: %w", rental.ErrResponseCustomerCPFConflict)
	}

	if err := txn.Insert("customer", c); err != nil {
		return rental.Customer{}, fmt.Errorf("updating customer on db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	return c, nil
}

func (store *InMemoryStore) ListCustomers(ctx context.Context, cpfPrefix string, page rental.Page) ([]rental.Customer, error) {
	txn, insideTx := store.txn(false)
	if !insideTx {
		defer txn.Abort()
	}

	it, err := txn.Get("customer", "id")
	if err != nil {
		return nil, fmt.Errorf("listing customers from db: %w", err)
	}
	customers := []rental.Customer{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		c := obj.(rental.Customer)
		if !strings.HasPrefix(c.CPF, cpfPrefix) {
			continue
		}
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })

	return paginate(customers, page), nil
}

// -- Rentals --

func (store *InMemoryStore) CreateRental(ctx context.Context, r rental.Rental) (rental.Rental, error) {
	txn, insideTx := store.txn(true)
	if !insideTx {
		defer txn.Abort()
	}

	var err error
	r.ID, err = nextID(txn, "rental")
	if err != nil {
		return rental.Rental{}, fmt.Errorf("storing rental on db: %w", err)
	}
	stored := storedRental{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		GameID:        r.GameID,
		RentDate:      r.RentDate,
		DaysRented:    r.DaysRented,
		ReturnDate:    r.ReturnDate,
		OriginalPrice: r.OriginalPrice,
		DelayFee:      r.DelayFee,
	}
	if err := txn.Insert("rental", stored); err != nil {
		return rental.Rental{}, fmt.Errorf("storing rental on db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	return r, nil
}

func (store *InMemoryStore) GetRentalByID(ctx context.Context, id int) (rental.Rental, error) {
	txn, insideTx := store.txn(false)
	if !insideTx {
		defer txn.Abort()
	}

	stored, err := firstRental(txn, id)
	if err != nil {
		return rental.Rental{}, fmt.Errorf("searching rental by ID: %w", err)
	}
	return joinRental(txn, stored), nil
}

func firstRental(txn *memdb.Txn, id int) (storedRental, error) {
	raw, err := txn.First("rental", "id", id)
	if err != nil {
		return storedRental{}, err
	}
	if raw == nil {
		return storedRental{}, rental.ErrResponseRentalNotFound
	}
	return raw.(storedRental), nil
}

func joinRental(txn *memdb.Txn, stored storedRental) rental.Rental {
	r := rental.Rental{
		ID:            stored.ID,
		CustomerID:    stored.CustomerID,
		GameID:        stored.GameID,
		RentDate:      stored.RentDate,
		DaysRented:    stored.DaysRented,
		ReturnDate:    stored.ReturnDate,
		OriginalPrice: stored.OriginalPrice,
		DelayFee:      stored.DelayFee,
	}
	if c, err := firstCustomer(txn, "id", stored.CustomerID); err == nil {
		r.Customer = rental.CustomerSummary{ID: c.ID, Name: c.Name}
	}
	if g, err := firstGame(txn, "id", stored.GameID); err == nil {
		r.Game = rental.GameSummary{ID: g.ID, Name: g.Name, CategoryID: g.CategoryID, CategoryName: g.CategoryName}
	}
	return r
}

func (store *InMemoryStore) ListRentals(ctx context.Context, filter rental.RentalsFilter) ([]rental.Rental, error) {
	txn, insideTx := store.txn(false)
	if !insideTx {
		defer txn.Abort()
	}

	it, err := txn.Get("rental", "id")
	if err != nil {
		return nil, fmt.Errorf("listing rentals from db: %w", err)
	}
	rentals := []rental.Rental{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		r := obj.(storedRental)
		if filter.CustomerID != 0 && r.CustomerID != filter.CustomerID {
			continue
		}
		if filter.GameID != 0 && r.GameID != filter.GameID {
			continue
		}
		rentals = append(rentals, joinRental(txn, r))
	}
	sort.Slice(rentals, func(i, j int) bool { return rentals[i].ID < rentals[j].ID })

	return paginate(rentals, filter.Page), nil
}

func (store *InMemoryStore) CountRentalsByGame(ctx context.Context, gameID int, openOnly bool) (int, error) {
	txn, insideTx := store.txn(false)
	if !insideTx {
		defer txn.Abort()
	}

	it, err := txn.Get("rental", "game_id", gameID)
	if err != nil {
		return 0, fmt.Errorf("counting rentals from db: %w", err)
	}
	count := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if openOnly && obj.(storedRental).ReturnDate != nil {
			continue
		}
		count++
	}
	return count, nil
}

func (store *InMemoryStore) ReturnRental(ctx context.Context, id int, returnDate time.Time, delayFee *int) (rental.Rental, error) {
	txn, insideTx := store.txn(true)
	if !insideTx {
		defer txn.Abort()
	}

	stored, err := firstRental(txn, id)
	if err != nil {
		return rental.Rental{}, fmt.Errorf("returning rental on db: %w", err)
	}
	if stored.ReturnDate != nil {
		return rental.Rental{}, fmt.Errorf("returning rental on db: %w", rental.ErrResponseRentalAlreadyReturned)
	}

	stored.ReturnDate = &returnDate
	stored.DelayFee = delayFee
	if err := txn.Insert("rental", stored); err != nil {
		return rental.Rental{}, fmt.Errorf("returning rental on db: %w", err)
	}

	r := joinRental(txn, stored)
	if !insideTx {
		txn.Commit()
	}
	return r, nil
}

func (store *InMemoryStore) DeleteRental(ctx context.Context, id int) error {
	txn, insideTx := store.txn(true)
	if !insideTx {
		defer txn.Abort()
	}

	stored, err := firstRental(txn, id)
	if err != nil {
		return fmt.Errorf("deleting rental from db: %w", err)
	}
	if stored.ReturnDate != nil {
		return fmt.Errorf("deleting rental from db: %w", rental.ErrResponseRentalNotCancellable)
	}
	if err := txn.Delete("rental", stored); err != nil {
		return fmt.Errorf("deleting rental from db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	return nil
}

// -- Transactions --

func (store *InMemoryStore) BeginTx(ctx context.Context, opts *sql.TxOptions) (rental.Repository, driver.Tx, error) {
	txn := store.db.Txn(true)
	if txn == nil {
		return nil, nil, fmt.Errorf("failed to create transaction")
	}

	txWrapper := &TxWrapper{txn: txn}
	txStore := &InMemoryStore{
		db:  store.db,
		exc: txWrapper.txn,
	}

	return txStore, txWrapper, nil
}

type TxWrapper struct {
	txn *memdb.Txn
}

func (tx *TxWrapper) Commit() error {
	tx.txn.Commit()
	return nil
}

/* Aborting a committed go-memdb transaction is a no-op, so Rollback is safe to defer. */
func (tx *TxWrapper) Rollback() error {
	tx.txn.Abort()
	return nil
}
