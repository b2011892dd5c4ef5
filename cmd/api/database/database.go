package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/games-rental/cmd/api/rental"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/lib/pq"

	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	exc *Exectuor
}

type Exectuor struct {
	DBTX
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:  db,
		exc: NewExc(db),
	}
}

func NewExc(dbtx DBTX) *Exectuor {
	return &Exectuor{DBTX: dbtx}
}

func (store *Store) BeginTx(ctx context.Context, opts *sql.TxOptions) (rental.Repository, driver.Tx, error) {
	tx, err := store.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", err)
	}

	txRepo := NewStore(store.db)
	txRepo.exc = NewExc(tx)
	return txRepo, tx, nil
}

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

/* Connects to the database trought a connection string and returns a pointer to a valid DB object (*sql.DB). */
func ConnectDb(ctx context.Context, connStr string, pool PoolConfig) (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to db, openning: %w", err)
	}

	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connecting to db, pingging: %w", err)
	}

	slog.Info("successfully connected to the database")
	return sqlDB, nil
}

/* Applies every pending migration found at path. An up to date schema returns migrate.ErrNoChange wrapped. */
func MigrationUp(store *Store, path string) error {
	driver, err := postgres.WithInstance(store.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", path),
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	if err := m.Up(); err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

/* Maps constraint violations to the domain errors the service already knows. */
func translate(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case "23505":
		switch pqErr.Constraint {
		case "categories_name_key":
			return rental.ErrResponseCategoryNameConflict
		case "games_name_key":
			return rental.ErrResponseGameNameConflict
		case "customers_cpf_key":
			return rental.ErrResponseCustomerCPFConflict
		}
	case "23503":
		switch pqErr.Constraint {
		case "games_category_id_fkey":
			return rental.ErrResponseCategoryNotFound
		case "rentals_customer_id_fkey":
			return rental.ErrResponseCustomerNotFound
		case "rentals_game_id_fkey":
			return rental.ErrResponseGameNotFound
		}
	}
	return err
}

/* Escapes LIKE wildcards so a user filter only ever matches as a literal prefix. */
func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}

func dateParam(t time.Time) string {
	return t.Format(rental.DateLayout)
}

// -- Categories --

func (store *Store) CreateCategory(ctx context.Context, c rental.Category) (rental.Category, error) {
	sqlStatement := `
	INSERT INTO categories (name)
	VALUES ($1)
	RETURNING id, name`
	createdRow := store.exc.QueryRowContext(ctx, sqlStatement, c.Name)
	var categoryToReturn rental.Category
	err := createdRow.Scan(&categoryToReturn.ID, &categoryToReturn.Name)
	if err != nil {
		return rental.Category{}, fmt.Errorf("storing category on db: %w", translate(err))
	}

	return categoryToReturn, nil
}

func (store *Store) GetCategoryByID(ctx context.Context, id int) (rental.Category, error) {
	return store.getCategory(ctx, "id", `SELECT id, name FROM categories WHERE id=$1`, id)
}

func (store *Store) GetCategoryByName(ctx context.Context, name string) (rental.Category, error) {
	return store.getCategory(ctx, "name", `SELECT id, name FROM categories WHERE name=$1`, name)
}

func (store *Store) getCategory(ctx context.Context, by, sqlStatement string, arg any) (rental.Category, error) {
	var c rental.Category
	err := store.exc.QueryRowContext(ctx, sqlStatement, arg).Scan(&c.ID, &c.Name)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return rental.Category{}, fmt.Errorf("searching category by %s: %w", by, rental.ErrResponseCategoryNotFound)
		default:
			return rental.Category{}, fmt.Errorf("searching category by %s: %w", by, err)
		}
	}
	return c, nil
}

func (store *Store) ListCategories(ctx context.Context, page rental.Page) ([]rental.Category, error) {
	sqlStatement := `
	SELECT id, name
	FROM categories
	ORDER BY id
	OFFSET $1 LIMIT $2`
	rows, err := store.exc.QueryContext(ctx, sqlStatement, page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("listing categories from db: %w", err)
	}
	defer rows.Close()

	categories := []rental.Category{}
	for rows.Next() {
		var c rental.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("listing categories from db, scanning: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing categories from db: %w", err)
	}
	return categories, nil
}

// -- Games --

const selectGame = `
	SELECT g.id, g.name, g.image, g.stock_total, g.category_id, c.name, g.price_per_day
	FROM games g
	JOIN categories c ON c.id = g.category_id`

func scanGame(row scanner) (rental.Game, error) {
	var g rental.Game
	err := row.Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.CategoryID, &g.CategoryName, &g.PricePerDay)
	return g, err
}

func (store *Store) CreateGame(ctx context.Context, g rental.Game) (rental.Game, error) {
	sqlStatement := `
	INSERT INTO games (name, image, stock_total, category_id, price_per_day)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id`
	err := store.exc.QueryRowContext(ctx, sqlStatement, g.Name, g.Image, g.StockTotal, g.CategoryID, g.PricePerDay).Scan(&g.ID)
	if err != nil {
		return rental.Game{}, fmt.Errorf("storing game on db: %w", translate(err))
	}

	created, err := store.GetGameByID(ctx, g.ID)
	if err != nil {
		return rental.Game{}, fmt.Errorf("storing game on db: %w", err)
	}
	return created, nil
}

func (store *Store) GetGameByID(ctx context.Context, id int) (rental.Game, error) {
	return store.getGame(ctx, "id", selectGame+` WHERE g.id=$1`, id)
}

func (store *Store) GetGameByName(ctx context.Context, name string) (rental.Game, error) {
	return store.getGame(ctx, "name", selectGame+` WHERE g.name=$1`, name)
}

/* Reads the game holding its row until the surrounding transaction ends. */
func (store *Store) LockGame(ctx context.Context, id int) (rental.Game, error) {
	return store.getGame(ctx, "id", selectGame+` WHERE g.id=$1 FOR UPDATE OF g`, id)
}

func (store *Store) getGame(ctx context.Context, by, sqlStatement string, arg any) (rental.Game, error) {
	g, err := scanGame(store.exc.QueryRowContext(ctx, sqlStatement, arg))
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return rental.Game{}, fmt.Errorf("searching game by %s: %w", by, rental.ErrResponseGameNotFound)
		default:
			return rental.Game{}, fmt.Errorf("searching game by %s: %w", by, err)
		}
	}
	return g, nil
}

func (store *Store) ListGames(ctx context.Context, namePrefix string, page rental.Page) ([]rental.Game, error) {
	sqlStatement := selectGame + `
	WHERE g.name ILIKE $1
	ORDER BY g.id
	OFFSET $2 LIMIT $3`
	rows, err := store.exc.QueryContext(ctx, sqlStatement, likePrefix(namePrefix), page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("listing games from db: %w", err)
	}
	defer rows.Close()

	games := []rental.Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("listing games from db, scanning: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing games from db: %w", err)
	}
	return games, nil
}

// -- Customers --

const selectCustomer = `SELECT id, name, phone, cpf, birthday FROM customers`

func scanCustomer(row scanner) (rental.Customer, error) {
	var c rental.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.CPF, &c.Birthday)
	c.Birthday = rental.Day(c.Birthday)
	return c, err
}

func (store *Store) CreateCustomer(ctx context.Context, c rental.Customer) (rental.Customer, error) {
	sqlStatement := `
	INSERT INTO customers (name, phone, cpf, birthday)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, phone, cpf, birthday`
	created, err := scanCustomer(store.exc.QueryRowContext(ctx, sqlStatement, c.Name, c.Phone, c.CPF, dateParam(c.Birthday)))
	if err != nil {
		return rental.Customer{}, fmt.Errorf("storing customer on db: %w", translate(err))
	}
	return created, nil
}

func (store *Store) GetCustomerByID(ctx context.Context, id int) (rental.Customer, error) {
	return store.getCustomer(ctx, "id", selectCustomer+` WHERE id=$1`, id)
}

func (store *Store) GetCustomerByCPF(ctx context.Context, cpf string) (rental.Customer, error) {
	return store.getCustomer(ctx, "cpf", selectCustomer+` WHERE cpf=$1`, cpf)
}

func (store *Store) getCustomer(ctx context.Context, by, sqlStatement string, arg any) (rental.Customer, error) {
	c, err := scanCustomer(store.exc.QueryRowContext(ctx, sqlStatement, arg))
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return rental.Customer{}, fmt.Errorf("searching customer by %s: %w", by, rental.ErrResponseCustomerNotFound)
		default:
			return rental.Customer{}, fmt.Errorf("searching customer by %s: %w", by, err)
		}
	}
	return c, nil
}

func (store *Store) UpdateCustomer(ctx context.Context, c rental.Customer) (rental.Customer, error) {
	sqlStatement := `
	UPDATE customers
	SET name = $2, phone = $3, cpf = $4, birthday = $5
	WHERE id = $1
	RETURNING id, name, phone, cpf, birthday`
	updated, err := scanCustomer(store.exc.QueryRowContext(ctx, sqlStatement, c.ID, c.Name, c.Phone, c.CPF, dateParam(c.Birthday)))
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return rental.Customer{}, fmt.Errorf("updating customer on db: %w", rental.ErrResponseCustomerNotFound)
		default:
			return rental.Customer{}, fmt.Errorf("updating customer on db: %w", translate(err))
		}
	}
	return updated, nil
}

func (store *Store) ListCustomers(ctx context.Context, cpfPrefix string, page rental.Page) ([]rental.Customer, error) {
	sqlStatement := selectCustomer + `
	WHERE cpf LIKE $1
	ORDER BY id
	OFFSET $2 LIMIT $3`
	rows, err := store.exc.QueryContext(ctx, sqlStatement, likePrefix(cpfPrefix), page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("listing customers from db: %w", err)
	}
	defer rows.Close()

	customers := []rental.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("listing customers from db, scanning: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing customers from db: %w", err)
	}
	return customers, nil
}

// -- Rentals --

const selectRental = `
	SELECT r.id, r.customer_id, r.game_id, r.rent_date, r.days_rented, r.return_date, r.original_price, r.delay_fee,
		c.name, g.name, g.category_id, cat.name
	FROM rentals r
	JOIN customers c ON c.id = r.customer_id
	JOIN games g ON g.id = r.game_id
	JOIN categories cat ON cat.id = g.category_id`

func scanRental(row scanner) (rental.Rental, error) {
	var r rental.Rental
	var returnDate sql.NullTime
	var delayFee sql.NullInt64
	err := row.Scan(&r.ID, &r.CustomerID, &r.GameID, &r.RentDate, &r.DaysRented, &returnDate, &r.OriginalPrice, &delayFee,
		&r.Customer.Name, &r.Game.Name, &r.Game.CategoryID, &r.Game.CategoryName)
	if err != nil {
		return rental.Rental{}, err
	}

	r.RentDate = rental.Day(r.RentDate)
	if returnDate.Valid {
		d := rental.Day(returnDate.Time)
		r.ReturnDate = &d
	}
	if delayFee.Valid {
		fee := int(delayFee.Int64)
		r.DelayFee = &fee
	}
	r.Customer.ID = r.CustomerID
	r.Game.ID = r.GameID
	return r, nil
}

func (store *Store) CreateRental(ctx context.Context, r rental.Rental) (rental.Rental, error) {
	sqlStatement := `
	INSERT INTO rentals (customer_id, game_id, rent_date, days_rented, original_price)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id`
	err := store.exc.QueryRowContext(ctx, sqlStatement, r.CustomerID, r.GameID, dateParam(r.RentDate), r.DaysRented, r.OriginalPrice).Scan(&r.ID)
	if err != nil {
		return rental.Rental{}, fmt.Errorf("storing rental on db: %w", translate(err))
	}
	return r, nil
}

func (store *Store) GetRentalByID(ctx context.Context, id int) (rental.Rental, error) {
	r, err := scanRental(store.exc.QueryRowContext(ctx, selectRental+` WHERE r.id=$1`, id))
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return rental.Rental{}, fmt.Errorf("searching rental by ID: %w", rental.ErrResponseRentalNotFound)
		default:
			return rental.Rental{}, fmt.Errorf("searching rental by ID: %w", err)
		}
	}
	return r, nil
}

func (store *Store) ListRentals(ctx context.Context, filter rental.RentalsFilter) ([]rental.Rental, error) {
	sqlStatement := selectRental + `
	WHERE ($1 = 0 OR r.customer_id = $1) AND ($2 = 0 OR r.game_id = $2)
	ORDER BY r.id
	OFFSET $3 LIMIT $4`
	rows, err := store.exc.QueryContext(ctx, sqlStatement, filter.CustomerID, filter.GameID, filter.Page.Offset, filter.Page.Limit)
	if err != nil {
		return nil, fmt.Errorf("listing rentals from db: %w", err)
	}
	defer rows.Close()

	rentals := []rental.Rental{}
	for rows.Next() {
		r, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("listing rentals from db, scanning: %w", err)
		}
		rentals = append(rentals, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing rentals from db: %w", err)
	}
	return rentals, nil
}

func (store *Store) CountRentalsByGame(ctx context.Context, gameID int, openOnly bool) (int, error) {
	sqlStatement := `
	SELECT COUNT(*)
	FROM rentals
	WHERE game_id = $1 AND (NOT $2 OR return_date IS NULL)`
	var count int
	if err := store.exc.QueryRowContext(ctx, sqlStatement, gameID, openOnly).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting rentals from db: %w", err)
	}
	return count, nil
}

/* Closes an open rental. The return date only moves from null to a value once. */
func (store *Store) ReturnRental(ctx context.Context, id int, returnDate time.Time, delayFee *int) (rental.Rental, error) {
	sqlStatement := `
	UPDATE rentals
	SET return_date = $2, delay_fee = $3
	WHERE id = $1 AND return_date IS NULL
	RETURNING id`
	var fee sql.NullInt64
	if delayFee != nil {
		fee = sql.NullInt64{Int64: int64(*delayFee), Valid: true}
	}
	err := store.exc.QueryRowContext(ctx, sqlStatement, id, dateParam(returnDate), fee).Scan(&id)
	if err != nil {
		if err != sql.ErrNoRows {
			return rental.Rental{}, fmt.Errorf("returning rental on db: %w", err)
		}
		if _, err := store.GetRentalByID(ctx, id); err != nil {
			return rental.Rental{}, fmt.Errorf("returning rental on db: %w", err)
		}
		return rental.Rental{}, fmt.Errorf("returning rental on db: %w", rental.ErrResponseRentalAlreadyReturned)
	}

	return store.GetRentalByID(ctx, id)
}

/* Deletes an open rental. Returned rentals are kept. */
func (store *Store) DeleteRental(ctx context.Context, id int) error {
	sqlStatement := `DELETE FROM rentals WHERE id = $1 AND return_date IS NULL`
	res, err := store.exc.ExecContext(ctx, sqlStatement, id)
	if err != nil {
		return fmt.Errorf("deleting rental from db: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting rental from db: %w", err)
	}
	if affected == 0 {
		if _, err := store.GetRentalByID(ctx, id); err != nil {
			return fmt.Errorf("deleting rental from db: %w", err)
		}
		return fmt.Errorf("deleting rental from db: %w", rental.ErrResponseRentalNotCancellable)
	}
	return nil
}
