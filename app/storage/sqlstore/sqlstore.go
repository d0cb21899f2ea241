// Package sqlstore is the relational backend. It speaks database/sql and
// supports two drivers: sqlite (modernc.org/sqlite, the default for a
// single-machine install) and postgres (lib/pq). Queries are written with
// $N placeholders and rebound to ? for sqlite.
package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"costuras/app/models"
	"costuras/app/storage"
)

// Store is the relational backend.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the database, applies the schema and returns the Store.
// For sqlite the DSN is a file path; the pool is capped at one connection
// because the driver serializes writers anyway.
func Open(driver, dsn string) (*Store, error) {
	if driver != storage.DriverSQLite && driver != storage.DriverPostgres {
		return nil, storage.ErrDriverUnknown
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if driver == storage.DriverSQLite {
		db.SetMaxOpenConns(1)
		if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	s := &Store{db: db, driver: driver}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying handle for the maintenance commands.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) initSchema() error {
	schema := sqliteSchema
	if s.driver == storage.DriverPostgres {
		schema = postgresSchema
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

var placeholderRe = regexp.MustCompile(`\$\d+`)

// q rebinds $N placeholders to ? for sqlite. Arguments are always passed in
// placeholder order, so positional binding is safe.
func (s *Store) q(query string) string {
	if s.driver == storage.DriverSQLite {
		return placeholderRe.ReplaceAllString(query, "?")
	}
	return query
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// ---- Clients ----

func (s *Store) ListClients() ([]models.Client, error) {
	rows, err := s.db.Query(
		`SELECT id, name, phone, email, address, registered_on FROM clients ORDER BY LOWER(name)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.RegisteredOn); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (s *Store) GetClient(id int64) (*models.Client, error) {
	c := &models.Client{}
	err := s.db.QueryRow(
		s.q(`SELECT id, name, phone, email, address, registered_on FROM clients WHERE id = $1`), id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.RegisteredOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) CreateClient(c *models.Client) (int64, error) {
	if c.RegisteredOn == "" {
		c.RegisteredOn = today()
	}
	err := s.db.QueryRow(
		s.q(`INSERT INTO clients (name, phone, email, address, registered_on)
		     VALUES ($1, $2, $3, $4, $5) RETURNING id`),
		c.Name, c.Phone, c.Email, c.Address, c.RegisteredOn).Scan(&c.ID)
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}

// ---- Orders ----

const orderColumns = `o.id, o.client_id, COALESCE(c.name, ''), o.description, o.service_type,
	o.price, o.order_date, o.delivery_date, o.notes, o.status, o.paid`

func (s *Store) ListOrders() ([]models.Order, error) {
	rows, err := s.db.Query(
		`SELECT ` + orderColumns + `
		 FROM orders o LEFT JOIN clients c ON o.client_id = c.id
		 ORDER BY o.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (s *Store) ListOrdersByClient(clientID int64) ([]models.Order, error) {
	rows, err := s.db.Query(
		s.q(`SELECT `+orderColumns+`
		     FROM orders o LEFT JOIN clients c ON o.client_id = c.id
		     WHERE o.client_id = $1
		     ORDER BY o.id DESC`), clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows *sql.Rows) ([]models.Order, error) {
	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		err := rows.Scan(&o.ID, &o.ClientID, &o.ClientName, &o.Description, &o.ServiceType,
			&o.Price, &o.OrderDate, &o.DeliveryDate, &o.Notes, &o.Status, &o.Paid)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Store) CreateOrder(o *models.Order) (int64, error) {
	client, err := s.GetClient(o.ClientID)
	if err != nil {
		return 0, err
	}
	o.ClientName = client.Name

	if o.OrderDate == "" {
		o.OrderDate = today()
	}
	if o.Status == "" {
		o.Status = models.StatusPending
	}

	err = s.db.QueryRow(
		s.q(`INSERT INTO orders (client_id, description, service_type, price, order_date,
		                         delivery_date, notes, status, paid)
		     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`),
		o.ClientID, o.Description, o.ServiceType, o.Price, o.OrderDate,
		o.DeliveryDate, o.Notes, o.Status, o.Paid).Scan(&o.ID)
	if err != nil {
		return 0, err
	}
	return o.ID, nil
}

func (s *Store) SetOrderStatus(id int64, status string) (bool, error) {
	res, err := s.db.Exec(s.q(`UPDATE orders SET status = $1 WHERE id = $2`), status, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (s *Store) SetOrderPaid(id int64, paid bool) (bool, error) {
	res, err := s.db.Exec(s.q(`UPDATE orders SET paid = $1 WHERE id = $2`), paid, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ---- Expenses ----

func (s *Store) ListExpenses() ([]models.Expense, error) {
	rows, err := s.db.Query(
		`SELECT id, description, amount, category, date FROM expenses ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.Date); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *Store) CreateExpense(e *models.Expense) (int64, error) {
	err := s.db.QueryRow(
		s.q(`INSERT INTO expenses (description, amount, category, date)
		     VALUES ($1, $2, $3, $4) RETURNING id`),
		e.Description, e.Amount, e.Category, e.Date).Scan(&e.ID)
	if err != nil {
		return 0, err
	}
	return e.ID, nil
}

func (s *Store) DeleteExpense(id int64) error {
	_, err := s.db.Exec(s.q(`DELETE FROM expenses WHERE id = $1`), id)
	return err
}
