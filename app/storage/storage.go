// Package storage defines the backend-agnostic persistence contract.
// Two implementations exist: jsonstore (flat JSON files, whole-collection
// rewrite) and sqlstore (database/sql, per-row statements). Handlers and the
// statistics aggregator only ever see the Store interface; the variant is
// chosen by configuration.
package storage

import (
	"errors"

	"costuras/app/models"
)

// Store is the persistence contract shared by both backends.
//
// Reads of an empty or not-yet-created collection return an empty slice,
// never an error. Updates and deletes targeting an absent id are no-ops:
// the boolean result reports whether a record was touched.
type Store interface {
	// Clients. Append-only: no update or delete.
	ListClients() ([]models.Client, error)
	GetClient(id int64) (*models.Client, error)
	CreateClient(c *models.Client) (int64, error)

	// Orders. Mutable only via the status and paid flags.
	ListOrders() ([]models.Order, error)
	ListOrdersByClient(clientID int64) ([]models.Order, error)
	CreateOrder(o *models.Order) (int64, error)
	SetOrderStatus(id int64, status string) (bool, error)
	SetOrderPaid(id int64, paid bool) (bool, error)

	// Expenses. Deletable; never updated in place.
	ListExpenses() ([]models.Expense, error)
	CreateExpense(e *models.Expense) (int64, error)
	DeleteExpense(id int64) error

	Close() error
}

// Supported backend names.
const (
	BackendJSON = "json"
	BackendSQL  = "sql"
)

// Supported SQL drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Storage errors.
var (
	ErrBackendEmpty   = errors.New("storage backend must not be empty")
	ErrBackendUnknown = errors.New("unknown storage backend")
	ErrDriverUnknown  = errors.New("unknown sql driver")
	ErrClientNotFound = errors.New("client not found")
)

// Config selects and parameterizes a backend.
type Config struct {
	Backend string // "json" or "sql"
	DataDir string // json: directory holding the collection files
	Driver  string // sql: "sqlite" or "postgres"
	DSN     string // sql: file path (sqlite) or connection string (postgres)
}

// Validate checks that the Config names a known backend and, for the SQL
// backend, a known driver.
func (c Config) Validate() error {
	switch c.Backend {
	case "":
		return ErrBackendEmpty
	case BackendJSON:
		return nil
	case BackendSQL:
		if c.Driver != DriverSQLite && c.Driver != DriverPostgres {
			return ErrDriverUnknown
		}
		return nil
	default:
		return ErrBackendUnknown
	}
}
