// Package jsonstore persists each collection as a single flat JSON file:
// clients.json, orders.json and expenses.json under a data directory. Every
// mutation re-reads the file, applies the change and rewrites the whole
// array. A store-wide mutex serializes read-modify-write cycles, so
// concurrent requests against one process cannot lose updates; the files are
// still not safe to share between processes.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"costuras/app/models"
	"costuras/app/storage"
)

const (
	clientsFile  = "clients.json"
	ordersFile   = "orders.json"
	expensesFile = "expenses.json"
)

// Store is the flat-file backend.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open prepares a Store rooted at dir, creating the directory if needed.
// Collection files are created lazily on first write.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Close is a no-op; the store holds no open handles between calls.
func (s *Store) Close() error { return nil }

// readCollection decodes the full collection file. A missing file means the
// collection has no records yet and yields an empty slice; a file that exists
// but cannot be decoded is a hard error.
func readCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

// writeCollection rewrites the full collection file atomically: the new
// content goes to a uniquely named temp file first, then replaces the old
// file by rename, so a crash mid-write never leaves a truncated collection.
func writeCollection[T any](path string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(tmp), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// nextID assigns creation-time ids the way the original flat-file system
// did (unix seconds), bumped past the current maximum so two records created
// within the same second still get distinct ids.
func nextID(maxExisting int64) int64 {
	id := time.Now().Unix()
	if id <= maxExisting {
		id = maxExisting + 1
	}
	return id
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// ---- Clients ----

func (s *Store) ListClients() ([]models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clients, err := readCollection[models.Client](filepath.Join(s.dir, clientsFile))
	if err != nil {
		return nil, err
	}
	sort.Slice(clients, func(i, j int) bool {
		return strings.ToLower(clients[i].Name) < strings.ToLower(clients[j].Name)
	})
	return clients, nil
}

func (s *Store) GetClient(id int64) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getClientLocked(id)
}

func (s *Store) getClientLocked(id int64) (*models.Client, error) {
	clients, err := readCollection[models.Client](filepath.Join(s.dir, clientsFile))
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, storage.ErrClientNotFound
}

func (s *Store) CreateClient(c *models.Client) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, clientsFile)
	clients, err := readCollection[models.Client](path)
	if err != nil {
		return 0, err
	}

	var maxID int64
	for _, existing := range clients {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	c.ID = nextID(maxID)
	if c.RegisteredOn == "" {
		c.RegisteredOn = today()
	}

	clients = append(clients, *c)
	if err := writeCollection(path, clients); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// ---- Orders ----

func (s *Store) ListOrders() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders, err := readCollection[models.Order](filepath.Join(s.dir, ordersFile))
	if err != nil {
		return nil, err
	}
	// Newest first; ids are assigned in creation order.
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}

func (s *Store) ListOrdersByClient(clientID int64) ([]models.Order, error) {
	orders, err := s.ListOrders()
	if err != nil {
		return nil, err
	}
	filtered := []models.Order{}
	for _, o := range orders {
		if o.ClientID == clientID {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *Store) CreateOrder(o *models.Order) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := s.getClientLocked(o.ClientID)
	if err != nil {
		return 0, err
	}

	path := filepath.Join(s.dir, ordersFile)
	orders, err := readCollection[models.Order](path)
	if err != nil {
		return 0, err
	}

	var maxID int64
	for _, existing := range orders {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	o.ID = nextID(maxID)
	o.ClientName = client.Name
	if o.OrderDate == "" {
		o.OrderDate = today()
	}
	if o.Status == "" {
		o.Status = models.StatusPending
	}

	orders = append(orders, *o)
	if err := writeCollection(path, orders); err != nil {
		return 0, err
	}
	return o.ID, nil
}

func (s *Store) SetOrderStatus(id int64, status string) (bool, error) {
	return s.updateOrder(id, func(o *models.Order) { o.Status = status })
}

func (s *Store) SetOrderPaid(id int64, paid bool) (bool, error) {
	return s.updateOrder(id, func(o *models.Order) { o.Paid = paid })
}

func (s *Store) updateOrder(id int64, mutate func(*models.Order)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, ordersFile)
	orders, err := readCollection[models.Order](path)
	if err != nil {
		return false, err
	}
	for i := range orders {
		if orders[i].ID == id {
			mutate(&orders[i])
			if err := writeCollection(path, orders); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// ---- Expenses ----

func (s *Store) ListExpenses() ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expenses, err := readCollection[models.Expense](filepath.Join(s.dir, expensesFile))
	if err != nil {
		return nil, err
	}
	sort.Slice(expenses, func(i, j int) bool {
		if expenses[i].Date != expenses[j].Date {
			return expenses[i].Date > expenses[j].Date
		}
		return expenses[i].ID > expenses[j].ID
	})
	return expenses, nil
}

func (s *Store) CreateExpense(e *models.Expense) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, expensesFile)
	expenses, err := readCollection[models.Expense](path)
	if err != nil {
		return 0, err
	}

	var maxID int64
	for _, existing := range expenses {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	e.ID = nextID(maxID)

	expenses = append(expenses, *e)
	if err := writeCollection(path, expenses); err != nil {
		return 0, err
	}
	return e.ID, nil
}

func (s *Store) DeleteExpense(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, expensesFile)
	expenses, err := readCollection[models.Expense](path)
	if err != nil {
		return err
	}
	kept := expenses[:0]
	for _, e := range expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(expenses) {
		// Absent id: nothing to delete, nothing to rewrite.
		return nil
	}
	return writeCollection(path, kept)
}
