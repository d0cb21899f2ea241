package sqlstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"costuras/app/models"
	"costuras/app/storage"
)

// Tests run against the sqlite driver; the SQL is shared with postgres
// modulo placeholder style and schema dialect.
func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(storage.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func createClient(t *testing.T, s *Store, name string) int64 {
	t.Helper()
	id, err := s.CreateClient(&models.Client{Name: name})
	require.NoError(t, err)
	return id
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("mysql", "whatever")
	assert.ErrorIs(t, err, storage.ErrDriverUnknown)
}

func TestEmptyTables(t *testing.T) {
	s := newStore(t)

	clients, err := s.ListClients()
	require.NoError(t, err)
	assert.Empty(t, clients)

	orders, err := s.ListOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)

	expenses, err := s.ListExpenses()
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestClientRoundTrip(t *testing.T) {
	s := newStore(t)

	in := &models.Client{
		Name:    "Maria Silva",
		Phone:   "11 99999-0000",
		Email:   "maria@example.com",
		Address: "Rua das Flores, 10",
	}
	id, err := s.CreateClient(in)
	require.NoError(t, err)
	assert.NotZero(t, id)

	got, err := s.GetClient(id)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestGetClientAbsent(t *testing.T) {
	s := newStore(t)
	_, err := s.GetClient(999)
	assert.ErrorIs(t, err, storage.ErrClientNotFound)
}

func TestClientsOrderedByName(t *testing.T) {
	s := newStore(t)
	createClient(t, s, "Zilda")
	createClient(t, s, "ana")
	createClient(t, s, "Marta")

	clients, err := s.ListClients()
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "ana", clients[0].Name)
	assert.Equal(t, "Zilda", clients[2].Name)
}

func TestCreateOrderUnknownClient(t *testing.T) {
	s := newStore(t)

	_, err := s.CreateOrder(&models.Order{
		ClientID:    999,
		Description: "Bainha de calça",
		ServiceType: "ajuste",
		Price:       30,
	})
	assert.ErrorIs(t, err, storage.ErrClientNotFound)
}

func TestOrderRoundTrip(t *testing.T) {
	s := newStore(t)
	clientID := createClient(t, s, "Maria")

	in := &models.Order{
		ClientID:     clientID,
		Description:  "Vestido sob medida",
		ServiceType:  "costura",
		Price:        250.5,
		DeliveryDate: "2025-04-01",
		Notes:        "Tecido da cliente",
	}
	id, err := s.CreateOrder(in)
	require.NoError(t, err)

	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	got := orders[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Maria", got.ClientName)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, in.Price, got.Price)
	assert.Equal(t, in.DeliveryDate, got.DeliveryDate)
	assert.False(t, got.Paid)
}

func TestListOrdersNewestFirst(t *testing.T) {
	s := newStore(t)
	clientID := createClient(t, s, "Maria")

	for _, desc := range []string{"primeiro", "segundo", "terceiro"} {
		_, err := s.CreateOrder(&models.Order{
			ClientID: clientID, Description: desc, ServiceType: "costura", Price: 10,
		})
		require.NoError(t, err)
	}

	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "terceiro", orders[0].Description)
	assert.Equal(t, "primeiro", orders[2].Description)
}

func TestListOrdersByClient(t *testing.T) {
	s := newStore(t)
	maria := createClient(t, s, "Maria")
	joana := createClient(t, s, "Joana")

	for _, clientID := range []int64{maria, joana, maria} {
		_, err := s.CreateOrder(&models.Order{
			ClientID: clientID, Description: "Pedido", ServiceType: "costura", Price: 10,
		})
		require.NoError(t, err)
	}

	orders, err := s.ListOrdersByClient(maria)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestSetOrderStatusAbsent(t *testing.T) {
	s := newStore(t)

	ok, err := s.SetOrderStatus(12345, models.StatusCompleted)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetOrderPaidIdempotent(t *testing.T) {
	s := newStore(t)
	clientID := createClient(t, s, "Maria")
	id, err := s.CreateOrder(&models.Order{
		ClientID: clientID, Description: "Blusa", ServiceType: "costura", Price: 60,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		ok, err := s.SetOrderPaid(id, true)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	orders, err := s.ListOrders()
	require.NoError(t, err)
	assert.True(t, orders[0].Paid)
}

func TestExpenseRoundTripAndOrdering(t *testing.T) {
	s := newStore(t)

	older := &models.Expense{Description: "Linhas", Amount: 12.5, Category: models.CategoryMaterial, Date: "2025-01-10"}
	newer := &models.Expense{Description: "Tecido", Amount: 80, Category: models.CategoryMaterial, Date: "2025-03-02"}
	_, err := s.CreateExpense(older)
	require.NoError(t, err)
	_, err = s.CreateExpense(newer)
	require.NoError(t, err)

	expenses, err := s.ListExpenses()
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Tecido", expenses[0].Description)
	assert.Equal(t, *older, expenses[1])
}

func TestDeleteExpenseAbsentIsNoop(t *testing.T) {
	s := newStore(t)
	_, err := s.CreateExpense(&models.Expense{
		Description: "Agulhas", Amount: 9.9, Category: models.CategoryMaterial, Date: "2025-02-01",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteExpense(424242))

	expenses, err := s.ListExpenses()
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(storage.DriverSQLite, dsn)
	require.NoError(t, err)
	clientID := createClient(t, s, "Maria")
	require.NoError(t, s.Close())

	reopened, err := Open(storage.DriverSQLite, dsn)
	require.NoError(t, err)
	defer reopened.Close()

	client, err := reopened.GetClient(clientID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", client.Name)
}
