package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"costuras/app/models"
	"costuras/app/storage"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func createClient(t *testing.T, s *Store, name string) int64 {
	t.Helper()
	id, err := s.CreateClient(&models.Client{Name: name})
	require.NoError(t, err)
	return id
}

func TestEmptyCollections(t *testing.T) {
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
	assert.NotEmpty(t, in.RegisteredOn, "registration date defaults to today")

	clients, err := s.ListClients()
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, *in, clients[0])
}

func TestClientIDsUnique(t *testing.T) {
	s := newStore(t)

	seen := map[int64]bool{}
	for _, name := range []string{"Ana", "Bia", "Clara", "Duda"} {
		id := createClient(t, s, name)
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
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
	assert.Equal(t, "Marta", clients[1].Name)
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

	orders, err := s.ListOrders()
	require.NoError(t, err)
	assert.Empty(t, orders, "rejected order must not be persisted")
}

func TestCreateOrderDefaults(t *testing.T) {
	s := newStore(t)
	clientID := createClient(t, s, "Maria")

	o := &models.Order{
		ClientID:    clientID,
		Description: "Vestido sob medida",
		ServiceType: "costura",
		Price:       250,
	}
	_, err := s.CreateOrder(o)
	require.NoError(t, err)

	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	got := orders[0]
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, "Maria", got.ClientName)
	assert.NotEmpty(t, got.OrderDate)
	assert.False(t, got.Paid)
}

func TestListOrdersByClient(t *testing.T) {
	s := newStore(t)
	maria := createClient(t, s, "Maria")
	joana := createClient(t, s, "Joana")

	for i, clientID := range []int64{maria, joana, maria} {
		_, err := s.CreateOrder(&models.Order{
			ClientID:    clientID,
			Description: "Pedido",
			ServiceType: "costura",
			Price:       float64(10 * (i + 1)),
		})
		require.NoError(t, err)
	}

	orders, err := s.ListOrdersByClient(maria)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, maria, o.ClientID)
	}
}

func TestSetOrderStatus(t *testing.T) {
	s := newStore(t)
	clientID := createClient(t, s, "Maria")
	id, err := s.CreateOrder(&models.Order{
		ClientID: clientID, Description: "Saia", ServiceType: "costura", Price: 80,
	})
	require.NoError(t, err)

	ok, err := s.SetOrderStatus(id, models.StatusDelivered)
	require.NoError(t, err)
	assert.True(t, ok)

	orders, err := s.ListOrders()
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, orders[0].Status)

	// Free text is accepted as-is.
	ok, err = s.SetOrderStatus(id, "esperando tecido")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSetOrderStatusAbsent(t *testing.T) {
	s := newStore(t)

	ok, err := s.SetOrderStatus(12345, models.StatusCompleted)
	require.NoError(t, err, "absent id is a no-op, not an error")
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
	assert.Equal(t, "Tecido", expenses[0].Description, "newest date first")
	assert.Equal(t, *older, expenses[1])
}

func TestDeleteExpense(t *testing.T) {
	s := newStore(t)
	id, err := s.CreateExpense(&models.Expense{
		Description: "Conta de luz", Amount: 150, Category: models.CategoryBill, Date: "2025-02-01",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteExpense(id))

	expenses, err := s.ListExpenses()
	require.NoError(t, err)
	assert.Empty(t, expenses)
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
	assert.Len(t, expenses, 1, "collection size unchanged")
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	clientID := createClient(t, s, "Maria")
	require.NoError(t, s.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	client, err := reopened.GetClient(clientID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", client.Name)
}

func TestCorruptCollectionFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, clientsFile), []byte("{not json"), 0o644))

	_, err = s.ListClients()
	assert.Error(t, err, "corrupt data is a hard error, not an empty collection")
}
