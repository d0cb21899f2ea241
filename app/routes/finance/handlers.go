package finance

import (
	"github.com/gofiber/fiber/v2"

	"costuras/app/models"
	"costuras/app/stats"
	"costuras/app/storage"
)

// FinancePage shows the financial summary: revenue, expenses, profit and
// margin over the current state of the books.
func FinancePage(c *fiber.Ctx, store storage.Store) error {
	clients, orders, expenses, err := loadAll(store)
	if err != nil {
		return err
	}
	return c.Render("finance/index", fiber.Map{
		"Title":       "Financeiro",
		"CurrentPage": "financeiro",
		"Stats":       stats.Compute(clients, orders, expenses),
	})
}

// ReportsPage breaks the figures down: orders per status and expenses per
// category, alongside the overall summary.
func ReportsPage(c *fiber.Ctx, store storage.Store) error {
	clients, orders, expenses, err := loadAll(store)
	if err != nil {
		return err
	}
	return c.Render("reports/index", fiber.Map{
		"Title":         "Relatórios",
		"CurrentPage":   "relatorios",
		"Stats":         stats.Compute(clients, orders, expenses),
		"ByStatus":      stats.CountByStatus(orders),
		"ByCategory":    stats.TotalByCategory(expenses),
		"TotalClients":  len(clients),
		"TotalOrders":   len(orders),
		"TotalExpenses": len(expenses),
	})
}

func loadAll(store storage.Store) ([]models.Client, []models.Order, []models.Expense, error) {
	clients, err := store.ListClients()
	if err != nil {
		return nil, nil, nil, err
	}
	orders, err := store.ListOrders()
	if err != nil {
		return nil, nil, nil, err
	}
	expenses, err := store.ListExpenses()
	if err != nil {
		return nil, nil, nil, err
	}
	return clients, orders, expenses, nil
}
