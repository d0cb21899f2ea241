package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"costuras/app/stats"
	"costuras/app/storage"
)

// recentOrderCount caps the order list shown on the landing page.
const recentOrderCount = 5

// DashboardPage shows the aggregate figures and the most recent orders.
func DashboardPage(c *fiber.Ctx, store storage.Store) error {
	clients, err := store.ListClients()
	if err != nil {
		return err
	}
	orders, err := store.ListOrders()
	if err != nil {
		return err
	}
	expenses, err := store.ListExpenses()
	if err != nil {
		return err
	}

	recent := orders
	if len(recent) > recentOrderCount {
		recent = recent[:recentOrderCount]
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":        "Painel",
		"CurrentPage":  "dashboard",
		"Stats":        stats.Compute(clients, orders, expenses),
		"RecentOrders": recent,
	})
}
