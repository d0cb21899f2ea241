package finance

import (
	"costuras/app/storage"

	"github.com/gofiber/fiber/v2"
)

func SetupFinanceRoutes(app *fiber.App, store storage.Store) {
	app.Get("/financeiro", func(c *fiber.Ctx) error { return FinancePage(c, store) })
	app.Get("/relatorios", func(c *fiber.Ctx) error { return ReportsPage(c, store) })
}
