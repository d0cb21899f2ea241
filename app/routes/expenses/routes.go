package expenses

import (
	"costuras/app/storage"

	"github.com/gofiber/fiber/v2"
)

func SetupExpensesRoutes(app *fiber.App, store storage.Store) {
	app.Get("/despesas", func(c *fiber.Ctx) error { return ExpensesPage(c, store) })
	app.Post("/despesas/nova", func(c *fiber.Ctx) error { return CreateExpense(c, store) })
	app.Post("/despesas/:id/excluir", func(c *fiber.Ctx) error { return DeleteExpense(c, store) })
}
