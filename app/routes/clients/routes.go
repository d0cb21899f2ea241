package clients

import (
	"costuras/app/storage"

	"github.com/gofiber/fiber/v2"
)

func SetupClientsRoutes(app *fiber.App, store storage.Store) {
	app.Get("/clientes", func(c *fiber.Ctx) error { return ClientsPage(c, store) })
	app.Post("/clientes/novo", func(c *fiber.Ctx) error { return CreateClient(c, store) })
	app.Get("/clientes/:id", func(c *fiber.Ctx) error { return ClientDetailPage(c, store) })
}
