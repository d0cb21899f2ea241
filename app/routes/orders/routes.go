package orders

import (
	"costuras/app/storage"

	"github.com/gofiber/fiber/v2"
)

func SetupOrdersRoutes(app *fiber.App, store storage.Store) {
	app.Get("/pedidos", func(c *fiber.Ctx) error { return OrdersPage(c, store) })
	app.Get("/pedidos/novo", func(c *fiber.Ctx) error { return NewOrderPage(c, store) })
	app.Post("/pedidos/novo", func(c *fiber.Ctx) error { return CreateOrder(c, store) })
	app.Post("/pedidos/:id/status", func(c *fiber.Ctx) error { return SetOrderStatus(c, store) })
	app.Post("/pedidos/:id/pagamento", func(c *fiber.Ctx) error { return SetOrderPayment(c, store) })
}
