package dashboard

import (
	"costuras/app/storage"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, store storage.Store) {
	app.Get("/", func(c *fiber.Ctx) error { return DashboardPage(c, store) })
}
