package main

import (
	"fmt"
	"log"

	"costuras/app/config"
	"costuras/app/format"
	"costuras/app/routes/clients"
	"costuras/app/routes/dashboard"
	"costuras/app/routes/expenses"
	"costuras/app/routes/finance"
	"costuras/app/routes/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler renders storage and routing failures as an error page.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Página não encontrada",
			"CurrentPage":  "",
			"ErrorCode":    "404",
			"ErrorMessage": "A página solicitada não existe.",
		})
	}
	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Erro",
		"CurrentPage":  "",
		"ErrorCode":    fmt.Sprintf("%d", code),
		"ErrorMessage": err.Error(),
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	store, err := config.OpenStore(cfg.Storage)
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}
	defer store.Close()

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("currency", format.Currency)
	engine.AddFunc("date", format.Date)
	engine.AddFunc("statusEmoji", format.StatusEmoji)

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Routes
	dashboard.SetupDashboardRoutes(app, store)
	clients.SetupClientsRoutes(app, store)
	orders.SetupOrdersRoutes(app, store)
	expenses.SetupExpensesRoutes(app, store)
	finance.SetupFinanceRoutes(app, store)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Costuras listening on %s (backend: %s)", addr, cfg.Storage.Backend)
	log.Fatal(app.Listen(addr))
}
