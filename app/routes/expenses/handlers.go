package expenses

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"costuras/app/models"
	"costuras/app/storage"
)

// ExpensesPage lists expenses by date, newest first, with the running total.
func ExpensesPage(c *fiber.Ctx, store storage.Store) error {
	expenses, err := store.ListExpenses()
	if err != nil {
		return err
	}
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return c.Render("expenses/index", fiber.Map{
		"Title":       "Despesas",
		"CurrentPage": "despesas",
		"Expenses":    expenses,
		"Total":       total,
		"Categories":  []string{models.CategoryMaterial, models.CategoryBill, models.CategoryTransport, models.CategoryOther},
		"Notice":      c.Query("notice"),
		"Erro":        c.Query("erro"),
	})
}

// CreateExpense validates and stores a new expense. Description, category
// and date are required; the amount must be strictly positive.
func CreateExpense(c *fiber.Ctx, store storage.Store) error {
	amount, _ := strconv.ParseFloat(c.FormValue("valor"), 64)

	expense := &models.Expense{
		Description: strings.TrimSpace(c.FormValue("descricao")),
		Amount:      amount,
		Category:    strings.TrimSpace(c.FormValue("categoria")),
		Date:        strings.TrimSpace(c.FormValue("data")),
	}

	if expense.Description == "" || expense.Category == "" || expense.Date == "" || expense.Amount <= 0 {
		return redirectErro(c, "/despesas", "Preencha todos os campos obrigatórios!")
	}

	if _, err := store.CreateExpense(expense); err != nil {
		return err
	}
	return redirectNotice(c, "/despesas", "Despesa registrada com sucesso!")
}

// DeleteExpense removes an expense by id. Deleting an id that does not
// exist is a no-op and still reports success, matching the storage contract.
func DeleteExpense(c *fiber.Ctx, store storage.Store) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return redirectErro(c, "/despesas", "Despesa não encontrada!")
	}
	if err := store.DeleteExpense(id); err != nil {
		return err
	}
	return redirectNotice(c, "/despesas", "Despesa excluída com sucesso!")
}

func redirectNotice(c *fiber.Ctx, path, msg string) error {
	return c.Redirect(path+"?notice="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func redirectErro(c *fiber.Ctx, path, msg string) error {
	return c.Redirect(path+"?erro="+url.QueryEscape(msg), fiber.StatusSeeOther)
}
