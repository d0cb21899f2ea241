package clients

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"costuras/app/models"
	"costuras/app/storage"
)

// ClientsPage lists all clients ordered by name.
func ClientsPage(c *fiber.Ctx, store storage.Store) error {
	clients, err := store.ListClients()
	if err != nil {
		return err
	}
	return c.Render("clients/index", fiber.Map{
		"Title":       "Clientes",
		"CurrentPage": "clientes",
		"Clients":     clients,
		"Notice":      c.Query("notice"),
		"Erro":        c.Query("erro"),
	})
}

// CreateClient registers a new client. Only the name is required; every
// other field is optional.
func CreateClient(c *fiber.Ctx, store storage.Store) error {
	client := &models.Client{
		Name:    strings.TrimSpace(c.FormValue("nome")),
		Phone:   strings.TrimSpace(c.FormValue("telefone")),
		Email:   strings.TrimSpace(c.FormValue("email")),
		Address: strings.TrimSpace(c.FormValue("endereco")),
	}

	if client.Name == "" {
		return redirectErro(c, "/clientes", "Nome do cliente é obrigatório!")
	}

	if _, err := store.CreateClient(client); err != nil {
		return err
	}
	return redirectNotice(c, "/clientes", "Cliente cadastrado com sucesso!")
}

// ClientDetailPage shows one client and every order placed for them.
func ClientDetailPage(c *fiber.Ctx, store storage.Store) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return redirectErro(c, "/clientes", "Cliente não encontrado!")
	}

	client, err := store.GetClient(id)
	if errors.Is(err, storage.ErrClientNotFound) {
		return redirectErro(c, "/clientes", "Cliente não encontrado!")
	}
	if err != nil {
		return err
	}

	orders, err := store.ListOrdersByClient(id)
	if err != nil {
		return err
	}

	return c.Render("clients/show", fiber.Map{
		"Title":       client.Name,
		"CurrentPage": "clientes",
		"Client":      client,
		"Orders":      orders,
	})
}

func redirectNotice(c *fiber.Ctx, path, msg string) error {
	return c.Redirect(path+"?notice="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func redirectErro(c *fiber.Ctx, path, msg string) error {
	return c.Redirect(path+"?erro="+url.QueryEscape(msg), fiber.StatusSeeOther)
}
