package orders

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"costuras/app/models"
	"costuras/app/storage"
)

// OrdersPage lists every order, newest first.
func OrdersPage(c *fiber.Ctx, store storage.Store) error {
	orders, err := store.ListOrders()
	if err != nil {
		return err
	}
	return c.Render("orders/index", fiber.Map{
		"Title":       "Pedidos",
		"CurrentPage": "pedidos",
		"Orders":      orders,
		"Statuses":    []string{models.StatusPending, models.StatusInProgress, models.StatusCompleted, models.StatusDelivered},
		"Notice":      c.Query("notice"),
		"Erro":        c.Query("erro"),
	})
}

// NewOrderPage renders the creation form with the client list for selection.
func NewOrderPage(c *fiber.Ctx, store storage.Store) error {
	clients, err := store.ListClients()
	if err != nil {
		return err
	}
	return c.Render("orders/new", fiber.Map{
		"Title":       "Novo Pedido",
		"CurrentPage": "pedidos",
		"Clients":     clients,
		"Erro":        c.Query("erro"),
	})
}

// CreateOrder validates and stores a new order. The referenced client must
// exist: an unresolvable client id is rejected with a visible notice, never
// silently dropped, regardless of backend.
func CreateOrder(c *fiber.Ctx, store storage.Store) error {
	clientID, _ := strconv.ParseInt(c.FormValue("cliente_id"), 10, 64)
	price, _ := strconv.ParseFloat(c.FormValue("preco"), 64)

	order := &models.Order{
		ClientID:     clientID,
		Description:  strings.TrimSpace(c.FormValue("descricao")),
		ServiceType:  strings.TrimSpace(c.FormValue("tipo_servico")),
		Price:        price,
		DeliveryDate: strings.TrimSpace(c.FormValue("data_entrega")),
		Notes:        strings.TrimSpace(c.FormValue("observacoes")),
	}

	if clientID == 0 || order.Description == "" || order.ServiceType == "" || order.Price <= 0 {
		return redirectErro(c, "/pedidos/novo", "Preencha todos os campos obrigatórios!")
	}

	_, err := store.CreateOrder(order)
	if errors.Is(err, storage.ErrClientNotFound) {
		return redirectErro(c, "/pedidos/novo", "Cliente não encontrado!")
	}
	if err != nil {
		return err
	}
	return redirectNotice(c, "/pedidos", "Pedido criado com sucesso!")
}

// SetOrderStatus records a caller-supplied status. The value is free text;
// the recognized set only drives rendering.
func SetOrderStatus(c *fiber.Ctx, store storage.Store) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return redirectErro(c, "/pedidos", "Pedido não encontrado!")
	}
	status := c.FormValue("novo_status")

	ok, err := store.SetOrderStatus(id, status)
	if err != nil {
		return err
	}
	if !ok {
		return redirectErro(c, "/pedidos", "Pedido não encontrado!")
	}
	return redirectNotice(c, "/pedidos", fmt.Sprintf("Status atualizado para: %s", status))
}

// SetOrderPayment flips the paid flag. Setting an already-set flag again is
// a harmless no-op.
func SetOrderPayment(c *fiber.Ctx, store storage.Store) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return redirectErro(c, "/pedidos", "Pedido não encontrado!")
	}
	paid := c.FormValue("pago") == "true"

	ok, err := store.SetOrderPaid(id, paid)
	if err != nil {
		return err
	}
	if !ok {
		return redirectErro(c, "/pedidos", "Pedido não encontrado!")
	}
	if paid {
		return redirectNotice(c, "/pedidos", "Pagamento marcado como pago")
	}
	return redirectNotice(c, "/pedidos", "Pagamento marcado como pendente")
}

func redirectNotice(c *fiber.Ctx, path, msg string) error {
	return c.Redirect(path+"?notice="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func redirectErro(c *fiber.Ctx, path, msg string) error {
	return c.Redirect(path+"?erro="+url.QueryEscape(msg), fiber.StatusSeeOther)
}
