package model

import (
	"fmt"
	"time"
)

const (
	StatusAberto    = "aberto"
	StatusPagamento = "pagamento"
	StatusFechado   = "fechado"
)

// ValidStatus reports whether s is one of the three order statuses.
func ValidStatus(s string) bool {
	return s == StatusAberto || s == StatusPagamento || s == StatusFechado
}

// ItemPedido is a line item embedded in a pedido. It has no identity of
// its own and only exists inside the itens list of its pedido.
type ItemPedido struct {
	Nome       string  `json:"nome"`
	Quantidade int     `json:"quantidade"`
	Preco      float64 `json:"preco"`
}

// Pedido represents an order placed at a table
type Pedido struct {
	ID        int64        `json:"id"`
	Numero    string       `json:"numero"` // display-only, unique across the store
	Mesa      int          `json:"mesa"`
	Status    string       `json:"status"`
	Itens     []ItemPedido `json:"itens"`
	Total     float64      `json:"total"`
	UsuarioID int64        `json:"usuario_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// CalcularTotal computes the order total from its items. Every
// items-touching write must go through this; caller-supplied totals are
// never trusted.
func CalcularTotal(itens []ItemPedido) float64 {
	var total float64
	for _, item := range itens {
		total += float64(item.Quantidade) * item.Preco
	}
	return total
}

// CreateItemRequest is a line item inside CreatePedidoRequest
type CreateItemRequest struct {
	Nome       string  `json:"nome" binding:"required"`
	Quantidade int     `json:"quantidade" binding:"required,gt=0"`
	Preco      float64 `json:"preco" binding:"gte=0"`
}

// CreatePedidoRequest is used for creating a new pedido
type CreatePedidoRequest struct {
	Numero string              `json:"numero" binding:"required"`
	Mesa   int                 `json:"mesa" binding:"required,gte=1"`
	Itens  []CreateItemRequest `json:"itens" binding:"required,min=1,dive"`
}

// UpdateStatusRequest carries the new status for a pedido
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ItemResumo is the display shape of an item: name and quantity only.
type ItemResumo struct {
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

// PedidoResponse is the display shape consumed by the dashboard.
type PedidoResponse struct {
	ID         int64        `json:"id"`
	Title      string       `json:"title"`
	Mesa       string       `json:"mesa"`
	Itens      []ItemResumo `json:"itens"`
	ValorTotal float64      `json:"valor_total"`
	Status     string       `json:"status"`
}

// ToResponse shapes a pedido for display: formatted order number and a
// zero-padded table label, items reduced to name and quantity.
func (p *Pedido) ToResponse() PedidoResponse {
	itens := make([]ItemResumo, 0, len(p.Itens))
	for _, item := range p.Itens {
		itens = append(itens, ItemResumo{Nome: item.Nome, Quantidade: item.Quantidade})
	}
	return PedidoResponse{
		ID:         p.ID,
		Title:      fmt.Sprintf("Pedido #%s", p.Numero),
		Mesa:       fmt.Sprintf("Mesa %02d", p.Mesa),
		Itens:      itens,
		ValorTotal: p.Total,
		Status:     p.Status,
	}
}
