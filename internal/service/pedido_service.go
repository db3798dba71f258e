package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"comanda_api/internal/model"
	"comanda_api/internal/repository"
)

var (
	ErrPedidoNotFound = errors.New("pedido não encontrado")
	ErrStatusInvalido = errors.New("status inválido")
	ErrNumeroEmUso    = errors.New("número de pedido já registrado")
)

// Fixed demonstration menu for the sample-order generator.
var cardapio = []model.ItemPedido{
	{Nome: "X-Burger", Preco: 18.50},
	{Nome: "Batata Frita", Preco: 12.00},
	{Nome: "Pastel de Queijo", Preco: 8.50},
	{Nome: "Suco de Laranja", Preco: 7.00},
	{Nome: "Refrigerante Lata", Preco: 6.00},
}

// PedidoService defines operations for pedidos, always scoped to the
// authenticated owner.
type PedidoService interface {
	ListPedidos(ctx context.Context, usuarioID int64) ([]model.PedidoResponse, error)
	CreatePedido(ctx context.Context, usuarioID int64, req model.CreatePedidoRequest) (*model.PedidoResponse, error)
	GerarAleatorios(ctx context.Context, usuarioID int64, qtd int) ([]model.PedidoResponse, error)
	UpdateStatus(ctx context.Context, usuarioID, pedidoID int64, status string) (*model.PedidoResponse, error)
	DeletePedido(ctx context.Context, usuarioID, pedidoID int64) error
}

type pedidoService struct {
	repo repository.PedidoRepository
}

// NewPedidoService creates a new PedidoService
func NewPedidoService(repo repository.PedidoRepository) PedidoService {
	return &pedidoService{repo: repo}
}

// ListPedidos returns all pedidos owned by the user, shaped for display
func (s *pedidoService) ListPedidos(ctx context.Context, usuarioID int64) ([]model.PedidoResponse, error) {
	pedidos, err := s.repo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pedidos: %w", err)
	}

	responses := make([]model.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		responses = append(responses, pedidos[i].ToResponse())
	}
	return responses, nil
}

// CreatePedido persists a new pedido with status aberto. The total is
// always recomputed from the items; a total supplied by the caller is
// ignored.
func (s *pedidoService) CreatePedido(ctx context.Context, usuarioID int64, req model.CreatePedidoRequest) (*model.PedidoResponse, error) {
	itens := make([]model.ItemPedido, 0, len(req.Itens))
	for _, item := range req.Itens {
		itens = append(itens, model.ItemPedido{Nome: item.Nome, Quantidade: item.Quantidade, Preco: item.Preco})
	}

	pedido := &model.Pedido{
		Numero:    req.Numero,
		Mesa:      req.Mesa,
		Status:    model.StatusAberto,
		Itens:     itens,
		Total:     model.CalcularTotal(itens),
		UsuarioID: usuarioID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, pedido); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, ErrNumeroEmUso
		}
		return nil, fmt.Errorf("failed to create pedido: %w", err)
	}

	resp := pedido.ToResponse()
	return &resp, nil
}

// GerarAleatorios creates qtd demonstration pedidos with random tables,
// items and 4-digit numbers. A collision on the random numero fails only
// that single pedido; siblings already created are kept and the call
// still succeeds with the created subset.
func (s *pedidoService) GerarAleatorios(ctx context.Context, usuarioID int64, qtd int) ([]model.PedidoResponse, error) {
	criados := make([]model.PedidoResponse, 0, qtd)
	for i := 0; i < qtd; i++ {
		itens := sortearItens()
		pedido := &model.Pedido{
			Numero:    fmt.Sprintf("%04d", 1000+rand.Intn(9000)),
			Mesa:      1 + rand.Intn(10),
			Status:    model.StatusAberto,
			Itens:     itens,
			Total:     model.CalcularTotal(itens),
			UsuarioID: usuarioID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.repo.Create(ctx, pedido); err != nil {
			if errors.Is(err, repository.ErrUniqueViolation) {
				log.Printf("Pedido aleatório %s colidiu com número existente, pulando", pedido.Numero)
				continue
			}
			return nil, fmt.Errorf("failed to create random pedido: %w", err)
		}
		criados = append(criados, pedido.ToResponse())
	}
	return criados, nil
}

// sortearItens draws 1-7 items from the fixed menu with quantities 1-3
func sortearItens() []model.ItemPedido {
	sorteios := 1 + rand.Intn(7)
	itens := make([]model.ItemPedido, 0, sorteios)
	for i := 0; i < sorteios; i++ {
		item := cardapio[rand.Intn(len(cardapio))]
		item.Quantidade = 1 + rand.Intn(3)
		itens = append(itens, item)
	}
	return itens
}

// UpdateStatus sets a new status on an owned pedido. Any of the three
// statuses may transition to any other; the forward cycle is a client
// concern.
func (s *pedidoService) UpdateStatus(ctx context.Context, usuarioID, pedidoID int64, status string) (*model.PedidoResponse, error) {
	if !model.ValidStatus(status) {
		return nil, ErrStatusInvalido
	}

	pedido, err := s.repo.UpdateStatus(ctx, pedidoID, usuarioID, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPedidoNotFound
		}
		return nil, fmt.Errorf("failed to update pedido status: %w", err)
	}

	resp := pedido.ToResponse()
	return &resp, nil
}

// DeletePedido removes an owned pedido permanently
func (s *pedidoService) DeletePedido(ctx context.Context, usuarioID, pedidoID int64) error {
	if err := s.repo.Delete(ctx, pedidoID, usuarioID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPedidoNotFound
		}
		return fmt.Errorf("failed to delete pedido: %w", err)
	}
	return nil
}
