package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"comanda_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// PedidoRepository defines operations for pedido data. Every query is
// scoped by usuario_id; a pedido is never visible outside its owner.
type PedidoRepository interface {
	Create(ctx context.Context, pedido *model.Pedido) error
	FindByUsuario(ctx context.Context, usuarioID int64) ([]model.Pedido, error)
	UpdateStatus(ctx context.Context, id, usuarioID int64, status string) (*model.Pedido, error)
	Delete(ctx context.Context, id, usuarioID int64) error
}

type pedidoRepository struct {
	db DB
}

// NewPedidoRepository creates a new PedidoRepository
func NewPedidoRepository(db DB) PedidoRepository {
	return &pedidoRepository{db: db}
}

// Create inserts a new pedido. The itens list is stored as a JSON document
// inside the row, so each pedido updates atomically.
func (r *pedidoRepository) Create(ctx context.Context, p *model.Pedido) error {
	itensJSON, err := json.Marshal(p.Itens)
	if err != nil {
		return fmt.Errorf("failed to marshal itens: %w", err)
	}

	sql := `INSERT INTO pedidos (numero, mesa, status, itens, total, usuario_id, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at`
	err = r.db.QueryRow(ctx, sql, p.Numero, p.Mesa, p.Status, itensJSON, p.Total, p.UsuarioID, p.CreatedAt, p.UpdatedAt).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUniqueViolation
		}
		return fmt.Errorf("failed to create pedido: %w", err)
	}
	return nil
}

// FindByUsuario retrieves all pedidos owned by the given user
func (r *pedidoRepository) FindByUsuario(ctx context.Context, usuarioID int64) ([]model.Pedido, error) {
	sql := `SELECT id, numero, mesa, status, itens, total, usuario_id, created_at, updated_at
            FROM pedidos WHERE usuario_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, sql, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pedidos by user: %w", err)
	}
	defer rows.Close()

	var pedidos []model.Pedido
	for rows.Next() {
		p, err := scanPedido(rows)
		if err != nil {
			return nil, err
		}
		pedidos = append(pedidos, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pedido rows: %w", err)
	}
	return pedidos, nil
}

// UpdateStatus sets the status of an owned pedido and returns the updated
// row. The itens/total columns are untouched; status changes never alter
// the total.
func (r *pedidoRepository) UpdateStatus(ctx context.Context, id, usuarioID int64, status string) (*model.Pedido, error) {
	sql := `UPDATE pedidos SET status = $1, updated_at = NOW()
            WHERE id = $2 AND usuario_id = $3
            RETURNING id, numero, mesa, status, itens, total, usuario_id, created_at, updated_at`
	row := r.db.QueryRow(ctx, sql, status, id, usuarioID)
	p, err := scanPedido(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update pedido status: %w", err)
	}
	return p, nil
}

// Delete removes an owned pedido permanently
func (r *pedidoRepository) Delete(ctx context.Context, id, usuarioID int64) error {
	sql := `DELETE FROM pedidos WHERE id = $1 AND usuario_id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, id, usuarioID)
	if err != nil {
		return fmt.Errorf("failed to delete pedido: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanPedido reads one pedido row, decoding the itens JSON document.
func scanPedido(row pgx.Row) (*model.Pedido, error) {
	p := &model.Pedido{}
	var itensJSON []byte
	err := row.Scan(&p.ID, &p.Numero, &p.Mesa, &p.Status, &itensJSON, &p.Total, &p.UsuarioID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan pedido row: %w", err)
	}
	if len(itensJSON) > 0 {
		if err := json.Unmarshal(itensJSON, &p.Itens); err != nil {
			return nil, fmt.Errorf("failed to unmarshal itens: %w", err)
		}
	}
	return p, nil
}
