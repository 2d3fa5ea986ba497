package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/cafe-orders/internal/storage"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetView(ctx context.Context, id string) (*View, error)
	List(ctx context.Context, f Filter) ([]View, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Create inserts the order and its lines in one transaction.
func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.QueryRow(ctx, `
    INSERT INTO orders (id, customer_id, total_amount, status, created_at, updated_at)
    VALUES ($1,$2,$3::numeric,$4,NOW(),NOW())
    RETURNING created_at, updated_at
  `, o.ID, o.CustomerID, o.TotalAmount.String(), string(o.Status)).Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i, it := range o.Items {
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (order_id, line_no, menu_item_id, name, quantity, price_at_order)
      VALUES ($1,$2,$3,$4,$5,$6::numeric)
    `, o.ID, i, it.MenuItemID, it.Name, it.Quantity, it.PriceAtOrder.String()); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return tx.Commit(ctx)
}

const viewSelect = `
    SELECT o.id, o.customer_id, o.total_amount::text, o.status, o.created_at, o.updated_at,
           u.name, u.phone, u.photo_url
    FROM orders o
    JOIN users u ON u.id = o.customer_id`

func scanView(row pgx.Row) (*View, error) {
	var v View
	var total, status string
	var c CustomerSummary
	if err := row.Scan(&v.ID, &v.CustomerID, &total, &status, &v.CreatedAt, &v.UpdatedAt,
		&c.Name, &c.Phone, &c.PhotoURL); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("parse total %q: %w", total, err)
	}
	v.TotalAmount = d
	v.Status = Status(status)
	c.ID = v.CustomerID
	v.Customer = &c
	return &v, nil
}

func (r *PGRepo) GetView(ctx context.Context, id string) (*View, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	v, err := scanView(r.db.QueryRow(ctx, viewSelect+` WHERE o.id=$1`, id))
	if err != nil {
		if storage.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	items, err := r.itemsFor(ctx, []string{v.ID})
	if err != nil {
		return nil, err
	}
	v.Items = items[v.ID]
	return v, nil
}

// List returns matching orders newest first with their lines attached.
func (r *PGRepo) List(ctx context.Context, f Filter) ([]View, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, viewSelect+`
    WHERE ($1 = '' OR o.customer_id = $1)
      AND (NOT $2 OR o.status NOT IN ('HandedOver', 'Cancelled'))
    ORDER BY o.created_at DESC
  `, f.CustomerID, f.ExcludeTerminal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []View{}
	var ids []string
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Items = items[out[i].ID]
	}
	return out, nil
}

func (r *PGRepo) itemsFor(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	rows, err := r.db.Query(ctx, `
    SELECT order_id, menu_item_id, name, quantity, price_at_order::text
    FROM order_items
    WHERE order_id = ANY($1)
    ORDER BY order_id, line_no
  `, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]Item, len(orderIDs))
	for rows.Next() {
		var orderID, price string
		var it Item
		if err := rows.Scan(&orderID, &it.MenuItemID, &it.Name, &it.Quantity, &price); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("parse price %q: %w", price, err)
		}
		it.PriceAtOrder = d
		out[orderID] = append(out[orderID], it)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET status = $2, updated_at = NOW()
    WHERE id = $1
  `, id, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
