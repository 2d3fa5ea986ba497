// Package menu provides the café catalog: repository, PostgreSQL
// implementation and the staff-gated service on top of it.
package menu

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
	ErrNotFound = errors.New("menu item not found")
)

type Repository interface {
	Create(ctx context.Context, it *MenuItem) error
	GetByID(ctx context.Context, id string) (*MenuItem, error)
	List(ctx context.Context) ([]MenuItem, error)
	Update(ctx context.Context, id string, in UpdateItemRequest) (*MenuItem, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const itemColumns = `id, name, description, price::text, image_url, is_available, created_at, updated_at`

func scanItem(row pgx.Row) (*MenuItem, error) {
	var it MenuItem
	var price string
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &price, &it.ImageURL, &it.IsAvailable, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", price, err)
	}
	it.Price = d
	return &it, nil
}

func (r *PGRepo) Create(ctx context.Context, it *MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (id, name, description, price, image_url, is_available, created_at, updated_at)
		VALUES ($1,$2,$3,$4::numeric,$5,$6,NOW(),NOW())
		RETURNING created_at, updated_at
	`, it.ID, it.Name, it.Description, it.Price.String(), it.ImageURL, it.IsAvailable).Scan(&it.CreatedAt, &it.UpdatedAt)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	it, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM menu_items WHERE id=$1`, id))
	if err != nil {
		if storage.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

func (r *PGRepo) List(ctx context.Context) ([]MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM menu_items ORDER BY created_at DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []MenuItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, id string, in UpdateItemRequest) (*MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var price *string
	if in.Price != nil {
		s := in.Price.String()
		price = &s
	}

	it, err := scanItem(r.db.QueryRow(ctx, `
		UPDATE menu_items
		SET name         = COALESCE($2, name),
		    description  = COALESCE($3, description),
		    price        = COALESCE($4::numeric, price),
		    image_url    = COALESCE($5, image_url),
		    is_available = COALESCE($6, is_available),
		    updated_at   = NOW()
		WHERE id = $1
		RETURNING `+itemColumns, id, in.Name, in.Description, price, in.ImageURL, in.IsAvailable))
	if err != nil {
		if storage.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGRepo) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n)
	return n, err
}
