package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/cafe-orders/internal/storage"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrAlreadyExist = errors.New("user already exists")
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, u *User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO users (id, role, phone, name, photo_url, password_hash, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW(),NOW())
		RETURNING created_at, updated_at
	`, u.ID, string(u.Role), u.Phone, u.Name, u.PhotoURL, u.PasswordHash).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return ErrAlreadyExist
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*User, error) {
	return r.getOne(ctx, `
		SELECT id, role, phone, name, photo_url, password_hash, created_at, updated_at
		FROM users WHERE id=$1
	`, id)
}

func (r *PGRepo) GetByPhone(ctx context.Context, phone string) (*User, error) {
	return r.getOne(ctx, `
		SELECT id, role, phone, name, photo_url, password_hash, created_at, updated_at
		FROM users WHERE phone=$1
	`, phone)
}

func (r *PGRepo) getOne(ctx context.Context, sql, arg string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u User
	var role string
	err := r.db.QueryRow(ctx, sql, arg).
		Scan(&u.ID, &role, &u.Phone, &u.Name, &u.PhotoURL, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if storage.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Role = Role(role)
	return &u, nil
}
