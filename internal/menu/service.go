package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/MikeMC777/cafe-orders/internal/apperr"
	"github.com/MikeMC777/cafe-orders/internal/storage"
	"github.com/MikeMC777/cafe-orders/internal/user"
)

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log.Named("menu")}
}

// List returns every item, available or not.
func (s *Service) List(ctx context.Context) ([]MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("list menu", err)
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, p *user.Principal, in CreateItemRequest) (*MenuItem, error) {
	if !p.IsStaff() {
		return nil, apperr.Forbidden("Unauthorized")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price == nil {
		return nil, apperr.Validation("name and price required")
	}
	if err := checkPrice(*in.Price); err != nil {
		return nil, err
	}
	it := &MenuItem{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       *in.Price,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		IsAvailable: true,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, apperr.Internal("create menu item", err)
	}
	s.log.Info("menu item created", zap.String("item_id", it.ID), zap.String("name", it.Name))
	return it, nil
}

// Update applies a partial edit; an availability-only body is a toggle.
func (s *Service) Update(ctx context.Context, p *user.Principal, id string, in UpdateItemRequest) (*MenuItem, error) {
	if !p.IsStaff() {
		return nil, apperr.Forbidden("Unauthorized")
	}
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return nil, apperr.Validation("name must not be empty")
		}
		in.Name = &n
	}
	if in.Price != nil {
		if err := checkPrice(*in.Price); err != nil {
			return nil, err
		}
	}
	it, err := s.repo.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Item not found")
		}
		return nil, apperr.Internal("update menu item", err)
	}
	if in.IsAvailable != nil {
		s.log.Info("menu availability changed", zap.String("item_id", id), zap.Bool("available", it.IsAvailable))
	}
	return it, nil
}

// checkPrice rejects prices the catalog column would round or overflow.
func checkPrice(d decimal.Decimal) error {
	if d.IsNegative() {
		return apperr.Validation("price must be non-negative")
	}
	if !storage.MoneyFits(d) {
		return apperr.Validation(fmt.Sprintf("price must have at most %d decimals and be below %s", storage.MoneyScale, storage.MaxMoney))
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, p *user.Principal, id string) error {
	if !p.IsStaff() {
		return apperr.Forbidden("Unauthorized")
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.Internal("delete menu item", err)
	}
	if !ok {
		return apperr.NotFound("Item not found")
	}
	s.log.Info("menu item deleted", zap.String("item_id", id))
	return nil
}

// GetByID is the catalog lookup used while placing orders.
func (s *Service) GetByID(ctx context.Context, id string) (*MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

// Seed fills an empty catalog; a non-empty one is left untouched.
func (s *Service) Seed(ctx context.Context, items []CreateItemRequest) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, apperr.Internal("count menu", err)
	}
	if n > 0 {
		s.log.Info("catalog already seeded, skipping", zap.Int("items", n))
		return 0, nil
	}
	for _, in := range items {
		it := &MenuItem{
			ID:          uuid.NewString(),
			Name:        in.Name,
			Description: in.Description,
			Price:       *in.Price,
			ImageURL:    in.ImageURL,
			IsAvailable: true,
		}
		if err := s.repo.Create(ctx, it); err != nil {
			return 0, apperr.Internal("seed menu", err)
		}
	}
	return len(items), nil
}
