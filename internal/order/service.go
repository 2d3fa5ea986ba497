package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MikeMC777/cafe-orders/internal/apperr"
	"github.com/MikeMC777/cafe-orders/internal/menu"
	"github.com/MikeMC777/cafe-orders/internal/storage"
	"github.com/MikeMC777/cafe-orders/internal/user"
)

// Catalog is the menu lookup used to validate and price order lines.
type Catalog interface {
	GetByID(ctx context.Context, id string) (*menu.MenuItem, error)
}

type Service struct {
	repo    Repository
	catalog Catalog
	log     *zap.Logger
}

func NewService(repo Repository, catalog Catalog, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, catalog: catalog, log: log.Named("order")}
}

// Create validates every line against the catalog, freezes prices and
// names, and persists the order as Placed. Nothing is written unless all
// lines are valid.
func (s *Service) Create(ctx context.Context, p *user.Principal, in CreateOrderRequest) (*View, error) {
	if p == nil {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	if !p.IsCustomer() {
		return nil, apperr.Forbidden("only customers can place orders")
	}
	if len(in.Items) == 0 {
		return nil, apperr.Validation("Items required").WithCode(apperr.CodeEmptyOrder)
	}
	for _, line := range in.Items {
		if strings.TrimSpace(line.MenuItemID) == "" {
			return nil, apperr.Validation("menuItemId is required")
		}
		if line.Quantity < 1 {
			return nil, apperr.Validation("quantity must be at least 1")
		}
		if line.Quantity > MaxQuantity {
			return nil, apperr.Validation(fmt.Sprintf("quantity must be at most %d", MaxQuantity))
		}
	}

	items := make([]Item, 0, len(in.Items))
	for _, line := range in.Items {
		mi, err := s.catalog.GetByID(ctx, line.MenuItemID)
		if err != nil && !errors.Is(err, menu.ErrNotFound) {
			return nil, apperr.Internal("lookup menu item", err)
		}
		if mi == nil || !mi.IsAvailable {
			s.log.Info("order rejected: item unavailable", zap.String("menu_item_id", line.MenuItemID), zap.String("customer_id", p.UserID))
			return nil, apperr.Validation(fmt.Sprintf("Item %s not available", line.MenuItemID)).WithCode(apperr.CodeItemUnavailable)
		}
		items = append(items, Item{
			MenuItemID:   mi.ID,
			Name:         mi.Name,
			Quantity:     line.Quantity,
			PriceAtOrder: mi.Price,
		})
	}

	total := Total(items)
	if !storage.MoneyFits(total) {
		return nil, apperr.Validation(fmt.Sprintf("order total must be below %s", storage.MaxMoney))
	}

	o := &Order{
		ID:          uuid.NewString(),
		CustomerID:  p.UserID,
		Items:       items,
		TotalAmount: total,
		Status:      StatusPlaced,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, apperr.Internal("create order", err)
	}
	s.log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.String("customer_id", o.CustomerID),
		zap.String("total", o.TotalAmount.String()),
		zap.Int("lines", len(items)))

	v, err := s.repo.GetView(ctx, o.ID)
	if err != nil {
		return nil, apperr.Internal("reload order", err)
	}
	return v, nil
}

// Get returns one order. Customers only ever see their own.
func (s *Service) Get(ctx context.Context, p *user.Principal, id string) (*View, error) {
	if p == nil {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	v, err := s.repo.GetView(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Internal("get order", err)
	}
	if !p.IsStaff() && v.CustomerID != p.UserID {
		s.log.Warn("order access denied", zap.String("order_id", id), zap.String("user_id", p.UserID))
		return nil, apperr.Forbidden("Forbidden")
	}
	return v, nil
}

// List returns orders newest first. A customer's view is always their
// own orders whatever the scope; staff see everything unless scope=mine.
func (s *Service) List(ctx context.Context, p *user.Principal, scope string) ([]View, error) {
	if p == nil {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	var f Filter
	if !p.IsStaff() || scope == ScopeMine {
		f.CustomerID = p.UserID
	}
	out, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperr.Internal("list orders", err)
	}
	return out, nil
}

// ListForStaff backs the staff dashboard; activeOnly hides terminal orders.
func (s *Service) ListForStaff(ctx context.Context, p *user.Principal, activeOnly bool) ([]View, error) {
	if !p.IsStaff() {
		return nil, apperr.Forbidden("Unauthorized")
	}
	out, err := s.repo.List(ctx, Filter{ExcludeTerminal: activeOnly})
	if err != nil {
		return nil, apperr.Internal("list orders", err)
	}
	return out, nil
}

// AdvanceStatus moves an order one step along the lifecycle or cancels
// it. Force lets staff jump to any status to correct mistakes.
func (s *Service) AdvanceStatus(ctx context.Context, p *user.Principal, id string, in AdvanceStatusRequest) (*View, error) {
	if !p.IsStaff() {
		return nil, apperr.Forbidden("Unauthorized")
	}
	to, err := ParseStatus(in.Status)
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}

	cur, err := s.repo.GetView(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Internal("get order", err)
	}

	if !cur.Status.CanTransition(to) {
		if !in.Force {
			return nil, apperr.Conflict(fmt.Sprintf("cannot move order from %s to %s", cur.Status, to)).
				WithCode(apperr.CodeInvalidTransition)
		}
		s.log.Warn("forced status change",
			zap.String("order_id", id),
			zap.String("from", string(cur.Status)),
			zap.String("to", string(to)),
			zap.String("staff_id", p.UserID))
	}

	if err := s.repo.UpdateStatus(ctx, id, to); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Internal("update status", err)
	}

	v, err := s.repo.GetView(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Error("order vanished after update", zap.String("order_id", id))
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Internal("reload order", err)
	}
	s.log.Info("order status updated", zap.String("order_id", id), zap.String("from", string(cur.Status)), zap.String("to", string(v.Status)))
	return v, nil
}
