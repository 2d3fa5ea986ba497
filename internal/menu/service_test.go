package menu

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/cafe-orders/internal/apperr"
	"github.com/MikeMC777/cafe-orders/internal/user"
)

//
// ===== stub repo in memory (implements Repository) =====
//

type stubRepo struct {
	items map[string]*MenuItem
}

func newStubRepo() *stubRepo { return &stubRepo{items: map[string]*MenuItem{}} }

func (s *stubRepo) Create(ctx context.Context, it *MenuItem) error {
	it.CreatedAt = time.Now().UTC()
	it.UpdatedAt = it.CreatedAt
	cp := *it
	s.items[it.ID] = &cp
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*MenuItem, error) {
	it, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (s *stubRepo) List(ctx context.Context) ([]MenuItem, error) {
	out := make([]MenuItem, 0, len(s.items))
	for _, v := range s.items {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *stubRepo) Update(ctx context.Context, id string, in UpdateItemRequest) (*MenuItem, error) {
	cur, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if in.Name != nil {
		cur.Name = *in.Name
	}
	if in.Description != nil {
		cur.Description = *in.Description
	}
	if in.Price != nil {
		cur.Price = *in.Price
	}
	if in.ImageURL != nil {
		cur.ImageURL = *in.ImageURL
	}
	if in.IsAvailable != nil {
		cur.IsAvailable = *in.IsAvailable
	}
	cp := *cur
	return &cp, nil
}

func (s *stubRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (s *stubRepo) Count(ctx context.Context) (int, error) { return len(s.items), nil }

var (
	staff    = &user.Principal{UserID: "staff-1", Role: user.RoleStaff}
	customer = &user.Principal{UserID: "cust-1", Role: user.RoleCustomer}
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

//
// ===== tests =====
//

func TestCreate_StaffOnly_And_Validation(t *testing.T) {
	svc := NewService(newStubRepo(), nil)
	ctx := context.Background()

	for _, p := range []*user.Principal{nil, customer} {
		if _, err := svc.Create(ctx, p, CreateItemRequest{Name: "Coffee", Price: dec("50")}); apperr.KindOf(err) != apperr.KindForbidden {
			t.Fatalf("principal %+v: want Forbidden, got %v", p, err)
		}
	}

	if _, err := svc.Create(ctx, staff, CreateItemRequest{Name: "Coffee"}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("missing price: got %v", err)
	}
	if _, err := svc.Create(ctx, staff, CreateItemRequest{Price: dec("1")}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("missing name: got %v", err)
	}
	if _, err := svc.Create(ctx, staff, CreateItemRequest{Name: "X", Price: dec("-1")}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("negative price: got %v", err)
	}

	it, err := svc.Create(ctx, staff, CreateItemRequest{Name: " Coffee ", Price: dec("50")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if it.Name != "Coffee" || !it.IsAvailable || !it.Price.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected item: %+v", it)
	}
}

func TestUpdate_AvailabilityToggle_And_Partial(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()
	it, _ := svc.Create(ctx, staff, CreateItemRequest{Name: "Tea", Price: dec("30"), Description: "Masala chai"})

	off := false
	got, err := svc.Update(ctx, staff, it.ID, UpdateItemRequest{IsAvailable: &off})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got.IsAvailable || got.Name != "Tea" || got.Description != "Masala chai" || !got.Price.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("toggle changed more than availability: %+v", got)
	}

	name := "Ginger Tea"
	got, err = svc.Update(ctx, staff, it.ID, UpdateItemRequest{Name: &name, Price: dec("35.50")})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got.Name != "Ginger Tea" || got.Price.String() != "35.5" || got.IsAvailable {
		t.Fatalf("partial edit wrong: %+v", got)
	}

	if _, err := svc.Update(ctx, customer, it.ID, UpdateItemRequest{IsAvailable: &off}); apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("want Forbidden, got %v", err)
	}
	if _, err := svc.Update(ctx, staff, "nope", UpdateItemRequest{IsAvailable: &off}); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("want NotFound, got %v", err)
	}
	blank := "  "
	if _, err := svc.Update(ctx, staff, it.ID, UpdateItemRequest{Name: &blank}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("blank name: got %v", err)
	}
	if _, err := svc.Update(ctx, staff, it.ID, UpdateItemRequest{Price: dec("-2")}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("negative price: got %v", err)
	}
}

// Prices are stored as NUMERIC(12,2); anything the column would round or
// overflow is rejected up front so the response always matches the row.
func TestPriceMustFitColumn(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	for _, bad := range []string{"12.345", "0.001", "10000000000", "123456789012"} {
		if _, err := svc.Create(ctx, staff, CreateItemRequest{Name: "X", Price: dec(bad)}); apperr.KindOf(err) != apperr.KindValidation {
			t.Fatalf("create price %s: want ValidationError, got %v", bad, err)
		}
	}
	if len(repo.items) != 0 {
		t.Fatalf("rejected items were persisted: %d", len(repo.items))
	}

	it, err := svc.Create(ctx, staff, CreateItemRequest{Name: "Thali", Price: dec("9999999999.99")})
	if err != nil {
		t.Fatalf("largest price: %v", err)
	}
	if _, err := svc.Update(ctx, staff, it.ID, UpdateItemRequest{Price: dec("12.345")}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("update price 12.345: want ValidationError, got %v", err)
	}
	if _, err := svc.Update(ctx, staff, it.ID, UpdateItemRequest{Price: dec("1e10")}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("update price 1e10: want ValidationError, got %v", err)
	}
	got, err := svc.Update(ctx, staff, it.ID, UpdateItemRequest{Price: dec("12.340")})
	if err != nil || !got.Price.Equal(decimal.RequireFromString("12.34")) {
		t.Fatalf("trailing zero price: got %+v err=%v", got, err)
	}
}

func TestDelete(t *testing.T) {
	svc := NewService(newStubRepo(), nil)
	ctx := context.Background()
	it, _ := svc.Create(ctx, staff, CreateItemRequest{Name: "Samosa", Price: dec("20")})

	if err := svc.Delete(ctx, customer, it.ID); apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("want Forbidden, got %v", err)
	}
	if err := svc.Delete(ctx, staff, it.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, staff, it.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("want NotFound, got %v", err)
	}
}

func TestList_IncludesUnavailable(t *testing.T) {
	svc := NewService(newStubRepo(), nil)
	ctx := context.Background()
	a, _ := svc.Create(ctx, staff, CreateItemRequest{Name: "A", Price: dec("1")})
	_, _ = svc.Create(ctx, staff, CreateItemRequest{Name: "B", Price: dec("2")})
	off := false
	_, _ = svc.Update(ctx, staff, a.ID, UpdateItemRequest{IsAvailable: &off})

	items, err := svc.List(ctx)
	if err != nil || len(items) != 2 {
		t.Fatalf("items=%d err=%v", len(items), err)
	}
}

func TestSeed_OnlyWhenEmpty(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	n, err := svc.Seed(ctx, DefaultMenu)
	if err != nil || n != len(DefaultMenu) {
		t.Fatalf("seed n=%d err=%v", n, err)
	}
	n, err = svc.Seed(ctx, DefaultMenu)
	if err != nil || n != 0 {
		t.Fatalf("second seed must be a no-op: n=%d err=%v", n, err)
	}
	if c, _ := repo.Count(ctx); c != 7 {
		t.Fatalf("count=%d", c)
	}
}
