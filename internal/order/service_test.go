package order

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/cafe-orders/internal/apperr"
	"github.com/MikeMC777/cafe-orders/internal/menu"
	"github.com/MikeMC777/cafe-orders/internal/user"
)

//
// ---------- STUBS & FAKES ----------
//

// stubRepo implements Repository in memory.
type stubRepo struct {
	orders    map[string]*Order
	customers map[string]CustomerSummary
	seq       int
}

func newStubRepo() *stubRepo {
	return &stubRepo{orders: map[string]*Order{}, customers: map[string]CustomerSummary{}}
}

func (s *stubRepo) Create(ctx context.Context, o *Order) error {
	s.seq++
	o.CreatedAt = time.Date(2026, 1, 1, 8, 0, s.seq, 0, time.UTC)
	o.UpdatedAt = o.CreatedAt
	cp := *o
	cp.Items = append([]Item(nil), o.Items...)
	s.orders[o.ID] = &cp
	return nil
}

func (s *stubRepo) view(o *Order) View {
	cp := *o
	cp.Items = append([]Item(nil), o.Items...)
	v := View{Order: cp}
	if c, ok := s.customers[o.CustomerID]; ok {
		v.Customer = &c
	}
	return v
}

func (s *stubRepo) GetView(ctx context.Context, id string) (*View, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	v := s.view(o)
	return &v, nil
}

func (s *stubRepo) List(ctx context.Context, f Filter) ([]View, error) {
	out := []View{}
	for _, o := range s.orders {
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		if f.ExcludeTerminal && o.Status.IsTerminal() {
			continue
		}
		out = append(out, s.view(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *stubRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	o, ok := s.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	return nil
}

// stubCatalog implements Catalog.
type stubCatalog map[string]*menu.MenuItem

func (c stubCatalog) GetByID(ctx context.Context, id string) (*menu.MenuItem, error) {
	it, ok := c[id]
	if !ok {
		return nil, menu.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

var (
	alice = &user.Principal{UserID: "alice", Role: user.RoleCustomer}
	bob   = &user.Principal{UserID: "bob", Role: user.RoleCustomer}
	staff = &user.Principal{UserID: "staff", Role: user.RoleStaff}
)

type fixture struct {
	repo    *stubRepo
	catalog stubCatalog
	svc     *Service
}

func newFixture() *fixture {
	repo := newStubRepo()
	repo.customers["alice"] = CustomerSummary{ID: "alice", Name: "Alice", Phone: "111"}
	repo.customers["bob"] = CustomerSummary{ID: "bob", Name: "Bob", Phone: "222"}
	catalog := stubCatalog{
		"coffee":   {ID: "coffee", Name: "Coffee", Price: decimal.NewFromInt(50), IsAvailable: true},
		"tea":      {ID: "tea", Name: "Tea", Price: decimal.RequireFromString("30.25"), IsAvailable: true},
		"sandwich": {ID: "sandwich", Name: "Sandwich", Price: decimal.NewFromInt(80), IsAvailable: false},
	}
	return &fixture{repo: repo, catalog: catalog, svc: NewService(repo, catalog, nil)}
}

func (f *fixture) place(t *testing.T, p *user.Principal, lines ...CreateOrderItem) *View {
	t.Helper()
	v, err := f.svc.Create(context.Background(), p, CreateOrderRequest{Items: lines})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return v
}

//
// ---------- TESTS ----------
//

func TestCreate_TotalIsFrozen(t *testing.T) {
	f := newFixture()
	v := f.place(t, alice, CreateOrderItem{MenuItemID: "coffee", Quantity: 3})

	if !v.TotalAmount.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("total=%s, want 150", v.TotalAmount)
	}
	if v.Status != StatusPlaced || v.CustomerID != "alice" {
		t.Fatalf("unexpected order: %+v", v.Order)
	}
	if v.Customer == nil || v.Customer.Name != "Alice" {
		t.Fatalf("customer projection missing: %+v", v.Customer)
	}

	// catalog price edit and delete after placement
	f.catalog["coffee"].Price = decimal.NewFromInt(99)
	delete(f.catalog, "coffee")

	got, err := f.svc.Get(context.Background(), alice, v.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.TotalAmount.Equal(decimal.NewFromInt(150)) || !got.Items[0].PriceAtOrder.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("snapshot changed: %+v", got.Items)
	}
	if got.Items[0].Name != "Coffee" {
		t.Fatalf("name snapshot lost: %+v", got.Items[0])
	}
}

func TestCreate_TotalSumsAllLines(t *testing.T) {
	f := newFixture()
	v := f.place(t, alice,
		CreateOrderItem{MenuItemID: "coffee", Quantity: 2},
		CreateOrderItem{MenuItemID: "tea", Quantity: 3},
		CreateOrderItem{MenuItemID: "coffee", Quantity: 1},
	)
	// 2*50 + 3*30.25 + 1*50
	if want := decimal.RequireFromString("240.75"); !v.TotalAmount.Equal(want) {
		t.Fatalf("total=%s want %s", v.TotalAmount, want)
	}
	if !v.TotalAmount.Equal(Total(v.Items)) {
		t.Fatalf("total must equal the sum of line subtotals")
	}
	if len(v.Items) != 3 {
		t.Fatalf("lines=%d", len(v.Items))
	}
}

func TestCreate_UnavailableOrMissingPersistsNothing(t *testing.T) {
	f := newFixture()
	cases := [][]CreateOrderItem{
		{{MenuItemID: "sandwich", Quantity: 1}},
		{{MenuItemID: "coffee", Quantity: 1}, {MenuItemID: "ghost", Quantity: 1}},
		{{MenuItemID: "coffee", Quantity: 1}, {MenuItemID: "sandwich", Quantity: 2}},
	}
	for i, lines := range cases {
		_, err := f.svc.Create(context.Background(), alice, CreateOrderRequest{Items: lines})
		if apperr.CodeOf(err) != apperr.CodeItemUnavailable || apperr.KindOf(err) != apperr.KindValidation {
			t.Fatalf("case %d: want ItemUnavailable, got %v", i, err)
		}
	}
	if len(f.repo.orders) != 0 {
		t.Fatalf("orders persisted on failure: %d", len(f.repo.orders))
	}
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, alice, CreateOrderRequest{})
	if apperr.CodeOf(err) != apperr.CodeEmptyOrder {
		t.Fatalf("want EmptyOrder, got %v", err)
	}
	_, err = f.svc.Create(ctx, alice, CreateOrderRequest{Items: []CreateOrderItem{{MenuItemID: "coffee", Quantity: 0}}})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("zero quantity: got %v", err)
	}
	_, err = f.svc.Create(ctx, alice, CreateOrderRequest{Items: []CreateOrderItem{{Quantity: 1}}})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("missing id: got %v", err)
	}
	_, err = f.svc.Create(ctx, alice, CreateOrderRequest{Items: []CreateOrderItem{{MenuItemID: "coffee", Quantity: 3000000000}}})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("quantity over int4: got %v", err)
	}
	_, err = f.svc.Create(ctx, alice, CreateOrderRequest{Items: []CreateOrderItem{{MenuItemID: "coffee", Quantity: MaxQuantity + 1}}})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("quantity over cap: got %v", err)
	}
	if len(f.repo.orders) != 0 {
		t.Fatalf("rejected orders were persisted: %d", len(f.repo.orders))
	}
	f.place(t, alice, CreateOrderItem{MenuItemID: "coffee", Quantity: MaxQuantity})
}

// A total the NUMERIC(12,2) column cannot hold is a bad request, not a
// storage failure.
func TestCreate_TotalMustFitColumn(t *testing.T) {
	f := newFixture()
	f.catalog["banquet"] = &menu.MenuItem{ID: "banquet", Name: "Banquet", Price: decimal.RequireFromString("9999999999.99"), IsAvailable: true}

	_, err := f.svc.Create(context.Background(), alice, CreateOrderRequest{Items: []CreateOrderItem{{MenuItemID: "banquet", Quantity: 2}}})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(f.repo.orders) != 0 {
		t.Fatalf("rejected order was persisted")
	}

	v := f.place(t, alice, CreateOrderItem{MenuItemID: "banquet", Quantity: 1})
	if !v.TotalAmount.Equal(decimal.RequireFromString("9999999999.99")) {
		t.Fatalf("total=%s", v.TotalAmount)
	}
}

func TestCreate_CustomersOnly(t *testing.T) {
	f := newFixture()
	lines := CreateOrderRequest{Items: []CreateOrderItem{{MenuItemID: "coffee", Quantity: 1}}}

	if _, err := f.svc.Create(context.Background(), nil, lines); apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Fatalf("anonymous: got %v", err)
	}
	if _, err := f.svc.Create(context.Background(), staff, lines); apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("staff: got %v", err)
	}
}

func TestGet_Ownership(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	v := f.place(t, alice, CreateOrderItem{MenuItemID: "coffee", Quantity: 1})

	got, err := f.svc.Get(ctx, bob, v.ID)
	if apperr.KindOf(err) != apperr.KindForbidden || got != nil {
		t.Fatalf("bob must be forbidden without data: %v %+v", err, got)
	}
	if _, err := f.svc.Get(ctx, nil, v.ID); apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Fatalf("anonymous: got %v", err)
	}
	if _, err := f.svc.Get(ctx, staff, v.ID); err != nil {
		t.Fatalf("staff: %v", err)
	}
	if _, err := f.svc.Get(ctx, alice, "missing"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("missing: got %v", err)
	}
}

func TestList_CustomerScopeCannotBroaden(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.place(t, alice, CreateOrderItem{MenuItemID: "coffee", Quantity: 1})
	f.place(t, bob, CreateOrderItem{MenuItemID: "tea", Quantity: 1})
	f.place(t, alice, CreateOrderItem{MenuItemID: "tea", Quantity: 2})

	for _, scope := range []string{"", "mine", "all", "everyone", "staff"} {
		got, err := f.svc.List(ctx, alice, scope)
		if err != nil {
			t.Fatalf("scope %q: %v", scope, err)
		}
		if len(got) != 2 {
			t.Fatalf("scope %q: len=%d, want 2", scope, len(got))
		}
		for _, v := range got {
			if v.CustomerID != "alice" {
				t.Fatalf("scope %q leaked order of %s", scope, v.CustomerID)
			}
		}
		if !got[0].CreatedAt.After(got[1].CreatedAt) {
			t.Fatalf("not newest first")
		}
	}
}

func TestList_Staff(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.place(t, alice, CreateOrderItem{MenuItemID: "coffee", Quantity: 1})
	f.place(t, bob, CreateOrderItem{MenuItemID: "tea", Quantity: 1})

	all, err := f.svc.List(ctx, staff, "")
	if err != nil || len(all) != 2 {
		t.Fatalf("staff all: len=%d err=%v", len(all), err)
	}
	mine, err := f.svc.List(ctx, staff, ScopeMine)
	if err != nil || len(mine) != 0 {
		t.Fatalf("staff mine: len=%d err=%v", len(mine), err)
	}
	if _, err := f.svc.List(ctx, nil, ""); apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Fatalf("anonymous: got %v", err)
	}
}

func TestListForStaff_ActiveOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.place(t, alice, CreateOrderItem{MenuItemID: "coffee", Quantity: 1})
	f.place(t, bob, CreateOrderItem{MenuItemID: "tea", Quantity: 1})
	f.repo.orders[a.ID].Status = StatusHandedOver

	active, err := f.svc.ListForStaff(ctx, staff, true)
	if err != nil || len(active) != 1 || active[0].CustomerID != "bob" {
		t.Fatalf("active=%+v err=%v", active, err)
	}
	all, _ := f.svc.ListForStaff(ctx, staff, false)
	if len(all) != 2 {
		t.Fatalf("all=%d", len(all))
	}
	if _, err := f.svc.ListForStaff(ctx, alice, false); apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("customer: got %v", err)
	}
}

func TestAdvanceStatus_FullLifecycle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	v := f.place(t, alice, CreateOrderItem{MenuItemID: "coffee", Quantity: 1})

	for _, next := range Lifecycle[1:] {
		got, err := f.svc.AdvanceStatus(ctx, staff, v.ID, AdvanceStatusRequest{Status: string(next)})
		if err != nil {
			t.Fatalf("-> %s: %v", next, err)
		}
		if got.Status != next {
			t.Fatalf("status=%s want %s", got.Status, next)
		}
	}
	_, err := f.svc.AdvanceStatus(ctx, staff, v.ID, AdvanceStatusRequest{Status: string(StatusCancelled)})
	if apperr.CodeOf(err) != apperr.CodeInvalidTransition {
		t.Fatalf("HandedOver is terminal, got %v", err)
	}
}

func TestAdvanceStatus_SkipRejectedUnlessForced(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	v := f.place(t, alice, CreateOrderItem{MenuItemID: "coffee", Quantity: 1})

	_, err := f.svc.AdvanceStatus(ctx, staff, v.ID, AdvanceStatusRequest{Status: "Ready"})
	if apperr.CodeOf(err) != apperr.CodeInvalidTransition || apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("want InvalidTransition, got %v", err)
	}
	if f.repo.orders[v.ID].Status != StatusPlaced {
		t.Fatalf("status changed on rejected transition")
	}

	got, err := f.svc.AdvanceStatus(ctx, staff, v.ID, AdvanceStatusRequest{Status: "Ready", Force: true})
	if err != nil || got.Status != StatusReady {
		t.Fatalf("forced: %v %+v", err, got)
	}

	// backwards needs force too
	if _, err := f.svc.AdvanceStatus(ctx, staff, v.ID, AdvanceStatusRequest{Status: "Placed"}); apperr.CodeOf(err) != apperr.CodeInvalidTransition {
		t.Fatalf("backward: got %v", err)
	}
	// same status is not a transition
	if _, err := f.svc.AdvanceStatus(ctx, staff, v.ID, AdvanceStatusRequest{Status: "Ready"}); apperr.CodeOf(err) != apperr.CodeInvalidTransition {
		t.Fatalf("no-op: got %v", err)
	}
}

func TestAdvanceStatus_CancelFromAnyNonTerminal(t *testing.T) {
	for _, from := range Lifecycle[:len(Lifecycle)-1] {
		f := newFixture()
		v := f.place(t, alice, CreateOrderItem{MenuItemID: "coffee", Quantity: 1})
		f.repo.orders[v.ID].Status = from

		got, err := f.svc.AdvanceStatus(context.Background(), staff, v.ID, AdvanceStatusRequest{Status: "Cancelled"})
		if err != nil || got.Status != StatusCancelled {
			t.Fatalf("cancel from %s: %v", from, err)
		}
	}
}

func TestAdvanceStatus_NonStaffAlwaysRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	v := f.place(t, alice, CreateOrderItem{MenuItemID: "coffee", Quantity: 1})

	targets := append([]Status{StatusCancelled, "bogus"}, Lifecycle...)
	for _, p := range []*user.Principal{nil, alice, bob} {
		for _, to := range targets {
			for _, force := range []bool{false, true} {
				_, err := f.svc.AdvanceStatus(ctx, p, v.ID, AdvanceStatusRequest{Status: string(to), Force: force})
				if apperr.KindOf(err) != apperr.KindForbidden {
					t.Fatalf("principal %+v -> %s: got %v", p, to, err)
				}
			}
		}
	}
	if f.repo.orders[v.ID].Status != StatusPlaced {
		t.Fatalf("status changed by non-staff")
	}
}

func TestAdvanceStatus_Errors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	v := f.place(t, alice, CreateOrderItem{MenuItemID: "coffee", Quantity: 1})

	if _, err := f.svc.AdvanceStatus(ctx, staff, v.ID, AdvanceStatusRequest{Status: "Shipped"}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("bad status: got %v", err)
	}
	if _, err := f.svc.AdvanceStatus(ctx, staff, "missing", AdvanceStatusRequest{Status: "PaymentReceived"}); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("missing: got %v", err)
	}
}
