package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

type stubStatsUserRepo struct {
	count    int64
	countErr error
}

func (r *stubStatsUserRepo) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, nil
}
func (r *stubStatsUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubStatsUserRepo) FindByID(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubStatsUserRepo) FindAll(context.Context) ([]*domain.User, error) { return nil, nil }
func (r *stubStatsUserRepo) UpdateRole(context.Context, string, string) error {
	return nil
}
func (r *stubStatsUserRepo) Delete(context.Context, string) error { return nil }
func (r *stubStatsUserRepo) Count(context.Context) (int64, error) {
	return r.count, r.countErr
}

type stubStatsMenuRepo struct {
	items map[string]*domain.MenuItem
	count int64
	err   error
}

func (r *stubStatsMenuRepo) Create(context.Context, *domain.MenuItem) (*domain.MenuItem, error) {
	return nil, nil
}
func (r *stubStatsMenuRepo) FindByID(context.Context, string) (*domain.MenuItem, error) {
	return nil, domain.ErrMenuNotFound
}
func (r *stubStatsMenuRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.MenuItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.MenuItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}
func (r *stubStatsMenuRepo) List(context.Context, string) ([]*domain.MenuItem, error) {
	return nil, nil
}
func (r *stubStatsMenuRepo) Update(context.Context, string, *domain.MenuItem) error { return nil }
func (r *stubStatsMenuRepo) Delete(context.Context, string) error                   { return nil }
func (r *stubStatsMenuRepo) Count(context.Context) (int64, error)                   { return r.count, nil }

type stubStatsPaymentRepo struct {
	payments []*domain.Payment
	revenue  float64
	err      error
}

func (r *stubStatsPaymentRepo) Insert(context.Context, *domain.Payment) (*domain.Payment, error) {
	return nil, nil
}
func (r *stubStatsPaymentRepo) FindByEmail(context.Context, string) ([]*domain.Payment, error) {
	return r.payments, r.err
}
func (r *stubStatsPaymentRepo) TotalRevenue(context.Context) (float64, error) {
	return r.revenue, r.err
}

func newStatsService(users *stubStatsUserRepo, menus *stubStatsMenuRepo, payments *stubStatsPaymentRepo, cache ReportCache) *StatsService {
	return NewStatsService(users, menus, payments, cache, zerolog.Nop())
}

func TestStatsService_Global_EmptyPaymentStore(t *testing.T) {
	svc := newStatsService(
		&stubStatsUserRepo{count: 3},
		&stubStatsMenuRepo{count: 7},
		&stubStatsPaymentRepo{revenue: 0},
		nil,
	)

	stats, err := svc.Global(context.Background())
	if err != nil {
		t.Fatalf("Global returned error: %v", err)
	}
	if stats.UserCount != 3 || stats.MenuCount != 7 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.TotalRevenue != 0 {
		t.Fatalf("expected zero revenue, got %v", stats.TotalRevenue)
	}
}

func TestStatsService_Global_StoreFailure(t *testing.T) {
	svc := newStatsService(
		&stubStatsUserRepo{countErr: errors.New("connection reset")},
		&stubStatsMenuRepo{},
		&stubStatsPaymentRepo{},
		nil,
	)

	if _, err := svc.Global(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestStatsService_Categories_DanglingReferenceDropped(t *testing.T) {
	menus := &stubStatsMenuRepo{items: map[string]*domain.MenuItem{
		"A": {ID: "A", Category: "Dessert", Price: 5},
		// "B" intentionally missing from the catalog.
	}}
	payments := &stubStatsPaymentRepo{payments: []*domain.Payment{
		{Email: "alice@example.com", MenuItemIDs: []string{"A", "B"}},
	}}

	svc := newStatsService(&stubStatsUserRepo{}, menus, payments, nil)
	stats, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories returned error: %v", err)
	}

	if len(stats) != 1 {
		t.Fatalf("expected exactly 1 category, got %d: %+v", len(stats), stats)
	}
	row := stats[0]
	if row.Category != "Dessert" || row.Quantity != 1 || row.Revenue != 5 {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestStatsService_Categories_GroupsAndSums(t *testing.T) {
	menus := &stubStatsMenuRepo{items: map[string]*domain.MenuItem{
		"A": {ID: "A", Category: "Dessert", Price: 5},
		"B": {ID: "B", Category: "Dessert", Price: 3},
		"C": {ID: "C", Category: "Pizza", Price: 12},
	}}
	payments := &stubStatsPaymentRepo{payments: []*domain.Payment{
		{MenuItemIDs: []string{"A", "C"}},
		{MenuItemIDs: []string{"B", "A"}},
		{MenuItemIDs: []string{"C"}},
	}}

	svc := newStatsService(&stubStatsUserRepo{}, menus, payments, nil)
	stats, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories returned error: %v", err)
	}

	byCategory := make(map[string]domain.CategoryStat, len(stats))
	for _, s := range stats {
		byCategory[s.Category] = s
	}
	if len(byCategory) != 2 {
		t.Fatalf("expected 2 categories, got %+v", stats)
	}
	if d := byCategory["Dessert"]; d.Quantity != 3 || d.Revenue != 13 {
		t.Fatalf("unexpected dessert row: %+v", d)
	}
	if p := byCategory["Pizza"]; p.Quantity != 2 || p.Revenue != 24 {
		t.Fatalf("unexpected pizza row: %+v", p)
	}
}

func TestStatsService_Categories_OrderInvariant(t *testing.T) {
	menus := &stubStatsMenuRepo{items: map[string]*domain.MenuItem{
		"A": {ID: "A", Category: "Dessert", Price: 5},
		"B": {ID: "B", Category: "Salad", Price: 8},
	}}

	forward := []*domain.Payment{
		{MenuItemIDs: []string{"A"}},
		{MenuItemIDs: []string{"B", "A"}},
	}
	reversed := []*domain.Payment{
		{MenuItemIDs: []string{"B", "A"}},
		{MenuItemIDs: []string{"A"}},
	}

	collect := func(input []*domain.Payment) map[string]domain.CategoryStat {
		svc := newStatsService(&stubStatsUserRepo{}, menus, &stubStatsPaymentRepo{payments: input}, nil)
		stats, err := svc.Categories(context.Background())
		if err != nil {
			t.Fatalf("Categories returned error: %v", err)
		}
		out := make(map[string]domain.CategoryStat, len(stats))
		for _, s := range stats {
			out[s.Category] = s
		}
		return out
	}

	a, b := collect(forward), collect(reversed)
	if len(a) != len(b) {
		t.Fatalf("result size differs: %v vs %v", a, b)
	}
	for category, row := range a {
		if b[category] != row {
			t.Fatalf("category %s differs: %+v vs %+v", category, row, b[category])
		}
	}
}

func TestStatsService_Categories_StoreFailure(t *testing.T) {
	svc := newStatsService(
		&stubStatsUserRepo{},
		&stubStatsMenuRepo{},
		&stubStatsPaymentRepo{err: errors.New("cursor timeout")},
		nil,
	)

	stats, err := svc.Categories(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if stats != nil {
		t.Fatalf("expected no partial result, got %+v", stats)
	}
}

// memReportCache is an in-memory ReportCache used to verify hit/miss flow.
type memReportCache struct {
	data map[string][]byte
	err  error
}

func (c *memReportCache) Get(_ context.Context, key string, v any) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (c *memReportCache) Set(_ context.Context, key string, v any) error {
	if c.err != nil {
		return c.err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func TestStatsService_Global_CacheHitSkipsStores(t *testing.T) {
	cache := &memReportCache{data: map[string][]byte{}}
	svc := newStatsService(&stubStatsUserRepo{count: 1}, &stubStatsMenuRepo{count: 1}, &stubStatsPaymentRepo{revenue: 42}, cache)

	first, err := svc.Global(context.Background())
	if err != nil {
		t.Fatalf("first Global: %v", err)
	}

	// Break the store; the cached report must still be served.
	svc.users = &stubStatsUserRepo{countErr: errors.New("down")}
	second, err := svc.Global(context.Background())
	if err != nil {
		t.Fatalf("second Global: %v", err)
	}
	if *second != *first {
		t.Fatalf("cached report differs: %+v vs %+v", second, first)
	}
}

func TestStatsService_CacheFailureDegradesToRecompute(t *testing.T) {
	cache := &memReportCache{err: errors.New("redis down")}
	svc := newStatsService(&stubStatsUserRepo{count: 2}, &stubStatsMenuRepo{count: 4}, &stubStatsPaymentRepo{revenue: 9}, cache)

	stats, err := svc.Global(context.Background())
	if err != nil {
		t.Fatalf("Global returned error: %v", err)
	}
	if stats.TotalRevenue != 9 {
		t.Fatalf("unexpected revenue: %v", stats.TotalRevenue)
	}
}
