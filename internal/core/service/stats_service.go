package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// ReportCache abstracts the short-TTL report cache (Redis). A nil-safe
// implementation is not required: pass NopReportCache to disable caching.
type ReportCache interface {
	Get(ctx context.Context, key string, v any) (bool, error)
	Set(ctx context.Context, key string, v any) error
}

// NopReportCache disables report caching.
type NopReportCache struct{}

func (NopReportCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NopReportCache) Set(context.Context, string, any) error         { return nil }

const (
	cacheKeyGlobalStats   = "stats:global"
	cacheKeyCategoryStats = "stats:categories"
)

// StatsService is the aggregation engine behind the admin reports. Both
// reports are read-only and safe to run concurrently with writes; they see a
// best-effort snapshot, not a point-in-time consistent view.
type StatsService struct {
	users    ports.UserRepository
	menus    ports.MenuRepository
	payments ports.PaymentRepository
	cache    ReportCache
	log      zerolog.Logger
}

func NewStatsService(
	users ports.UserRepository,
	menus ports.MenuRepository,
	payments ports.PaymentRepository,
	cache ReportCache,
	log zerolog.Logger,
) *StatsService {
	if cache == nil {
		cache = NopReportCache{}
	}
	return &StatsService{users: users, menus: menus, payments: payments, cache: cache, log: log}
}

// Global returns store-wide counts and total revenue. Counts are approximate
// cardinalities; revenue over an empty payment store is 0.
func (s *StatsService) Global(ctx context.Context) (*domain.GlobalStats, error) {
	var cached domain.GlobalStats
	if hit, err := s.cache.Get(ctx, cacheKeyGlobalStats, &cached); err != nil {
		s.log.Warn().Err(err).Msg("report cache read failed, recomputing")
	} else if hit {
		return &cached, nil
	}

	userCount, err := s.users.Count(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("global stats: user count failed")
		return nil, domain.ErrUnavailable
	}

	menuCount, err := s.menus.Count(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("global stats: menu count failed")
		return nil, domain.ErrUnavailable
	}

	revenue, err := s.payments.TotalRevenue(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("global stats: revenue sum failed")
		return nil, domain.ErrUnavailable
	}

	stats := &domain.GlobalStats{
		UserCount:    userCount,
		MenuCount:    menuCount,
		TotalRevenue: revenue,
	}

	if err := s.cache.Set(ctx, cacheKeyGlobalStats, stats); err != nil {
		s.log.Warn().Err(err).Msg("report cache write failed")
	}
	return stats, nil
}

// Categories computes the per-category sales breakdown: every payment's menu
// references are expanded one row per reference, joined against the menu
// catalog, and folded into (quantity, revenue) per category. References to
// menu items that no longer exist contribute nothing; they are dropped
// silently, not reported as errors. Row order is unspecified.
func (s *StatsService) Categories(ctx context.Context) ([]domain.CategoryStat, error) {
	var cached []domain.CategoryStat
	if hit, err := s.cache.Get(ctx, cacheKeyCategoryStats, &cached); err != nil {
		s.log.Warn().Err(err).Msg("report cache read failed, recomputing")
	} else if hit {
		return cached, nil
	}

	payments, err := s.payments.FindByEmail(ctx, "")
	if err != nil {
		s.log.Error().Err(err).Msg("category stats: payment scan failed")
		return nil, domain.ErrUnavailable
	}

	// Unwind: one row per menu reference, counting repeats.
	refs := make(map[string]int64)
	for _, p := range payments {
		for _, id := range p.MenuItemIDs {
			refs[id]++
		}
	}

	stats := make([]domain.CategoryStat, 0)
	if len(refs) == 0 {
		return stats, nil
	}

	ids := make([]string, 0, len(refs))
	for id := range refs {
		ids = append(ids, id)
	}

	// Join: one batched lookup against the menu catalog. Ids absent from the
	// result are the dangling references and drop out here.
	items, err := s.menus.FindByIDs(ctx, ids)
	if err != nil {
		s.log.Error().Err(err).Msg("category stats: menu join failed")
		return nil, domain.ErrUnavailable
	}

	// Group + reduce, keyed by category.
	type bucket struct {
		quantity int64
		revenue  float64
	}
	buckets := make(map[string]*bucket)
	for _, item := range items {
		n := refs[item.ID]
		b, ok := buckets[item.Category]
		if !ok {
			b = &bucket{}
			buckets[item.Category] = b
		}
		b.quantity += n
		b.revenue += item.Price * float64(n)
	}

	for category, b := range buckets {
		stats = append(stats, domain.CategoryStat{
			Category: category,
			Quantity: b.quantity,
			Revenue:  b.revenue,
		})
	}

	if err := s.cache.Set(ctx, cacheKeyCategoryStats, stats); err != nil {
		s.log.Warn().Err(err).Msg("report cache write failed")
	}
	return stats, nil
}
