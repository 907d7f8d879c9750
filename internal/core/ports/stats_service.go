package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// StatsService computes the read-only reporting views. Both operations are
// idempotent, require no locks, and reflect a best-effort snapshot of the
// underlying stores.
type StatsService interface {
	Global(ctx context.Context) (*domain.GlobalStats, error)
	Categories(ctx context.Context) ([]domain.CategoryStat, error)
}
