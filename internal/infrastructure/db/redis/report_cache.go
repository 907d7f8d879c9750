package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bistroboss/ordering-system/internal/api/metrics"
)

// reportTTL bounds how stale a cached report can get. Reports are best-effort
// snapshots anyway, so a short window is acceptable.
const reportTTL = 30 * time.Second

// ReportCache stores JSON-encoded aggregation reports in Redis. Key format:
// report:<name>
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a ReportCache wrapping the given Redis client.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get loads a cached report into v. The boolean reports whether the key was
// present; a decoding failure counts as a miss so a corrupt entry never
// blocks recomputation.
func (rc *ReportCache) Get(ctx context.Context, key string, v any) (bool, error) {
	raw, err := rc.client.Get(ctx, rc.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ReportCacheTotal.WithLabelValues("miss").Inc()
			return false, nil
		}
		return false, fmt.Errorf("report cache get: %w", err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		metrics.ReportCacheTotal.WithLabelValues("miss").Inc()
		return false, nil
	}

	metrics.ReportCacheTotal.WithLabelValues("hit").Inc()
	return true, nil
}

// Set stores a report under key (expires after reportTTL).
func (rc *ReportCache) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	return rc.client.Set(ctx, rc.key(key), raw, reportTTL).Err()
}

func (rc *ReportCache) key(name string) string {
	return "report:" + name
}
