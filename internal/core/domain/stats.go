package domain

// GlobalStats is the store-wide reporting snapshot. Counts are approximate
// cardinalities; revenue is the exact sum over all recorded payments and is
// zero, not null, when no payments exist.
type GlobalStats struct {
	UserCount    int64   `json:"user_count"`
	MenuCount    int64   `json:"menu_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// CategoryStat is one row of the per-category breakdown: how many menu items
// of this category were sold and what they grossed. Row order is unspecified.
type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}
