package domain

// StatusCounts holds registration counts per status.
type StatusCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// TierAmounts holds a rupee amount per tier.
type TierAmounts struct {
	Basic   int32 `json:"basic"`
	Plus    int32 `json:"plus"`
	Premium int32 `json:"premium"`
}

// TierCounts holds an integer count (or percentage) per tier.
type TierCounts struct {
	Basic   int `json:"basic"`
	Plus    int `json:"plus"`
	Premium int `json:"premium"`
}

// Stats is the aggregate report over a set of registrations. Revenue only
// counts approved registrations; percentages are of the approved total,
// rounded to the nearest integer, and all zero when nothing is approved.
type Stats struct {
	Total           int          `json:"total"`
	ByStatus        StatusCounts `json:"count_by_status"`
	RevenueByTier   TierAmounts  `json:"revenue_by_tier"`
	TotalRevenue    int32        `json:"total_revenue"`
	ApprovedByTier  TierCounts   `json:"tier_distribution_approved"`
	TierPercentages TierCounts   `json:"tier_percentages"`
}
