package domain

// PlatformTotals is the per-platform slice of a daily bucket. Same
// sum-then-divide rule as the bucket itself, scoped to one platform.
type PlatformTotals struct {
	Revenue    float64
	Spend      float64
	ROIPercent Ratio
}

// DailyBucket is one calendar day of one tenant, recomputed from raw events
// on every query and never persisted. A day with no events is a zero-valued
// bucket, not a missing one.
type DailyBucket struct {
	TenantID          string
	Date              string // day key, DayKeyFormat
	PlatformBreakdown map[string]PlatformTotals
	TotalRevenue      float64
	TotalSpend        float64
	ROIPercent        Ratio
}

// ChannelBucket is one platform rolled up over the whole window.
type ChannelBucket struct {
	TenantID     string
	Platform     string
	TotalRevenue float64
	TotalSpend   float64
	TotalViews   int64
	TotalClicks  int64

	// AvgROI is sum-then-divide over the window, not an average of daily
	// ROI values.
	AvgROI Ratio

	// EfficiencyScore is a 0-100 normalization of AvgROI against the
	// tenant's best-performing platform in the window.
	EfficiencyScore float64
}

// RevenueSource is one platform's contribution to window revenue.
type RevenueSource struct {
	Platform     string
	Revenue      float64
	SharePercent Ratio
}

// CostSlice is one platform's contribution to window ad spend.
type CostSlice struct {
	Platform     string
	Spend        float64
	SharePercent Ratio
	CostPerClick Ratio // summed spend / summed clicks
}

// Meta describes the resolved window and input quality of a report.
type Meta struct {
	Range         RangeToken
	StartDate     string
	EndDate       string
	SkippedEvents int
}

type OverviewReport struct {
	Meta         Meta
	TotalRevenue float64
	TotalSpend   float64
	TotalROI     Ratio
	TotalViews   int64
	TotalClicks  int64
}

type TrendsReport struct {
	Meta Meta
	Days []DailyBucket // ascending, one per window bucket key
}

type ChannelReport struct {
	Meta     Meta
	Channels []ChannelBucket // AvgROI descending, ties by platform name
}

type RevenueBySourceReport struct {
	Meta         Meta
	TotalRevenue float64
	Sources      []RevenueSource // revenue descending, ties by platform name
}

type CostBreakdownReport struct {
	Meta       Meta
	TotalSpend float64
	Slices     []CostSlice // spend descending, ties by platform name
}
