package fiber

import "marketing-rollup-service/internal/rollup/core/domain"

// MetaResponse describes the resolved window of a dashboard response
// @Description Resolved window and input diagnostics
type MetaResponse struct {
	Range         string `json:"range" example:"7d"`
	StartDate     string `json:"start_date" example:"2024-08-17"`
	EndDate       string `json:"end_date" example:"2024-08-24"`
	SkippedEvents int    `json:"skipped_events" example:"0"`
}

type OverviewResponse struct {
	Meta         MetaResponse `json:"meta"`
	TotalRevenue float64      `json:"total_revenue"`
	TotalSpend   float64      `json:"total_spend"`
	ROIPercent   *float64     `json:"roi_percent"`
	TotalViews   int64        `json:"total_views"`
	TotalClicks  int64        `json:"total_clicks"`
}

type PlatformTotalsResponse struct {
	Revenue    float64  `json:"revenue"`
	Spend      float64  `json:"spend"`
	ROIPercent *float64 `json:"roi_percent"`
}

type DailyBucketResponse struct {
	Date              string                            `json:"date"`
	TotalRevenue      float64                           `json:"total_revenue"`
	TotalSpend        float64                           `json:"total_spend"`
	ROIPercent        *float64                          `json:"roi_percent"`
	PlatformBreakdown map[string]PlatformTotalsResponse `json:"platform_breakdown"`
}

type TrendsResponse struct {
	Meta MetaResponse          `json:"meta"`
	Days []DailyBucketResponse `json:"days"`
}

type ChannelBucketResponse struct {
	Platform        string   `json:"platform"`
	TotalRevenue    float64  `json:"total_revenue"`
	TotalSpend      float64  `json:"total_spend"`
	TotalViews      int64    `json:"total_views"`
	TotalClicks     int64    `json:"total_clicks"`
	AvgROI          *float64 `json:"avg_roi"`
	EfficiencyScore float64  `json:"efficiency_score"`
}

type ChannelsResponse struct {
	Meta     MetaResponse            `json:"meta"`
	Channels []ChannelBucketResponse `json:"channels"`
}

type RevenueSourceResponse struct {
	Platform     string   `json:"platform"`
	Revenue      float64  `json:"revenue"`
	SharePercent *float64 `json:"share_percent"`
}

type RevenueBySourceResponse struct {
	Meta         MetaResponse            `json:"meta"`
	TotalRevenue float64                 `json:"total_revenue"`
	Sources      []RevenueSourceResponse `json:"sources"`
}

type CostSliceResponse struct {
	Platform     string   `json:"platform"`
	Spend        float64  `json:"spend"`
	SharePercent *float64 `json:"share_percent"`
	CostPerClick *float64 `json:"cost_per_click"`
}

type CostBreakdownResponse struct {
	Meta       MetaResponse        `json:"meta"`
	TotalSpend float64             `json:"total_spend"`
	Slices     []CostSliceResponse `json:"slices"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid range token"`
}

// nullableRatio keeps undefined ratios as JSON null instead of a fake 0.
func nullableRatio(r domain.Ratio) *float64 {
	if !r.Defined {
		return nil
	}
	v := r.Value
	return &v
}

func toMetaResponse(m domain.Meta) MetaResponse {
	return MetaResponse{
		Range:         string(m.Range),
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		SkippedEvents: m.SkippedEvents,
	}
}

func toTrendsResponse(r *domain.TrendsReport) TrendsResponse {
	days := make([]DailyBucketResponse, 0, len(r.Days))
	for _, d := range r.Days {
		breakdown := make(map[string]PlatformTotalsResponse, len(d.PlatformBreakdown))
		for platform, p := range d.PlatformBreakdown {
			breakdown[platform] = PlatformTotalsResponse{
				Revenue:    p.Revenue,
				Spend:      p.Spend,
				ROIPercent: nullableRatio(p.ROIPercent),
			}
		}
		days = append(days, DailyBucketResponse{
			Date:              d.Date,
			TotalRevenue:      d.TotalRevenue,
			TotalSpend:        d.TotalSpend,
			ROIPercent:        nullableRatio(d.ROIPercent),
			PlatformBreakdown: breakdown,
		})
	}
	return TrendsResponse{Meta: toMetaResponse(r.Meta), Days: days}
}

func toChannelsResponse(r *domain.ChannelReport) ChannelsResponse {
	channels := make([]ChannelBucketResponse, 0, len(r.Channels))
	for _, c := range r.Channels {
		channels = append(channels, ChannelBucketResponse{
			Platform:        c.Platform,
			TotalRevenue:    c.TotalRevenue,
			TotalSpend:      c.TotalSpend,
			TotalViews:      c.TotalViews,
			TotalClicks:     c.TotalClicks,
			AvgROI:          nullableRatio(c.AvgROI),
			EfficiencyScore: c.EfficiencyScore,
		})
	}
	return ChannelsResponse{Meta: toMetaResponse(r.Meta), Channels: channels}
}

func toRevenueResponse(r *domain.RevenueBySourceReport) RevenueBySourceResponse {
	sources := make([]RevenueSourceResponse, 0, len(r.Sources))
	for _, s := range r.Sources {
		sources = append(sources, RevenueSourceResponse{
			Platform:     s.Platform,
			Revenue:      s.Revenue,
			SharePercent: nullableRatio(s.SharePercent),
		})
	}
	return RevenueBySourceResponse{
		Meta:         toMetaResponse(r.Meta),
		TotalRevenue: r.TotalRevenue,
		Sources:      sources,
	}
}

func toCostsResponse(r *domain.CostBreakdownReport) CostBreakdownResponse {
	slices := make([]CostSliceResponse, 0, len(r.Slices))
	for _, s := range r.Slices {
		slices = append(slices, CostSliceResponse{
			Platform:     s.Platform,
			Spend:        s.Spend,
			SharePercent: nullableRatio(s.SharePercent),
			CostPerClick: nullableRatio(s.CostPerClick),
		})
	}
	return CostBreakdownResponse{
		Meta:       toMetaResponse(r.Meta),
		TotalSpend: r.TotalSpend,
		Slices:     slices,
	}
}
