package usecase

import (
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	eventsDomain "marketing-rollup-service/internal/events/core/domain"
	"marketing-rollup-service/internal/rollup/core/domain"
)

// dayKey is the bucketing function: the event's created_at truncated to a
// calendar day in the engine's one configured time zone. No event can land
// in more than one bucket.
func (uc *RollupUseCase) dayKey(t time.Time) string {
	return t.In(uc.cfg.Location).Format(domain.DayKeyFormat)
}

// sanitizeEvents drops malformed rows and reports how many were skipped.
// One bad row never fails the query. Survivors are sorted by (created_at, id)
// so float summation is reproducible for identical inputs.
func sanitizeEvents(events []eventsDomain.MetricEvent) ([]eventsDomain.MetricEvent, int) {
	clean := make([]eventsDomain.MetricEvent, 0, len(events))
	skipped := 0

	for _, e := range events {
		if malformed(e) {
			skipped++
			continue
		}
		clean = append(clean, e)
	}

	sort.Slice(clean, func(i, j int) bool {
		if !clean[i].CreatedAt.Equal(clean[j].CreatedAt) {
			return clean[i].CreatedAt.Before(clean[j].CreatedAt)
		}
		return clean[i].ID.String() < clean[j].ID.String()
	})

	return clean, skipped
}

func malformed(e eventsDomain.MetricEvent) bool {
	if e.CreatedAt.IsZero() {
		return true
	}
	if e.AdSpend < 0 || e.RevenueGenerated < 0 {
		return true
	}
	if e.Views < 0 || e.Likes < 0 || e.Comments < 0 || e.Shares < 0 || e.Saves < 0 || e.Clicks < 0 {
		return true
	}
	return false
}

// buildDailyBuckets reduces events into one bucket per window day key.
// Days without events produce zero-valued buckets so trend series have no
// gaps. Ratios are derived once from the summed totals, never averaged from
// per-event values.
func (uc *RollupUseCase) buildDailyBuckets(tenantID string, w domain.Window, events []eventsDomain.MetricEvent) []domain.DailyBucket {
	byDay := make(map[string][]eventsDomain.MetricEvent, len(w.BucketKeys))
	for _, e := range events {
		key := uc.dayKey(e.CreatedAt)
		byDay[key] = append(byDay[key], e)
	}

	buckets := make([]domain.DailyBucket, 0, len(w.BucketKeys))
	for _, key := range w.BucketKeys {
		buckets = append(buckets, uc.reduceDay(tenantID, key, byDay[key]))
	}
	return buckets
}

func (uc *RollupUseCase) reduceDay(tenantID, date string, events []eventsDomain.MetricEvent) domain.DailyBucket {
	b := domain.DailyBucket{
		TenantID:          tenantID,
		Date:              date,
		PlatformBreakdown: make(map[string]domain.PlatformTotals),
	}

	for _, e := range events {
		b.TotalRevenue += e.RevenueGenerated
		b.TotalSpend += e.AdSpend

		p := b.PlatformBreakdown[e.Platform]
		p.Revenue += e.RevenueGenerated
		p.Spend += e.AdSpend
		b.PlatformBreakdown[e.Platform] = p
	}

	b.ROIPercent = domain.ROIPercent(b.TotalRevenue, b.TotalSpend)
	for platform, p := range b.PlatformBreakdown {
		p.ROIPercent = domain.ROIPercent(p.Revenue, p.Spend)
		b.PlatformBreakdown[platform] = p
	}

	return b
}

// buildChannelBuckets rolls the whole window up per platform. Per-platform
// partial sums are independent, so each platform is reduced on its own
// goroutine; results land in a slice indexed by lexical platform order, which
// fixes the merge order and keeps float output deterministic.
func (uc *RollupUseCase) buildChannelBuckets(tenantID string, events []eventsDomain.MetricEvent) ([]domain.ChannelBucket, error) {
	byPlatform := make(map[string][]eventsDomain.MetricEvent)
	for _, e := range events {
		byPlatform[e.Platform] = append(byPlatform[e.Platform], e)
	}

	platforms := make([]string, 0, len(byPlatform))
	for p := range byPlatform {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	buckets := make([]domain.ChannelBucket, len(platforms))

	var g errgroup.Group
	for i, platform := range platforms {
		i, platform := i, platform
		g.Go(func() error {
			b := domain.ChannelBucket{
				TenantID: tenantID,
				Platform: platform,
			}
			for _, e := range byPlatform[platform] {
				b.TotalRevenue += e.RevenueGenerated
				b.TotalSpend += e.AdSpend
				b.TotalViews += e.Views
				b.TotalClicks += e.Clicks
			}
			b.AvgROI = domain.ROIPercent(b.TotalRevenue, b.TotalSpend)
			buckets[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	applyEfficiencyScores(buckets)
	sortChannels(buckets)
	return buckets, nil
}

// applyEfficiencyScores normalizes each platform's ROI against the best
// defined, positive ROI in the window: clamp(roi/best*100, 0, 100). With no
// positive best, or an undefined ROI, the score is 0.
func applyEfficiencyScores(buckets []domain.ChannelBucket) {
	best := 0.0
	for _, b := range buckets {
		if b.AvgROI.Defined && b.AvgROI.Value > best {
			best = b.AvgROI.Value
		}
	}

	for i := range buckets {
		if best == 0 || !buckets[i].AvgROI.Defined {
			buckets[i].EfficiencyScore = 0
			continue
		}
		score := buckets[i].AvgROI.Value / best * 100
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		buckets[i].EfficiencyScore = score
	}
}

// sortChannels orders by AvgROI descending, defined before undefined, ties
// broken by platform name ascending for stable output.
func sortChannels(buckets []domain.ChannelBucket) {
	sort.Slice(buckets, func(i, j int) bool {
		a, b := buckets[i], buckets[j]
		if a.AvgROI.Defined != b.AvgROI.Defined {
			return a.AvgROI.Defined
		}
		if a.AvgROI.Defined && a.AvgROI.Value != b.AvgROI.Value {
			return a.AvgROI.Value > b.AvgROI.Value
		}
		return a.Platform < b.Platform
	})
}

func windowTotals(events []eventsDomain.MetricEvent) (revenue, spend float64, views, clicks int64) {
	for _, e := range events {
		revenue += e.RevenueGenerated
		spend += e.AdSpend
		views += e.Views
		clicks += e.Clicks
	}
	return revenue, spend, views, clicks
}
