package usecase

import (
	"context"
	"sort"

	eventsDomain "marketing-rollup-service/internal/events/core/domain"
	"marketing-rollup-service/internal/rollup/core/domain"
)

// GetRevenueBySource is the channel rollup restricted to the revenue family:
// per-platform revenue and its share of the window total.
func (uc *RollupUseCase) GetRevenueBySource(ctx context.Context, in QueryInput) (*domain.RevenueBySourceReport, error) {
	w, events, skipped, err := uc.load(ctx, in)
	if err != nil {
		return nil, err
	}

	totals := sumByPlatform(events, func(e eventsDomain.MetricEvent) float64 {
		return e.RevenueGenerated
	})

	var totalRevenue float64
	for _, t := range totals {
		totalRevenue += t.amount
	}

	sources := make([]domain.RevenueSource, 0, len(totals))
	for _, t := range totals {
		sources = append(sources, domain.RevenueSource{
			Platform:     t.platform,
			Revenue:      t.amount,
			SharePercent: domain.SharePercent(t.amount, totalRevenue),
		})
	}

	sort.Slice(sources, func(i, j int) bool {
		if sources[i].Revenue != sources[j].Revenue {
			return sources[i].Revenue > sources[j].Revenue
		}
		return sources[i].Platform < sources[j].Platform
	})

	return &domain.RevenueBySourceReport{
		Meta:         uc.meta(w, skipped),
		TotalRevenue: totalRevenue,
		Sources:      sources,
	}, nil
}

// GetCostBreakdown is the same machinery restricted to spend, with a
// per-platform cost-per-click derived from summed spend and summed clicks.
func (uc *RollupUseCase) GetCostBreakdown(ctx context.Context, in QueryInput) (*domain.CostBreakdownReport, error) {
	w, events, skipped, err := uc.load(ctx, in)
	if err != nil {
		return nil, err
	}

	totals := sumByPlatform(events, func(e eventsDomain.MetricEvent) float64 {
		return e.AdSpend
	})

	clicksByPlatform := make(map[string]int64)
	for _, e := range events {
		clicksByPlatform[e.Platform] += e.Clicks
	}

	var totalSpend float64
	for _, t := range totals {
		totalSpend += t.amount
	}

	slices := make([]domain.CostSlice, 0, len(totals))
	for _, t := range totals {
		slices = append(slices, domain.CostSlice{
			Platform:     t.platform,
			Spend:        t.amount,
			SharePercent: domain.SharePercent(t.amount, totalSpend),
			CostPerClick: domain.RatePer(t.amount, clicksByPlatform[t.platform]),
		})
	}

	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Spend != slices[j].Spend {
			return slices[i].Spend > slices[j].Spend
		}
		return slices[i].Platform < slices[j].Platform
	})

	return &domain.CostBreakdownReport{
		Meta:       uc.meta(w, skipped),
		TotalSpend: totalSpend,
		Slices:     slices,
	}, nil
}

type platformAmount struct {
	platform string
	amount   float64
}

// sumByPlatform folds one money field per platform, returning the partials in
// lexical platform order so downstream float math is deterministic.
func sumByPlatform(events []eventsDomain.MetricEvent, pick func(eventsDomain.MetricEvent) float64) []platformAmount {
	byPlatform := make(map[string]float64)
	for _, e := range events {
		byPlatform[e.Platform] += pick(e)
	}

	platforms := make([]string, 0, len(byPlatform))
	for p := range byPlatform {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	out := make([]platformAmount, 0, len(platforms))
	for _, p := range platforms {
		out = append(out, platformAmount{platform: p, amount: byPlatform[p]})
	}
	return out
}
