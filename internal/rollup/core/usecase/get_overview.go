package usecase

import (
	"context"

	"marketing-rollup-service/internal/rollup/core/domain"
)

// GetOverview sums the whole resolved window into one summary record.
func (uc *RollupUseCase) GetOverview(ctx context.Context, in QueryInput) (*domain.OverviewReport, error) {
	w, events, skipped, err := uc.load(ctx, in)
	if err != nil {
		return nil, err
	}

	revenue, spend, views, clicks := windowTotals(events)

	return &domain.OverviewReport{
		Meta:         uc.meta(w, skipped),
		TotalRevenue: revenue,
		TotalSpend:   spend,
		TotalROI:     domain.ROIPercent(revenue, spend),
		TotalViews:   views,
		TotalClicks:  clicks,
	}, nil
}
