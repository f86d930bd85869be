package usecase

import (
	"context"

	"marketing-rollup-service/internal/rollup/core/domain"
)

// GetTrends returns one DailyBucket per window day key in ascending date
// order, including zero-valued days.
func (uc *RollupUseCase) GetTrends(ctx context.Context, in QueryInput) (*domain.TrendsReport, error) {
	w, events, skipped, err := uc.load(ctx, in)
	if err != nil {
		return nil, err
	}

	return &domain.TrendsReport{
		Meta: uc.meta(w, skipped),
		Days: uc.buildDailyBuckets(in.TenantID, w, events),
	}, nil
}
