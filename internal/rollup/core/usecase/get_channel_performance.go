package usecase

import (
	"context"

	"marketing-rollup-service/internal/rollup/core/domain"
)

// GetChannelPerformance rolls the window up per platform, ordered by AvgROI
// descending with name ties broken lexically.
func (uc *RollupUseCase) GetChannelPerformance(ctx context.Context, in QueryInput) (*domain.ChannelReport, error) {
	w, events, skipped, err := uc.load(ctx, in)
	if err != nil {
		return nil, err
	}

	channels, err := uc.buildChannelBuckets(in.TenantID, events)
	if err != nil {
		return nil, err
	}

	return &domain.ChannelReport{
		Meta:     uc.meta(w, skipped),
		Channels: channels,
	}, nil
}
