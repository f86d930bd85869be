package ports

import (
	"context"
	"time"

	"marketing-rollup-service/internal/events/core/domain"
)

// EventStorePort is the single read boundary of the rollup engine.
type EventStorePort interface {
	// FetchEvents returns all events owned by tenantID with
	// from <= created_at < to. Order is arbitrary; callers sort themselves.
	FetchEvents(ctx context.Context, tenantID string, from, to time.Time) ([]domain.MetricEvent, error)
}
