package postgres

import (
	"context"
	"database/sql"
	"time"

	"marketing-rollup-service/internal/events/core/domain"
	"marketing-rollup-service/internal/events/core/ports"
)

type EventStore struct {
	db DB
}

func NewEventStore(db DB) *EventStore {
	return &EventStore{db: db}
}

var _ ports.EventStorePort = (*EventStore)(nil)

// SQL template
const fetchEventsSQL = `
SELECT
    id,
    tenant_id,
    platform,
    content_type,
    content_category,
    views,
    likes,
    comments,
    shares,
    saves,
    clicks,
    ad_spend,
    revenue_generated,
    cost_per_click,
    cost_per_impression,
    roi_percentage,
    roas_ratio,
    created_at,
    posted_at,
    updated_at
FROM metric_events
WHERE tenant_id = $1
  AND (created_at IS NULL OR (created_at >= $2 AND created_at < $3));
`

// FetchEvents returns one tenant's rows with from <= created_at < to.
// Rows with a NULL created_at are still returned (zero time.Time) so the
// engine can count them as malformed instead of losing them silently.
func (s *EventStore) FetchEvents(ctx context.Context, tenantID string, from, to time.Time) ([]domain.MetricEvent, error) {
	rows, err := s.db.QueryContext(ctx, fetchEventsSQL, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.MetricEvent

	for rows.Next() {
		var (
			e         domain.MetricEvent
			createdAt sql.NullTime
			postedAt  sql.NullTime
			updatedAt sql.NullTime
		)

		if err := rows.Scan(
			&e.ID,
			&e.TenantID,
			&e.Platform,
			&e.ContentType,
			&e.ContentCategory,
			&e.Views,
			&e.Likes,
			&e.Comments,
			&e.Shares,
			&e.Saves,
			&e.Clicks,
			&e.AdSpend,
			&e.RevenueGenerated,
			&e.CostPerClick,
			&e.CostPerImpression,
			&e.ROIPercentage,
			&e.ROASRatio,
			&createdAt,
			&postedAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}

		if createdAt.Valid {
			e.CreatedAt = createdAt.Time.UTC()
		}
		if postedAt.Valid {
			e.PostedAt = postedAt.Time.UTC()
		}
		if updatedAt.Valid {
			e.UpdatedAt = updatedAt.Time.UTC()
		}

		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
