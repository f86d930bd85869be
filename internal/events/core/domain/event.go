package domain

import (
	"time"

	"github.com/google/uuid"
)

// MetricEvent is one raw performance row exactly as the ingestion pipeline
// wrote it. The rollup engine treats these as immutable input.
type MetricEvent struct {
	ID              uuid.UUID
	TenantID        string
	Platform        string
	ContentType     string
	ContentCategory string

	Views    int64
	Likes    int64
	Comments int64
	Shares   int64
	Saves    int64
	Clicks   int64

	AdSpend          float64
	RevenueGenerated float64

	// Per-event ratios written by the producer. Informational only: every
	// aggregate ratio is re-derived from summed numerators and denominators,
	// never from these fields.
	CostPerClick      float64
	CostPerImpression float64
	ROIPercentage     float64
	ROASRatio         float64

	// CreatedAt is the ingestion timestamp and the only field used for
	// bucketing and window filtering. A zero CreatedAt marks a malformed row.
	CreatedAt time.Time
	PostedAt  time.Time
	UpdatedAt time.Time
}
