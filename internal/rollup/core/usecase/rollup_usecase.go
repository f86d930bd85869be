package usecase

import (
	"context"
	"errors"
	"time"

	eventsDomain "marketing-rollup-service/internal/events/core/domain"
	eventsPorts "marketing-rollup-service/internal/events/core/ports"
	"marketing-rollup-service/internal/rollup/core/domain"
)

var (
	ErrMissingTenant = errors.New("tenant id is required")
	ErrInvalidRange  = errors.New("invalid range token")
)

// Config is the engine's explicit configuration. Nothing here is read from
// ambient state, so deployments and tests can run with different settings
// side by side.
type Config struct {
	// Location is the single time zone used for day bucketing. Defaults to UTC.
	Location *time.Location

	// Ranges maps each accepted range token to its look-back length in days.
	// The same map gates every operation.
	Ranges map[domain.RangeToken]int

	// Now supplies the reference instant for window resolution. Defaults to
	// time.Now.
	Now func() time.Time
}

func DefaultRanges() map[domain.RangeToken]int {
	return map[domain.RangeToken]int{
		domain.Range7d:  7,
		domain.Range30d: 30,
		domain.Range90d: 90,
	}
}

type RollupUseCase struct {
	store eventsPorts.EventStorePort
	cfg   Config
}

func NewRollupUseCase(store eventsPorts.EventStorePort, cfg Config) *RollupUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Ranges == nil {
		cfg.Ranges = DefaultRanges()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &RollupUseCase{store: store, cfg: cfg}
}

// QueryInput is the shared parameter set of every query operation.
type QueryInput struct {
	TenantID string
	Range    domain.RangeToken
}

// load validates the input, resolves the window and fetches the tenant's
// events for it. Every operation goes through here so tenant scoping and
// window policy cannot drift between endpoints.
func (uc *RollupUseCase) load(ctx context.Context, in QueryInput) (domain.Window, []eventsDomain.MetricEvent, int, error) {
	if in.TenantID == "" {
		return domain.Window{}, nil, 0, ErrMissingTenant
	}

	w, err := uc.resolveWindow(in.Range)
	if err != nil {
		return domain.Window{}, nil, 0, err
	}

	events, err := uc.store.FetchEvents(ctx, in.TenantID, w.StartDate, w.FetchUpperBound())
	if err != nil {
		return domain.Window{}, nil, 0, err
	}

	clean, skipped := sanitizeEvents(events)
	return w, clean, skipped, nil
}

func (uc *RollupUseCase) meta(w domain.Window, skipped int) domain.Meta {
	return domain.Meta{
		Range:         w.Range,
		StartDate:     w.StartDate.Format(domain.DayKeyFormat),
		EndDate:       w.EndDate.Format(domain.DayKeyFormat),
		SkippedEvents: skipped,
	}
}
