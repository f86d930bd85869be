package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	httpadapter "marketing-rollup-service/internal/rollup/adapters/http/fiber"
	"marketing-rollup-service/internal/rollup/core/domain"
	"marketing-rollup-service/internal/rollup/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// Fake usecase implementing the interface the handler depends on.
type fakeRollupUseCase struct {
	OverviewFn func(ctx context.Context, in usecase.QueryInput) (*domain.OverviewReport, error)
	TrendsFn   func(ctx context.Context, in usecase.QueryInput) (*domain.TrendsReport, error)
	ChannelsFn func(ctx context.Context, in usecase.QueryInput) (*domain.ChannelReport, error)
	RevenueFn  func(ctx context.Context, in usecase.QueryInput) (*domain.RevenueBySourceReport, error)
	CostsFn    func(ctx context.Context, in usecase.QueryInput) (*domain.CostBreakdownReport, error)
	lastInput  usecase.QueryInput
	called     bool
}

func (f *fakeRollupUseCase) GetOverview(ctx context.Context, in usecase.QueryInput) (*domain.OverviewReport, error) {
	f.called = true
	f.lastInput = in
	if f.OverviewFn != nil {
		return f.OverviewFn(ctx, in)
	}
	return &domain.OverviewReport{}, nil
}

func (f *fakeRollupUseCase) GetTrends(ctx context.Context, in usecase.QueryInput) (*domain.TrendsReport, error) {
	f.called = true
	f.lastInput = in
	if f.TrendsFn != nil {
		return f.TrendsFn(ctx, in)
	}
	return &domain.TrendsReport{}, nil
}

func (f *fakeRollupUseCase) GetChannelPerformance(ctx context.Context, in usecase.QueryInput) (*domain.ChannelReport, error) {
	f.called = true
	f.lastInput = in
	if f.ChannelsFn != nil {
		return f.ChannelsFn(ctx, in)
	}
	return &domain.ChannelReport{}, nil
}

func (f *fakeRollupUseCase) GetRevenueBySource(ctx context.Context, in usecase.QueryInput) (*domain.RevenueBySourceReport, error) {
	f.called = true
	f.lastInput = in
	if f.RevenueFn != nil {
		return f.RevenueFn(ctx, in)
	}
	return &domain.RevenueBySourceReport{}, nil
}

func (f *fakeRollupUseCase) GetCostBreakdown(ctx context.Context, in usecase.QueryInput) (*domain.CostBreakdownReport, error) {
	f.called = true
	f.lastInput = in
	if f.CostsFn != nil {
		return f.CostsFn(ctx, in)
	}
	return &domain.CostBreakdownReport{}, nil
}

func setupApp(uc httpadapter.RollupUseCase) *fiber.App {
	app := fiber.New()
	httpadapter.NewDashboardHandler(uc).Register(app)
	return app
}

func doGet(t *testing.T, app *fiber.App, path string, params url.Values) (*http.Response, []byte) {
	t.Helper()

	target := path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, body
}

func dashboardParams() url.Values {
	params := url.Values{}
	params.Set("tenant_id", "t1")
	params.Set("range", "7d")
	return params
}

// ------------------------------------------------------------
// SUCCESS: overview
// ------------------------------------------------------------

func TestGetOverview_Success(t *testing.T) {
	uc := &fakeRollupUseCase{
		OverviewFn: func(ctx context.Context, in usecase.QueryInput) (*domain.OverviewReport, error) {
			if in.TenantID != "t1" {
				t.Fatalf("expected tenant t1, got %s", in.TenantID)
			}
			if in.Range != domain.Range7d {
				t.Fatalf("expected range 7d, got %s", in.Range)
			}
			return &domain.OverviewReport{
				Meta:         domain.Meta{Range: domain.Range7d, StartDate: "2024-08-17", EndDate: "2024-08-24"},
				TotalRevenue: 400,
				TotalSpend:   150,
				TotalROI:     domain.DefinedRatio(166.67),
				TotalViews:   1000,
				TotalClicks:  50,
			}, nil
		},
	}

	app := setupApp(uc)

	resp, body := doGet(t, app, "/dashboard/overview", dashboardParams())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d (body: %s)", resp.StatusCode, string(body))
	}

	var respJSON map[string]any
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}

	if respJSON["total_revenue"].(float64) != 400 {
		t.Errorf("expected total_revenue=400, got %v", respJSON["total_revenue"])
	}
	if respJSON["roi_percent"].(float64) != 166.67 {
		t.Errorf("expected roi_percent=166.67, got %v", respJSON["roi_percent"])
	}
}

// ------------------------------------------------------------
// Undefined ratios serialize as null, never 0
// ------------------------------------------------------------

func TestGetOverview_UndefinedROIIsNull(t *testing.T) {
	uc := &fakeRollupUseCase{
		OverviewFn: func(ctx context.Context, in usecase.QueryInput) (*domain.OverviewReport, error) {
			return &domain.OverviewReport{TotalROI: domain.UndefinedRatio()}, nil
		},
	}

	app := setupApp(uc)

	resp, body := doGet(t, app, "/dashboard/overview", dashboardParams())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var respJSON map[string]any
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}

	v, present := respJSON["roi_percent"]
	if !present {
		t.Fatalf("roi_percent must always be present")
	}
	if v != nil {
		t.Errorf("expected roi_percent=null, got %v", v)
	}
}

// ------------------------------------------------------------
// Missing tenant -> 400, usecase never called
// ------------------------------------------------------------

func TestDashboard_MissingTenant(t *testing.T) {
	paths := []string{
		"/dashboard/overview",
		"/dashboard/trends",
		"/dashboard/channels",
		"/dashboard/revenue",
		"/dashboard/costs",
	}

	for _, path := range paths {
		uc := &fakeRollupUseCase{}
		app := setupApp(uc)

		params := url.Values{}
		params.Set("range", "7d")

		resp, body := doGet(t, app, path, params)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d (body: %s)", path, resp.StatusCode, string(body))
		}
		if uc.called {
			t.Errorf("%s: usecase must not be called without a tenant", path)
		}

		var respJSON map[string]any
		if err := json.Unmarshal(body, &respJSON); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if respJSON["error"] != "invalid_query" {
			t.Errorf("%s: expected error=invalid_query, got %v", path, respJSON["error"])
		}
	}
}

// ------------------------------------------------------------
// Usecase validation errors -> 400
// ------------------------------------------------------------

func TestGetTrends_InvalidRange(t *testing.T) {
	uc := &fakeRollupUseCase{
		TrendsFn: func(ctx context.Context, in usecase.QueryInput) (*domain.TrendsReport, error) {
			return nil, usecase.ErrInvalidRange
		},
	}

	app := setupApp(uc)

	params := url.Values{}
	params.Set("tenant_id", "t1")
	params.Set("range", "365d")

	resp, body := doGet(t, app, "/dashboard/trends", params)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d (body: %s)", resp.StatusCode, string(body))
	}

	var respJSON map[string]any
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON["error"] != "invalid_query" {
		t.Errorf("expected error=invalid_query, got %v", respJSON["error"])
	}
}

// ------------------------------------------------------------
// Other usecase errors -> 500
// ------------------------------------------------------------

func TestGetChannelPerformance_InternalError(t *testing.T) {
	uc := &fakeRollupUseCase{
		ChannelsFn: func(ctx context.Context, in usecase.QueryInput) (*domain.ChannelReport, error) {
			return nil, errors.New("db failure")
		},
	}

	app := setupApp(uc)

	resp, body := doGet(t, app, "/dashboard/channels", dashboardParams())
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d (body: %s)", resp.StatusCode, string(body))
	}

	var respJSON map[string]any
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON["error"] != "internal_server_error" {
		t.Errorf("expected error=internal_server_error, got %v", respJSON["error"])
	}
}

// ------------------------------------------------------------
// Trends serialization: meta + per-day roi_percent null handling
// ------------------------------------------------------------

func TestGetTrends_Serialization(t *testing.T) {
	uc := &fakeRollupUseCase{
		TrendsFn: func(ctx context.Context, in usecase.QueryInput) (*domain.TrendsReport, error) {
			return &domain.TrendsReport{
				Meta: domain.Meta{Range: domain.Range7d, StartDate: "2024-08-17", EndDate: "2024-08-24", SkippedEvents: 1},
				Days: []domain.DailyBucket{
					{
						Date:         "2024-08-23",
						TotalRevenue: 300,
						TotalSpend:   100,
						ROIPercent:   domain.DefinedRatio(200),
						PlatformBreakdown: map[string]domain.PlatformTotals{
							"youtube": {Revenue: 100, Spend: 50, ROIPercent: domain.DefinedRatio(100)},
						},
					},
					{
						Date:              "2024-08-24",
						ROIPercent:        domain.UndefinedRatio(),
						PlatformBreakdown: map[string]domain.PlatformTotals{},
					},
				},
			}, nil
		},
	}

	app := setupApp(uc)

	resp, body := doGet(t, app, "/dashboard/trends", dashboardParams())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var respJSON struct {
		Meta struct {
			Range         string `json:"range"`
			SkippedEvents int    `json:"skipped_events"`
		} `json:"meta"`
		Days []struct {
			Date       string   `json:"date"`
			ROIPercent *float64 `json:"roi_percent"`
		} `json:"days"`
	}
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}

	if respJSON.Meta.Range != "7d" || respJSON.Meta.SkippedEvents != 1 {
		t.Errorf("unexpected meta: %+v", respJSON.Meta)
	}
	if len(respJSON.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(respJSON.Days))
	}
	if respJSON.Days[0].ROIPercent == nil || *respJSON.Days[0].ROIPercent != 200 {
		t.Errorf("expected day 0 roi_percent=200, got %v", respJSON.Days[0].ROIPercent)
	}
	if respJSON.Days[1].ROIPercent != nil {
		t.Errorf("expected day 1 roi_percent=null, got %v", *respJSON.Days[1].ROIPercent)
	}
}
