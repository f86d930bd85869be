package fiber

import (
	"context"
	"errors"
	"net/http"

	"marketing-rollup-service/internal/rollup/core/domain"
	"marketing-rollup-service/internal/rollup/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RollupUseCase interface {
	GetOverview(ctx context.Context, in usecase.QueryInput) (*domain.OverviewReport, error)
	GetTrends(ctx context.Context, in usecase.QueryInput) (*domain.TrendsReport, error)
	GetChannelPerformance(ctx context.Context, in usecase.QueryInput) (*domain.ChannelReport, error)
	GetRevenueBySource(ctx context.Context, in usecase.QueryInput) (*domain.RevenueBySourceReport, error)
	GetCostBreakdown(ctx context.Context, in usecase.QueryInput) (*domain.CostBreakdownReport, error)
}

type DashboardHandler struct {
	uc RollupUseCase
}

func NewDashboardHandler(uc RollupUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Register(app *fiber.App) {
	app.Get("/dashboard/overview", h.GetOverview)
	app.Get("/dashboard/trends", h.GetTrends)
	app.Get("/dashboard/channels", h.GetChannelPerformance)
	app.Get("/dashboard/revenue", h.GetRevenueBySource)
	app.Get("/dashboard/costs", h.GetCostBreakdown)
}

// parseInput reads the shared tenant_id/range query parameters. The tenant is
// rejected here as well as in the usecase: scoping is never optional.
func parseInput(c *fiber.Ctx) (usecase.QueryInput, bool) {
	tenantID := c.Query("tenant_id", "")
	if tenantID == "" {
		return usecase.QueryInput{}, false
	}
	return usecase.QueryInput{
		TenantID: tenantID,
		Range:    domain.RangeToken(c.Query("range", "")),
	}, true
}

func (h *DashboardHandler) respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrMissingTenant),
		errors.Is(err, usecase.ErrInvalidRange):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func missingTenant(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: "tenant_id is required",
	})
}

// GetOverview godoc
// @Summary Window overview totals
// @Description Sums revenue, spend, views and clicks over the resolved window and derives ROI once from the totals
// @Tags Dashboard
// @Produce json
// @Param tenant_id query string true "Tenant id"
// @Param range query string true "Range token: 7d | 30d | 90d"
// @Success 200 {object} OverviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/overview [get]
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	in, ok := parseInput(c)
	if !ok {
		return missingTenant(c)
	}

	res, err := h.uc.GetOverview(c.UserContext(), in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.Status(http.StatusOK).JSON(OverviewResponse{
		Meta:         toMetaResponse(res.Meta),
		TotalRevenue: res.TotalRevenue,
		TotalSpend:   res.TotalSpend,
		ROIPercent:   nullableRatio(res.TotalROI),
		TotalViews:   res.TotalViews,
		TotalClicks:  res.TotalClicks,
	})
}

// GetTrends godoc
// @Summary Daily trend series
// @Description One bucket per day of the window in ascending order, zero-valued days included
// @Tags Dashboard
// @Produce json
// @Param tenant_id query string true "Tenant id"
// @Param range query string true "Range token: 7d | 30d | 90d"
// @Success 200 {object} TrendsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/trends [get]
func (h *DashboardHandler) GetTrends(c *fiber.Ctx) error {
	in, ok := parseInput(c)
	if !ok {
		return missingTenant(c)
	}

	res, err := h.uc.GetTrends(c.UserContext(), in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toTrendsResponse(res))
}

// GetChannelPerformance godoc
// @Summary Per-platform window rollup
// @Description Platforms ordered by avg_roi descending with efficiency scores normalized against the best platform
// @Tags Dashboard
// @Produce json
// @Param tenant_id query string true "Tenant id"
// @Param range query string true "Range token: 7d | 30d | 90d"
// @Success 200 {object} ChannelsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/channels [get]
func (h *DashboardHandler) GetChannelPerformance(c *fiber.Ctx) error {
	in, ok := parseInput(c)
	if !ok {
		return missingTenant(c)
	}

	res, err := h.uc.GetChannelPerformance(c.UserContext(), in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toChannelsResponse(res))
}

// GetRevenueBySource godoc
// @Summary Revenue by platform
// @Tags Dashboard
// @Produce json
// @Param tenant_id query string true "Tenant id"
// @Param range query string true "Range token: 7d | 30d | 90d"
// @Success 200 {object} RevenueBySourceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/revenue [get]
func (h *DashboardHandler) GetRevenueBySource(c *fiber.Ctx) error {
	in, ok := parseInput(c)
	if !ok {
		return missingTenant(c)
	}

	res, err := h.uc.GetRevenueBySource(c.UserContext(), in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toRevenueResponse(res))
}

// GetCostBreakdown godoc
// @Summary Ad spend by platform
// @Tags Dashboard
// @Produce json
// @Param tenant_id query string true "Tenant id"
// @Param range query string true "Range token: 7d | 30d | 90d"
// @Success 200 {object} CostBreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/costs [get]
func (h *DashboardHandler) GetCostBreakdown(c *fiber.Ctx) error {
	in, ok := parseInput(c)
	if !ok {
		return missingTenant(c)
	}

	res, err := h.uc.GetCostBreakdown(c.UserContext(), in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toCostsResponse(res))
}
