package handlers

import (
	"strconv"
	"time"

	"insights/internal/services/insights"
	"insights/internal/utils"
	"insights/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	dateLayout      = "2006-01-02"
)

// InsightsHandler serves the read-only dashboard endpoints.
type InsightsHandler struct {
	service insights.Service
}

func NewInsightsHandler(service insights.Service) *InsightsHandler {
	return &InsightsHandler{
		service: service,
	}
}

// Health reports the service status and how much of the last CSV
// export made it into the snapshot.
func (h *InsightsHandler) Health(c *fiber.Ctx) error {
	loaded, invalid, err := h.service.Counts(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to read snapshot counts")
	}
	return c.JSON(fiber.Map{
		"status":         "ok",
		"records_loaded": loaded,
		"invalid_rows":   invalid,
	})
}

// GetSummary returns the aggregated KPIs for the dashboard cards.
func (h *InsightsHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to get summary")
	}
	return c.JSON(summary)
}

// GetRecords returns one page of the filterable account table.
func (h *InsightsHandler) GetRecords(c *fiber.Ctx) error {
	pageParams, err := utils.ParsePageParams(c, defaultPageSize, maxPageSize)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	params := insights.ListParams{
		Page:               pageParams.Page,
		PageSize:           pageParams.PageSize,
		SubscriptionStatus: c.Query("subscription_status"),
		Search:             c.Query("search"),
	}

	if raw := c.Query("min_health"); raw != "" {
		minHealth, err := strconv.Atoi(raw)
		if err != nil || minHealth < 0 || minHealth > 100 {
			return response.BadRequest(c, "min_health must be an integer between 0 and 100")
		}
		params.MinHealth = &minHealth
	}

	page, err := h.service.Records(c.Context(), params)
	if err != nil {
		return response.ServerError(c, "Failed to get records")
	}
	return c.JSON(page)
}

// GetRawRecords returns every valid record from the last ingest,
// without derived metrics.
func (h *InsightsHandler) GetRawRecords(c *fiber.Ctx) error {
	records, err := h.service.RawRecords(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to get raw records")
	}
	return c.JSON(records)
}

// GetInvalidRows returns the CSV rows rejected by the last ingest.
func (h *InsightsHandler) GetInvalidRows(c *fiber.Ctx) error {
	rows, err := h.service.InvalidRows(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to get invalid rows")
	}
	return c.JSON(rows)
}

// GetHealthByStatus returns account counts per churn-risk bucket.
func (h *InsightsHandler) GetHealthByStatus(c *fiber.Ctx) error {
	items, err := h.service.HealthByStatus(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to get health distribution")
	}
	return c.JSON(items)
}

// GetRevenueByStatus returns billed totals per churn-risk bucket.
func (h *InsightsHandler) GetRevenueByStatus(c *fiber.Ctx) error {
	items, err := h.service.RevenueByStatus(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to get revenue distribution")
	}
	return c.JSON(items)
}

// GetNotificationsOverTime returns the billed time series, optionally
// bounded by start_date / end_date (inclusive).
func (h *InsightsHandler) GetNotificationsOverTime(c *fiber.Ctx) error {
	var start, end *time.Time

	if raw := c.Query("start_date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return response.BadRequest(c, "start_date must be formatted YYYY-MM-DD")
		}
		start = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return response.BadRequest(c, "end_date must be formatted YYYY-MM-DD")
		}
		end = &t
	}

	items, err := h.service.NotificationsOverTime(c.Context(), start, end)
	if err != nil {
		return response.ServerError(c, "Failed to get notifications series")
	}
	return c.JSON(items)
}
