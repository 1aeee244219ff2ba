package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"insights/internal/models"
	"insights/internal/services/insights"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInsightsService struct {
	lastParams insights.ListParams
	lastStart  *time.Time
	lastEnd    *time.Time
}

func (s *stubInsightsService) Summary(ctx context.Context) (*insights.Summary, error) {
	return &insights.Summary{TotalAccounts: 42, ActiveAccounts: 40}, nil
}

func (s *stubInsightsService) Records(ctx context.Context, params insights.ListParams) (*insights.PaginatedRecords, error) {
	s.lastParams = params
	return &insights.PaginatedRecords{
		Items:      []insights.AccountInsights{},
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalItems: 0,
		TotalPages: 1,
	}, nil
}

func (s *stubInsightsService) RawRecords(ctx context.Context) ([]insights.AccountRecord, error) {
	return []insights.AccountRecord{}, nil
}

func (s *stubInsightsService) InvalidRows(ctx context.Context) ([]models.InvalidRow, error) {
	return []models.InvalidRow{}, nil
}

func (s *stubInsightsService) HealthByStatus(ctx context.Context) ([]insights.HealthByStatusItem, error) {
	return []insights.HealthByStatusItem{
		{Status: "healthy", AccountCount: 5},
		{Status: "at_risk", AccountCount: 2},
		{Status: "churned", AccountCount: 1},
	}, nil
}

func (s *stubInsightsService) RevenueByStatus(ctx context.Context) ([]insights.RevenueByStatusItem, error) {
	return []insights.RevenueByStatusItem{}, nil
}

func (s *stubInsightsService) NotificationsOverTime(ctx context.Context, start, end *time.Time) ([]insights.NotificationsOverTimeItem, error) {
	s.lastStart = start
	s.lastEnd = end
	return []insights.NotificationsOverTimeItem{}, nil
}

func (s *stubInsightsService) Counts(ctx context.Context) (int64, int64, error) {
	return 42, 3, nil
}

func newTestApp(svc insights.Service) *fiber.App {
	h := NewInsightsHandler(svc)
	app := fiber.New()
	app.Get("/health", h.Health)
	app.Get("/summary", h.GetSummary)
	app.Get("/records", h.GetRecords)
	app.Get("/analytics/health-by-status", h.GetHealthByStatus)
	app.Get("/analytics/notifications-over-time", h.GetNotificationsOverTime)
	return app
}

func decode(t *testing.T, body io.Reader, dest interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(dest))
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(&stubInsightsService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	decode(t, resp.Body, &payload)
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, float64(42), payload["records_loaded"])
	assert.Equal(t, float64(3), payload["invalid_rows"])
}

func TestSummaryEndpoint(t *testing.T) {
	app := newTestApp(&stubInsightsService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/summary", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	decode(t, resp.Body, &payload)
	assert.Contains(t, payload, "total_accounts")
	assert.Equal(t, float64(42), payload["total_accounts"])
}

func TestRecordsEndpoint_QueryTranslation(t *testing.T) {
	svc := &stubInsightsService{}
	app := newTestApp(svc)

	target := "/records?page=2&page_size=25&subscription_status=active&min_health=60&search=acme"
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, svc.lastParams.Page)
	assert.Equal(t, 25, svc.lastParams.PageSize)
	assert.Equal(t, "active", svc.lastParams.SubscriptionStatus)
	require.NotNil(t, svc.lastParams.MinHealth)
	assert.Equal(t, 60, *svc.lastParams.MinHealth)
	assert.Equal(t, "acme", svc.lastParams.Search)
}

func TestRecordsEndpoint_BadParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "page zero", target: "/records?page=0"},
		{name: "page size too large", target: "/records?page_size=500"},
		{name: "min health above 100", target: "/records?min_health=150"},
		{name: "min health not a number", target: "/records?min_health=high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&stubInsightsService{})

			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var payload map[string]interface{}
			decode(t, resp.Body, &payload)
			assert.Contains(t, payload, "error")
		})
	}
}

func TestHealthByStatusEndpoint(t *testing.T) {
	app := newTestApp(&stubInsightsService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/analytics/health-by-status", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []map[string]interface{}
	decode(t, resp.Body, &items)
	require.Len(t, items, 3)
	assert.Equal(t, "healthy", items[0]["status"])
	assert.Equal(t, "churned", items[2]["status"])
}

func TestNotificationsOverTimeEndpoint_Dates(t *testing.T) {
	svc := &stubInsightsService{}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(
		"GET", "/analytics/notifications-over-time?start_date=2025-01-02&end_date=2025-01-05", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, svc.lastStart)
	require.NotNil(t, svc.lastEnd)
	assert.Equal(t, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), *svc.lastStart)
	assert.Equal(t, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), *svc.lastEnd)
}

func TestNotificationsOverTimeEndpoint_BadDate(t *testing.T) {
	app := newTestApp(&stubInsightsService{})

	resp, err := app.Test(httptest.NewRequest(
		"GET", "/analytics/notifications-over-time?start_date=02-01-2025", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
