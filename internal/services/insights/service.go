// Package insights serves the read side of the dashboard: summary
// KPIs, the paginated records table and the chart series. Aggregates
// are cached in Redis and invalidated whenever a new snapshot is
// ingested.
package insights

import (
	"context"
	"log"
	"math"
	"time"

	"insights/internal/models"
	"insights/internal/repositories"
	"insights/internal/repositories/cache"
	"insights/internal/utils"
)

// Cache keys. Ingest drops everything under CacheKeyPattern after a
// snapshot replace.
const (
	CacheKeyPattern          = "insights:*"
	cacheKeySummary          = "insights:summary"
	cacheKeyHealthByStatus   = "insights:health_by_status"
	cacheKeyRevenueByStatus  = "insights:revenue_by_status"
	cacheKeyNotificationsAll = "insights:notifications_over_time"
)

// churnBucketOrder fixes the order of the analytics payloads so the
// charts render consistently even for empty buckets.
var churnBucketOrder = []string{
	models.ChurnRiskHealthy,
	models.ChurnRiskAtRisk,
	models.ChurnRiskChurned,
}

type Service interface {
	Summary(ctx context.Context) (*Summary, error)
	Records(ctx context.Context, params ListParams) (*PaginatedRecords, error)
	RawRecords(ctx context.Context) ([]AccountRecord, error)
	InvalidRows(ctx context.Context) ([]models.InvalidRow, error)
	HealthByStatus(ctx context.Context) ([]HealthByStatusItem, error)
	RevenueByStatus(ctx context.Context) ([]RevenueByStatusItem, error)
	NotificationsOverTime(ctx context.Context, start, end *time.Time) ([]NotificationsOverTimeItem, error)
	Counts(ctx context.Context) (loaded, invalid int64, err error)
}

type service struct {
	accounts repositories.AccountRepository
	cache    *cache.CacheService
}

func NewService(accounts repositories.AccountRepository, cacheService *cache.CacheService) Service {
	return &service{
		accounts: accounts,
		cache:    cacheService,
	}
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	var cached Summary
	if s.cacheGet(ctx, cacheKeySummary, &cached) {
		return &cached, nil
	}

	stats, err := s.accounts.SummaryStats()
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalAccounts:            stats.TotalAccounts,
		ActiveAccounts:           stats.ActiveAccounts,
		InactiveAccounts:         stats.InactiveAccounts,
		TotalNotificationsBilled: stats.TotalNotificationsBilled,
		TotalMessagesProcessed:   stats.TotalMessagesProcessed,
		AtRiskAccounts:           stats.AtRiskAccounts,
		ChurnedAccounts:          stats.ChurnedAccounts,
	}
	if stats.ActiveAccounts > 0 {
		summary.AvgNotificationsBilledPerActive = round2(
			float64(stats.TotalNotificationsBilled) / float64(stats.ActiveAccounts))
	}
	if stats.TotalAccounts > 0 {
		summary.AvgMessagesPerAccount = round2(
			float64(stats.TotalMessagesProcessed) / float64(stats.TotalAccounts))
		summary.AvgHealthScore = round2(stats.AvgHealthScore)
	}

	s.cacheSet(ctx, cacheKeySummary, summary)
	return summary, nil
}

func (s *service) Records(ctx context.Context, params ListParams) (*PaginatedRecords, error) {
	filter := repositories.AccountFilter{
		MinHealth: params.MinHealth,
		Search:    params.Search,
	}
	// Anything other than the two known statuses means "no filter",
	// matching how the frontend sends an empty selector.
	if params.SubscriptionStatus == models.SubscriptionActive ||
		params.SubscriptionStatus == models.SubscriptionInactive {
		filter.SubscriptionStatus = params.SubscriptionStatus
	}

	offset := (params.Page - 1) * params.PageSize
	accounts, total, err := s.accounts.List(filter, offset, params.PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]AccountInsights, 0, len(accounts))
	for i := range accounts {
		items = append(items, newAccountInsights(&accounts[i]))
	}

	return &PaginatedRecords{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalItems: total,
		TotalPages: utils.TotalPages(total, params.PageSize),
	}, nil
}

func (s *service) RawRecords(ctx context.Context) ([]AccountRecord, error) {
	accounts, err := s.accounts.All()
	if err != nil {
		return nil, err
	}
	records := make([]AccountRecord, 0, len(accounts))
	for i := range accounts {
		records = append(records, newAccountRecord(&accounts[i]))
	}
	return records, nil
}

func (s *service) InvalidRows(ctx context.Context) ([]models.InvalidRow, error) {
	rows, err := s.accounts.InvalidRows()
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.InvalidRow{}
	}
	return rows, nil
}

func (s *service) HealthByStatus(ctx context.Context) ([]HealthByStatusItem, error) {
	var cached []HealthByStatusItem
	if s.cacheGet(ctx, cacheKeyHealthByStatus, &cached) {
		return cached, nil
	}

	rows, err := s.accounts.CountByChurnRisk()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ChurnRisk] = row.Count
	}

	items := make([]HealthByStatusItem, 0, len(churnBucketOrder))
	for _, status := range churnBucketOrder {
		items = append(items, HealthByStatusItem{
			Status:       status,
			AccountCount: counts[status],
		})
	}

	s.cacheSet(ctx, cacheKeyHealthByStatus, items)
	return items, nil
}

func (s *service) RevenueByStatus(ctx context.Context) ([]RevenueByStatusItem, error) {
	var cached []RevenueByStatusItem
	if s.cacheGet(ctx, cacheKeyRevenueByStatus, &cached) {
		return cached, nil
	}

	rows, err := s.accounts.BilledByChurnRisk()
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.ChurnRisk] = row.Total
	}

	items := make([]RevenueByStatusItem, 0, len(churnBucketOrder))
	for _, status := range churnBucketOrder {
		items = append(items, RevenueByStatusItem{
			Status:                   status,
			TotalNotificationsBilled: totals[status],
		})
	}

	s.cacheSet(ctx, cacheKeyRevenueByStatus, items)
	return items, nil
}

func (s *service) NotificationsOverTime(ctx context.Context, start, end *time.Time) ([]NotificationsOverTimeItem, error) {
	unbounded := start == nil && end == nil
	if unbounded {
		var cached []NotificationsOverTimeItem
		if s.cacheGet(ctx, cacheKeyNotificationsAll, &cached) {
			return cached, nil
		}
	}

	// Bounds default to the span of the loaded data; an empty dataset
	// yields an empty series rather than an error.
	minDate, maxDate, ok, err := s.accounts.ReportDateBounds()
	if err != nil {
		return nil, err
	}
	if !ok {
		return []NotificationsOverTimeItem{}, nil
	}
	if start == nil {
		start = &minDate
	}
	if end == nil {
		end = &maxDate
	}

	rows, err := s.accounts.BilledByReportDate(start, end)
	if err != nil {
		return nil, err
	}

	items := make([]NotificationsOverTimeItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, NotificationsOverTimeItem{
			Date:                     row.ReportDate.Format(dateLayout),
			TotalNotificationsBilled: row.Total,
		})
	}

	if unbounded {
		s.cacheSet(ctx, cacheKeyNotificationsAll, items)
	}
	return items, nil
}

func (s *service) Counts(ctx context.Context) (int64, int64, error) {
	loaded, err := s.accounts.Count()
	if err != nil {
		return 0, 0, err
	}
	invalid, err := s.accounts.CountInvalid()
	if err != nil {
		return 0, 0, err
	}
	return loaded, invalid, nil
}

// cacheGet reports whether key was found and decoded into dest. Cache
// trouble degrades to a direct DB read, never a client error.
func (s *service) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		log.Printf("cache get %s failed: %v", key, err)
		return false
	}
	return found
}

func (s *service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		log.Printf("cache set %s failed: %v", key, err)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
