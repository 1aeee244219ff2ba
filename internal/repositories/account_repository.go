package repositories

import (
	"time"

	"insights/internal/models"
)

// AccountFilter narrows the records listing. Zero values mean the
// corresponding filter is not applied.
type AccountFilter struct {
	SubscriptionStatus string // "active" or "inactive"
	MinHealth          *int   // minimum health score, inclusive
	Search             string // case-insensitive substring of the account label
}

// SummaryStats is the single-pass aggregate over the accounts table
// backing the dashboard's KPI cards.
type SummaryStats struct {
	TotalAccounts            int64
	ActiveAccounts           int64
	InactiveAccounts         int64
	TotalNotificationsBilled int64
	TotalMessagesProcessed   int64
	AvgHealthScore           float64
	AtRiskAccounts           int64
	ChurnedAccounts          int64
}

// ChurnBucketCount is one churn-risk bucket with its account count.
type ChurnBucketCount struct {
	ChurnRisk string
	Count     int64
}

// ChurnBucketTotal is one churn-risk bucket with its billed total.
type ChurnBucketTotal struct {
	ChurnRisk string
	Total     int64
}

// DateTotal is one report-date bucket of the billed time series.
type DateTotal struct {
	ReportDate time.Time
	Total      int64
}

// AccountRepository is the data access surface for ingested accounts
// and the invalid rows captured alongside them.
type AccountRepository interface {
	// ReplaceAll swaps the whole snapshot atomically: previous accounts
	// and invalid rows are removed and the new ones inserted in a single
	// transaction.
	ReplaceAll(accounts []models.Account, invalid []models.InvalidRow) error

	All() ([]models.Account, error)
	List(filter AccountFilter, offset, limit int) ([]models.Account, int64, error)
	Count() (int64, error)

	InvalidRows() ([]models.InvalidRow, error)
	CountInvalid() (int64, error)

	SummaryStats() (*SummaryStats, error)
	CountByChurnRisk() ([]ChurnBucketCount, error)
	BilledByChurnRisk() ([]ChurnBucketTotal, error)
	BilledByReportDate(start, end *time.Time) ([]DateTotal, error)
	ReportDateBounds() (min, max time.Time, ok bool, err error)
}
