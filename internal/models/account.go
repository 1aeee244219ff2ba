package models

import "time"

// Subscription statuses accepted from the CSV export.
const (
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
)

// Churn risk buckets derived from the health score.
const (
	ChurnRiskHealthy = "healthy"
	ChurnRiskAtRisk  = "at_risk"
	ChurnRiskChurned = "churned"
)

// Account is one validated row of the account CSV export together with
// the derived metrics the dashboard reads. The table is replaced
// wholesale on every ingest run, so there are no update timestamps.
type Account struct {
	ID                  uint    `gorm:"primarykey"`
	AccountUUID         string  `gorm:"uniqueIndex;not null"`
	AccountLabel        string  `gorm:"not null"`
	SubscriptionStatus  string  `gorm:"not null;index"`
	AdminSeats          int     `gorm:"not null"`
	UserSeats           int     `gorm:"not null"`
	ReadOnlySeats       int     `gorm:"not null"`
	TotalRecords        int     `gorm:"not null"`
	AutomationCount     int     `gorm:"not null"`
	WorkflowTitle       *string
	MessagesProcessed   int     `gorm:"not null"`
	NotificationsSent   int     `gorm:"not null"`
	NotificationsBilled int     `gorm:"not null"`

	// Derived metrics, computed once at ingest time.
	TotalSeats         int       `gorm:"not null"`
	SeatUtilisation    float64   `gorm:"not null"`
	BillingUtilisation float64   `gorm:"not null"`
	HealthScore        int       `gorm:"not null;index"`
	ChurnRisk          string    `gorm:"not null;index"`
	ReportDate         time.Time `gorm:"type:date;not null;index"`
}
